package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/ics20-escrow/types"
)

const (
	// FlagOutput selects the output format, either "json" or "indent".
	FlagOutput = "output"
	// FlagError makes ack encode produce an error acknowledgement.
	FlagError = "error"
	// FlagAmountString makes packet encode write the amount as a string.
	FlagAmountString = "amount-string"

	outputIndent = "indent"
)

// NewEncodeAckCmd returns the command to encode an acknowledgement.
func NewEncodeAckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode",
		Short:   "Encode a success or error acknowledgement",
		Example: `escrowctl ack encode --error "insufficient funds"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := cmd.Flags().GetString(FlagError)
			if err != nil {
				return err
			}

			ack := types.NewSuccessAcknowledgement()
			if cmd.Flags().Changed(FlagError) {
				ack = types.NewErrorAcknowledgement(msg)
			}

			if err := ack.ValidateBasic(); err != nil {
				return err
			}

			bz, err := ack.Marshal()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}

	cmd.Flags().String(FlagError, "", "error message of an error acknowledgement")

	return cmd
}

type decodedAck struct {
	Success bool   `json:"success"`
	Result  []byte `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewDecodeAckCmd returns the command to strictly decode an acknowledgement.
func NewDecodeAckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decode [ack-json]",
		Short:   "Decode and validate an acknowledgement",
		Example: `escrowctl ack decode '{"result":"MQ=="}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ack, err := types.UnmarshalAcknowledgement([]byte(args[0]))
			if err != nil {
				return err
			}

			return printOutput(cmd, decodedAck{
				Success: ack.Success(),
				Result:  ack.GetResult(),
				Error:   ack.GetError(),
			})
		},
	}
}

// NewEncodePacketCmd returns the command to encode ICS20 packet data.
func NewEncodePacketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode [denom] [amount] [sender] [receiver]",
		Short:   "Encode ICS20 packet data",
		Example: "escrowctl packet encode uatom 100 cosmos1... cosmos1...",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := sdkmath.NewIntFromString(args[1])
			if !ok || amount.IsNegative() || !amount.IsUint64() {
				return errorsmod.Wrapf(types.ErrInvalidPacketData, "amount %s is not a 64-bit unsigned integer", args[1])
			}

			data := types.NewICS20Packet(args[0], amount.Uint64(), args[2], args[3])
			if err := data.ValidateBasic(); err != nil {
				return err
			}

			bz := data.GetBytes()

			asString, err := cmd.Flags().GetBool(FlagAmountString)
			if err != nil {
				return err
			}
			if asString {
				bz, err = json.Marshal(map[string]string{
					"denom":    data.Denom,
					"amount":   args[1],
					"sender":   data.Sender,
					"receiver": data.Receiver,
				})
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}

	cmd.Flags().Bool(FlagAmountString, false, "encode the amount as a JSON string")

	return cmd
}

// NewDecodePacketCmd returns the command to decode and validate ICS20 packet data.
func NewDecodePacketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [packet-json]",
		Short: "Decode and validate ICS20 packet data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := types.UnmarshalPacketData([]byte(args[0]))
			if err != nil {
				return err
			}

			return printOutput(cmd, data)
		},
	}
}

// NewInstructionCmd returns the command that renders the host message paying out an amount.
func NewInstructionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instruction [recipient] [denom] [amount]",
		Short: "Render the host message that moves an amount out of escrow",
		Long: strings.TrimSpace(`Render the host message that moves an amount out of escrow. Denominations
prefixed with "cw20:" are rendered as a cw20 transfer executed on the token contract, any other
denomination as a bank send.`),
		Example: "escrowctl instruction cosmos1... cw20:cosmos1contract... 100",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := sdkmath.ParseUint(args[2])
			if err != nil {
				return err
			}

			instruction := types.NewTransferInstruction(args[0], types.AmountFromParts(args[1], amount))
			if err := instruction.ValidateBasic(); err != nil {
				return err
			}

			msg, err := instruction.CosmosMsg()
			if err != nil {
				return err
			}

			return printOutput(cmd, msg)
		},
	}
}

// NewValidateGenesisCmd returns the command to validate a genesis file.
func NewValidateGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [genesis-file]",
		Short: "Validate an escrow transfer genesis state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genesis, err := readGenesis(args[0])
			if err != nil {
				return err
			}

			GetLogger(cmd).Debug("validated genesis state", "file", args[0])

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "genesis is valid: %d channels, %d escrow entries\n", len(genesis.Channels), len(genesis.Escrows))
			return err
		},
	}
}

// NewDefaultGenesisCmd returns the command that prints the default genesis state.
func NewDefaultGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the default escrow transfer genesis state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutput(cmd, types.DefaultGenesisState())
		},
	}
}

func printOutput(cmd *cobra.Command, v any) error {
	var (
		bz  []byte
		err error
	)

	if viper.GetString(FlagOutput) == outputIndent {
		bz, err = json.MarshalIndent(v, "", "  ")
	} else {
		bz, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
