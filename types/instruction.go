package types

import (
	"encoding/json"
	"strings"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

// TransferInstruction instructs the host to move Amount to Recipient.
type TransferInstruction struct {
	Recipient string
	Amount    Amount
}

// NewTransferInstruction creates a new TransferInstruction.
func NewTransferInstruction(recipient string, amount Amount) TransferInstruction {
	return TransferInstruction{
		Recipient: recipient,
		Amount:    amount,
	}
}

// ValidateBasic performs a stateless check of the instruction.
func (ti TransferInstruction) ValidateBasic() error {
	if strings.TrimSpace(ti.Recipient) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidAddress, "recipient cannot be blank")
	}

	switch amount := ti.Amount.(type) {
	case NativeAmount:
		if _, err := amount.Coin(); err != nil {
			return err
		}
	case Cw20Amount:
		if strings.TrimSpace(amount.Address) == "" {
			return errorsmod.Wrap(ErrInvalidDenom, "cw20 contract address cannot be blank")
		}
	default:
		return errorsmod.Wrapf(ErrInvalidAmountVariant, "%T", ti.Amount)
	}

	return nil
}

// Cw20ExecuteMsg is the subset of the cw20 execute API used to move contract tokens.
type Cw20ExecuteMsg struct {
	Transfer *Cw20TransferMsg `json:"transfer,omitempty"`
}

// Cw20TransferMsg moves Amount of the contract's token from the caller to Recipient.
type Cw20TransferMsg struct {
	Recipient string       `json:"recipient"`
	Amount    sdkmath.Uint `json:"amount"`
}

// NewCw20TransferMsg returns the JSON encoded cw20 transfer message for the given recipient and amount.
func NewCw20TransferMsg(recipient string, amount sdkmath.Uint) ([]byte, error) {
	return json.Marshal(Cw20ExecuteMsg{
		Transfer: &Cw20TransferMsg{
			Recipient: recipient,
			Amount:    amount,
		},
	})
}

// CosmosMsg renders the instruction as a wasm host message: a bank send for native coins
// or a contract execution of a cw20 transfer for contract tokens.
func (ti TransferInstruction) CosmosMsg() (wasmvmtypes.CosmosMsg, error) {
	switch amount := ti.Amount.(type) {
	case NativeAmount:
		return wasmvmtypes.CosmosMsg{
			Bank: &wasmvmtypes.BankMsg{
				Send: &wasmvmtypes.SendMsg{
					ToAddress: ti.Recipient,
					Amount: []wasmvmtypes.Coin{
						{Denom: amount.Denom, Amount: amount.Amount.String()},
					},
				},
			},
		}, nil
	case Cw20Amount:
		msg, err := NewCw20TransferMsg(ti.Recipient, amount.Amount)
		if err != nil {
			return wasmvmtypes.CosmosMsg{}, err
		}

		return wasmvmtypes.CosmosMsg{
			Wasm: &wasmvmtypes.WasmMsg{
				Execute: &wasmvmtypes.ExecuteMsg{
					ContractAddr: amount.Address,
					Msg:          msg,
				},
			},
		}, nil
	default:
		return wasmvmtypes.CosmosMsg{}, errorsmod.Wrapf(ErrInvalidAmountVariant, "%T", ti.Amount)
	}
}
