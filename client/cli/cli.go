package cli

import (
	"github.com/spf13/cobra"
)

// GetToolsCmd returns the offline tooling commands of the escrow transfer module.
func GetToolsCmd() *cobra.Command {
	toolsCmd := &cobra.Command{
		Use:                        "escrow",
		Short:                      "ICS20 escrow transfer encoding and validation subcommands",
		SuggestionsMinimumDistance: 2,
		RunE:                       runHelp,
	}

	toolsCmd.AddCommand(
		GetAckCmd(),
		GetPacketCmd(),
		NewInstructionCmd(),
		GetGenesisCmd(),
		GetQueryCmd(),
	)

	return toolsCmd
}

// GetAckCmd returns the acknowledgement subcommands.
func GetAckCmd() *cobra.Command {
	ackCmd := &cobra.Command{
		Use:   "ack",
		Short: "Encode and decode ICS20 acknowledgements",
		RunE:  runHelp,
	}

	ackCmd.AddCommand(
		NewEncodeAckCmd(),
		NewDecodeAckCmd(),
	)

	return ackCmd
}

// GetPacketCmd returns the packet data subcommands.
func GetPacketCmd() *cobra.Command {
	packetCmd := &cobra.Command{
		Use:   "packet",
		Short: "Encode and decode ICS20 packet data",
		RunE:  runHelp,
	}

	packetCmd.AddCommand(
		NewEncodePacketCmd(),
		NewDecodePacketCmd(),
	)

	return packetCmd
}

// GetGenesisCmd returns the genesis subcommands.
func GetGenesisCmd() *cobra.Command {
	genesisCmd := &cobra.Command{
		Use:   "genesis",
		Short: "Inspect escrow transfer genesis state",
		RunE:  runHelp,
	}

	genesisCmd.AddCommand(
		NewValidateGenesisCmd(),
		NewDefaultGenesisCmd(),
	)

	return genesisCmd
}

func runHelp(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
