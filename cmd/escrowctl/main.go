package main

import (
	"os"

	"cosmossdk.io/log"

	"github.com/cosmos/ics20-escrow/cmd/escrowctl/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		log.NewLogger(os.Stderr).Error("failure when running escrowctl", "err", err)
		os.Exit(1)
	}
}
