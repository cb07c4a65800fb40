package types

import (
	errorsmod "cosmossdk.io/errors"
)

// escrow transfer sentinel errors
var (
	ErrInvalidVersion         = errorsmod.Register(ModuleName, 2, "invalid ICS20 version")
	ErrOrderingMismatch       = errorsmod.Register(ModuleName, 3, "invalid ICS20 channel ordering")
	ErrInsufficientFunds      = errorsmod.Register(ModuleName, 4, "insufficient funds in channel escrow")
	ErrInvalidPacketData      = errorsmod.Register(ModuleName, 5, "invalid ICS20 packet data")
	ErrInvalidAcknowledgement = errorsmod.Register(ModuleName, 6, "invalid acknowledgement")
	ErrChannelExists          = errorsmod.Register(ModuleName, 7, "channel already registered")
	ErrChannelNotFound        = errorsmod.Register(ModuleName, 8, "channel not found")
	ErrInvalidAmountVariant   = errorsmod.Register(ModuleName, 9, "unknown amount variant")
	ErrReceiveDisabled        = errorsmod.Register(ModuleName, 10, "fungible token transfers to this chain are disabled")
	ErrLedgerStore            = errorsmod.Register(ModuleName, 11, "escrow ledger store failure")
	ErrInvalidDenom           = errorsmod.Register(ModuleName, 12, "invalid denomination")
	ErrInvalidGenesis         = errorsmod.Register(ModuleName, 13, "invalid genesis state")
	ErrInvalidLedgerEntry     = errorsmod.Register(ModuleName, 14, "invalid escrow ledger entry")
)
