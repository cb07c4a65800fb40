package types

import (
	"cosmossdk.io/collections"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

const (
	// ModuleName defines the escrow transfer module name
	ModuleName = "escrow"

	// PortID is the default port id that the escrow transfer module binds to
	PortID = "transfer"

	// StoreKey is the store key string for the escrow transfer module
	StoreKey = ModuleName

	// RouterKey is the message route for the escrow transfer module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the escrow transfer module
	QuerierRoute = ModuleName
)

const (
	// Version defines the only ICS20 version the module negotiates.
	// NOTE: both channel ends must agree on this exact string.
	Version = "ics20-1"

	// Ordering is the only channel ordering the module accepts.
	Ordering = channeltypes.UNORDERED

	// Cw20DenomPrefix marks a denomination as a balance held on a cw20 token contract.
	// The contract address follows the prefix, e.g. "cw20:cosmos1...".
	Cw20DenomPrefix = "cw20:"

	// TimeoutReason is the failure reason attached to refunds caused by packet timeouts.
	TimeoutReason = "timeout"
)

var (
	// ParamsKey is the key under which the module params are stored
	ParamsKey = collections.NewPrefix(0)
	// ChannelInfoPrefix is the prefix of the channel registry
	ChannelInfoPrefix = collections.NewPrefix(1)
	// ChannelStatePrefix is the prefix of the escrow ledger, keyed by (channel id, denom)
	ChannelStatePrefix = collections.NewPrefix(2)
)
