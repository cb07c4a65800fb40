package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ics20-escrow/internal/events"
	"github.com/cosmos/ics20-escrow/types"
)

// ConnectChannel records a newly connected channel. Registry entries are immutable: a
// channel id can only be registered once.
func (k Keeper) ConnectChannel(ctx sdk.Context, info types.ChannelInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	has, err := k.Channels.Has(ctx, info.ID)
	if err != nil {
		return errorsmod.Wrap(types.ErrLedgerStore, err.Error())
	}
	if has {
		return errorsmod.Wrapf(types.ErrChannelExists, "channel %s", info.ID)
	}

	if err := k.Channels.Set(ctx, info.ID, info); err != nil {
		return errorsmod.Wrap(types.ErrLedgerStore, err.Error())
	}

	events.EmitChannelConnectedEvent(ctx, info)
	k.Logger(ctx).Info("registered ICS20 channel", "channel-id", info.ID, "connection-id", info.ConnectionID)

	return nil
}

// GetChannelInfo returns the registry entry for the given channel.
func (k Keeper) GetChannelInfo(ctx sdk.Context, channelID string) (types.ChannelInfo, bool) {
	info, err := k.Channels.Get(ctx, channelID)
	if errors.Is(err, collections.ErrNotFound) {
		return types.ChannelInfo{}, false
	}
	if err != nil {
		panic(errorsmod.Wrap(types.ErrLedgerStore, err.Error()))
	}

	return info, true
}

// HasChannel reports whether the channel is registered.
func (k Keeper) HasChannel(ctx sdk.Context, channelID string) bool {
	has, err := k.Channels.Has(ctx, channelID)
	if err != nil {
		panic(errorsmod.Wrap(types.ErrLedgerStore, err.Error()))
	}
	return has
}

// GetAllChannels returns every registered channel ordered by channel id.
func (k Keeper) GetAllChannels(ctx sdk.Context) []types.ChannelInfo {
	iter, err := k.Channels.Iterate(ctx, nil)
	if err != nil {
		panic(errorsmod.Wrap(types.ErrLedgerStore, err.Error()))
	}

	channels, err := iter.Values()
	if err != nil {
		panic(errorsmod.Wrap(types.ErrLedgerStore, err.Error()))
	}

	return channels
}

// CloseChannel handles a counterparty-initiated close. Escrow balances stay on the ledger
// untouched; they are reported so operators can reconcile them.
func (k Keeper) CloseChannel(ctx sdk.Context, channelID string) []types.ChannelEscrow {
	escrows := k.GetChannelStates(ctx, channelID)

	events.EmitChannelClosedEvent(ctx, channelID, escrows)
	k.Logger(ctx).Info("ICS20 channel closed with frozen escrow", "channel-id", channelID, "denoms", len(escrows))

	return escrows
}
