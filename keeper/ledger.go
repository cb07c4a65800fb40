package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ics20-escrow/types"
)

// GetChannelState returns the ledger entry for the (channel, denom) pair. The boolean
// reports whether the entry exists.
func (k Keeper) GetChannelState(ctx sdk.Context, channelID, denom string) (types.ChannelState, bool, error) {
	state, err := k.Ledger.Get(ctx, collections.Join(channelID, denom))
	switch {
	case errors.Is(err, collections.ErrNotFound):
		return types.NewChannelState(), false, nil
	case err != nil:
		return types.ChannelState{}, false, errorsmod.Wrapf(types.ErrLedgerStore, "read %s/%s: %s", channelID, denom, err)
	}

	return state, true, nil
}

// SetChannelState stores the ledger entry for the (channel, denom) pair.
func (k Keeper) SetChannelState(ctx sdk.Context, channelID, denom string, state types.ChannelState) error {
	if err := k.Ledger.Set(ctx, collections.Join(channelID, denom), state); err != nil {
		return errorsmod.Wrapf(types.ErrLedgerStore, "write %s/%s: %s", channelID, denom, err)
	}
	return nil
}

// UpdateChannelState reads the entry for (channel, denom), applies fn and stores the
// result. fn receives whether the entry existed. Nothing is written when fn fails.
func (k Keeper) UpdateChannelState(
	ctx sdk.Context,
	channelID, denom string,
	fn func(state types.ChannelState, found bool) (types.ChannelState, error),
) (types.ChannelState, error) {
	state, found, err := k.GetChannelState(ctx, channelID, denom)
	if err != nil {
		return types.ChannelState{}, err
	}

	updated, err := fn(state, found)
	if err != nil {
		return state, err
	}

	if err := k.SetChannelState(ctx, channelID, denom, updated); err != nil {
		return state, err
	}

	return updated, nil
}

// GetChannelStates returns every ledger entry of a channel ordered by denomination.
func (k Keeper) GetChannelStates(ctx sdk.Context, channelID string) []types.ChannelEscrow {
	return k.collectEscrows(ctx, collections.NewPrefixedPairRange[string, string](channelID))
}

// GetAllChannelStates returns every ledger entry ordered by channel and denomination.
func (k Keeper) GetAllChannelStates(ctx sdk.Context) []types.ChannelEscrow {
	return k.collectEscrows(ctx, nil)
}

// IterateChannelStates calls cb for every ledger entry until cb returns true.
func (k Keeper) IterateChannelStates(ctx sdk.Context, cb func(escrow types.ChannelEscrow) (stop bool)) {
	err := k.Ledger.Walk(ctx, nil, func(key collections.Pair[string, string], state types.ChannelState) (bool, error) {
		return cb(types.NewChannelEscrow(key.K1(), key.K2(), state)), nil
	})
	if err != nil {
		panic(errorsmod.Wrap(types.ErrLedgerStore, err.Error()))
	}
}

func (k Keeper) collectEscrows(ctx sdk.Context, ranger collections.Ranger[collections.Pair[string, string]]) []types.ChannelEscrow {
	var escrows []types.ChannelEscrow
	err := k.Ledger.Walk(ctx, ranger, func(key collections.Pair[string, string], state types.ChannelState) (bool, error) {
		escrows = append(escrows, types.NewChannelEscrow(key.K1(), key.K2(), state))
		return false, nil
	})
	if err != nil {
		panic(errorsmod.Wrap(types.ErrLedgerStore, err.Error()))
	}

	return escrows
}
