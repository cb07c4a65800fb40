package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ics20-escrow/types"
)

// InitGenesis initializes the escrow transfer module's state from a provided genesis
// state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	k.SetParams(ctx, state.Params)

	for _, channel := range state.Channels {
		if err := k.Channels.Set(ctx, channel.ID, channel); err != nil {
			panic(fmt.Errorf("failed to set channel %s: %w", channel.ID, err))
		}
	}

	for _, escrow := range state.Escrows {
		if err := k.SetChannelState(ctx, escrow.ChannelID, escrow.Denom, escrow.State); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis exports the escrow transfer module's registry and ledger to a genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	channels := k.GetAllChannels(ctx)
	if channels == nil {
		channels = []types.ChannelInfo{}
	}

	escrows := k.GetAllChannelStates(ctx)
	if escrows == nil {
		escrows = []types.ChannelEscrow{}
	}

	return types.NewGenesisState(k.GetParams(ctx), channels, escrows)
}
