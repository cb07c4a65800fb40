package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// GenesisState defines the escrow transfer genesis state
type GenesisState struct {
	Params   Params          `json:"params"`
	Channels []ChannelInfo   `json:"channels"`
	Escrows  []ChannelEscrow `json:"escrows"`
}

// NewGenesisState creates a new escrow transfer GenesisState instance.
func NewGenesisState(params Params, channels []ChannelInfo, escrows []ChannelEscrow) *GenesisState {
	return &GenesisState{
		Params:   params,
		Channels: channels,
		Escrows:  escrows,
	}
}

// DefaultGenesisState returns a GenesisState with default params and no channels.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Channels: []ChannelInfo{},
		Escrows:  []ChannelEscrow{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. Every escrow entry must belong to a registered channel and appear only once.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	channels := make(map[string]struct{}, len(gs.Channels))
	for i, info := range gs.Channels {
		if err := info.Validate(); err != nil {
			return errorsmod.Wrapf(err, "invalid channel at index %d", i)
		}
		if _, ok := channels[info.ID]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate channel %s", info.ID)
		}
		channels[info.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(gs.Escrows))
	for i, escrow := range gs.Escrows {
		if err := host.ChannelIdentifierValidator(escrow.ChannelID); err != nil {
			return errorsmod.Wrapf(err, "invalid escrow at index %d", i)
		}
		if _, ok := channels[escrow.ChannelID]; !ok {
			return errorsmod.Wrapf(ErrChannelNotFound, "escrow at index %d references unregistered channel %s", i, escrow.ChannelID)
		}
		if err := ValidateDenom(escrow.Denom); err != nil {
			return errorsmod.Wrapf(err, "invalid escrow at index %d", i)
		}
		if err := escrow.State.Validate(); err != nil {
			return errorsmod.Wrapf(err, "invalid escrow at index %d", i)
		}

		key := fmt.Sprintf("%s/%s", escrow.ChannelID, escrow.Denom)
		if _, ok := seen[key]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate escrow for channel %s and denom %s", escrow.ChannelID, escrow.Denom)
		}
		seen[key] = struct{}{}
	}

	return nil
}
