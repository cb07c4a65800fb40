package types

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// ChannelState is the escrow ledger entry for one (channel, denomination) pair.
type ChannelState struct {
	// Outstanding is the balance currently escrowed on behalf of the channel
	Outstanding sdkmath.Uint `json:"outstanding"`
	// TotalSent is the running total of value successfully sent over the channel
	TotalSent sdkmath.Uint `json:"total_sent"`
}

// NewChannelState returns an empty ledger entry.
func NewChannelState() ChannelState {
	return ChannelState{
		Outstanding: sdkmath.ZeroUint(),
		TotalSent:   sdkmath.ZeroUint(),
	}
}

// Release removes amount from the outstanding balance. It fails rather than going negative.
func (cs ChannelState) Release(amount sdkmath.Uint) (ChannelState, error) {
	if cs.Outstanding.LT(amount) {
		return cs, errorsmod.Wrapf(ErrInsufficientFunds, "outstanding %s is less than requested %s", cs.Outstanding, amount)
	}

	cs.Outstanding = cs.Outstanding.Sub(amount)
	return cs, nil
}

// Confirm records a successful outbound transfer of amount. It panics on 256-bit overflow.
func (cs ChannelState) Confirm(amount sdkmath.Uint) ChannelState {
	cs.Outstanding = cs.Outstanding.Add(amount)
	cs.TotalSent = cs.TotalSent.Add(amount)
	return cs
}

// UnmarshalJSON decodes a ledger entry, defaulting missing counters to zero. Negative
// counters are rejected.
func (cs *ChannelState) UnmarshalJSON(bz []byte) error {
	type channelState ChannelState
	state := channelState(NewChannelState())
	if err := json.Unmarshal(bz, &state); err != nil {
		return err
	}

	if err := ChannelState(state).validateCounters(); err != nil {
		return err
	}

	*cs = ChannelState(state)
	return nil
}

// Validate checks that both counters are in range and outstanding does not exceed total sent.
func (cs ChannelState) Validate() error {
	if err := cs.validateCounters(); err != nil {
		return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
	}

	if cs.Outstanding.GT(cs.TotalSent) {
		return errorsmod.Wrapf(ErrInvalidGenesis, "outstanding %s exceeds total sent %s", cs.Outstanding, cs.TotalSent)
	}
	return nil
}

func (cs ChannelState) validateCounters() error {
	if err := sdkmath.UintOverflow(cs.Outstanding.BigInt()); err != nil {
		return errorsmod.Wrapf(ErrInvalidLedgerEntry, "outstanding %s: %s", cs.Outstanding, err)
	}
	if err := sdkmath.UintOverflow(cs.TotalSent.BigInt()); err != nil {
		return errorsmod.Wrapf(ErrInvalidLedgerEntry, "total sent %s: %s", cs.TotalSent, err)
	}
	return nil
}

func (cs ChannelState) String() string {
	return fmt.Sprintf("outstanding: %s, total_sent: %s", cs.Outstanding, cs.TotalSent)
}

// ChannelEscrow pairs a ledger entry with its key.
type ChannelEscrow struct {
	ChannelID string       `json:"channel_id"`
	Denom     string       `json:"denom"`
	State     ChannelState `json:"state"`
}

// NewChannelEscrow creates a new ChannelEscrow instance.
func NewChannelEscrow(channelID, denom string, state ChannelState) ChannelEscrow {
	return ChannelEscrow{
		ChannelID: channelID,
		Denom:     denom,
		State:     state,
	}
}
