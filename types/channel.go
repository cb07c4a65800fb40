package types

import (
	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// Endpoint identifies one end of a channel.
type Endpoint struct {
	PortID    string `json:"port_id"`
	ChannelID string `json:"channel_id"`
}

// ChannelInfo records a channel negotiated by this module. It is written once, when the
// channel is connected.
type ChannelInfo struct {
	// ID is the local channel identifier
	ID string `json:"id"`
	// CounterpartyEndpoint is the remote port and channel
	CounterpartyEndpoint Endpoint `json:"counterparty_endpoint"`
	// ConnectionID is the underlying connection the channel runs over
	ConnectionID string `json:"connection_id"`
}

// NewChannelInfo creates a new ChannelInfo instance.
func NewChannelInfo(channelID string, counterparty Endpoint, connectionID string) ChannelInfo {
	return ChannelInfo{
		ID:                   channelID,
		CounterpartyEndpoint: counterparty,
		ConnectionID:         connectionID,
	}
}

// Validate performs basic validation of the channel identifiers.
func (ci ChannelInfo) Validate() error {
	if err := host.ChannelIdentifierValidator(ci.ID); err != nil {
		return err
	}
	if err := host.PortIdentifierValidator(ci.CounterpartyEndpoint.PortID); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty port")
	}
	if err := host.ChannelIdentifierValidator(ci.CounterpartyEndpoint.ChannelID); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty channel")
	}
	if err := host.ConnectionIdentifierValidator(ci.ConnectionID); err != nil {
		return err
	}

	return nil
}

// EnforceOrderAndVersion checks the negotiated channel parameters. The version is checked
// before the ordering, and the counterparty version is only checked once it is known
// (non-empty).
func EnforceOrderAndVersion(order channeltypes.Order, version, counterpartyVersion string) error {
	if version != Version {
		return errorsmod.Wrapf(ErrInvalidVersion, "expected %s, got %s", Version, version)
	}
	if counterpartyVersion != "" && counterpartyVersion != Version {
		return errorsmod.Wrapf(ErrInvalidVersion, "invalid counterparty version: expected %s, got %s", Version, counterpartyVersion)
	}
	if order != Ordering {
		return errorsmod.Wrapf(ErrOrderingMismatch, "expected %s channel, got %s", Ordering, order)
	}

	return nil
}
