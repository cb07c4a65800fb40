package escrow

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"

	"github.com/cosmos/ics20-escrow/internal/events"
	"github.com/cosmos/ics20-escrow/keeper"
	"github.com/cosmos/ics20-escrow/types"
)

var (
	_ porttypes.IBCModule             = (*IBCModule)(nil)
	_ porttypes.PacketDataUnmarshaler = (*IBCModule)(nil)
)

// IBCModule implements the ICS26 interface for escrow transfers given the escrow keeper.
type IBCModule struct {
	keeper keeper.Keeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper) IBCModule {
	return IBCModule{
		keeper: k,
	}
}

// ValidateEscrowChannelParams does validation of a newly created escrow channel. The channel
// must use the port the module is bound to, the ICS20 version and UNORDERED ordering. The
// version is checked before the ordering.
func ValidateEscrowChannelParams(
	escrowKeeper keeper.Keeper,
	order channeltypes.Order,
	portID string,
	version string,
	counterpartyVersion string,
) error {
	// Require portID is the portID the escrow module is bound to
	boundPort := escrowKeeper.GetPort()
	if boundPort != portID {
		return errorsmod.Wrapf(porttypes.ErrInvalidPort, "invalid port: %s, expected %s", portID, boundPort)
	}

	return types.EnforceOrderAndVersion(order, version, counterpartyVersion)
}

// OnChanOpenInit implements the IBCModule interface
func (im IBCModule) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	counterparty channeltypes.Counterparty,
	version string,
) (string, error) {
	if err := ValidateEscrowChannelParams(im.keeper, order, portID, version, ""); err != nil {
		return "", err
	}

	return version, nil
}

// OnChanOpenTry implements the IBCModule interface.
func (im IBCModule) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	if err := ValidateEscrowChannelParams(im.keeper, order, portID, counterpartyVersion, counterpartyVersion); err != nil {
		return "", err
	}

	return types.Version, nil
}

// OnChanOpenAck implements the IBCModule interface. The channel is registered once the
// stored channel end and the counterparty version pass validation.
func (im IBCModule) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	counterpartyChannelID string,
	counterpartyVersion string,
) error {
	return im.connectChannel(ctx, portID, channelID, counterpartyChannelID, counterpartyVersion)
}

// OnChanOpenConfirm implements the IBCModule interface
func (im IBCModule) OnChanOpenConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return im.connectChannel(ctx, portID, channelID, "", "")
}

// connectChannel re-enforces the channel parameters against the channel end stored by core
// IBC and records the channel in the registry. An empty counterpartyChannelID is read from
// the stored channel end, an empty counterpartyVersion is not checked.
func (im IBCModule) connectChannel(ctx sdk.Context, portID, channelID, counterpartyChannelID, counterpartyVersion string) error {
	channel, found := im.keeper.ChannelKeeper().GetChannel(ctx, portID, channelID)
	if !found {
		return errorsmod.Wrapf(types.ErrChannelNotFound, "port ID (%s) channel ID (%s)", portID, channelID)
	}

	if err := ValidateEscrowChannelParams(im.keeper, channel.Ordering, portID, channel.Version, counterpartyVersion); err != nil {
		return err
	}

	if len(channel.ConnectionHops) != 1 {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidRequest, "expected a single connection hop, got %d", len(channel.ConnectionHops))
	}

	if strings.TrimSpace(counterpartyChannelID) == "" {
		counterpartyChannelID = channel.Counterparty.ChannelId
	}

	info := types.NewChannelInfo(
		channelID,
		types.Endpoint{PortID: channel.Counterparty.PortId, ChannelID: counterpartyChannelID},
		channel.ConnectionHops[0],
	)

	return im.keeper.ConnectChannel(ctx, info)
}

// OnChanCloseInit implements the IBCModule interface
func (IBCModule) OnChanCloseInit(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	// Disallow user-initiated channel closing for escrow channels
	return errorsmod.Wrap(ibcerrors.ErrInvalidRequest, "user cannot close channel")
}

// OnChanCloseConfirm implements the IBCModule interface. Outstanding escrow of the channel is
// left on the ledger.
func (im IBCModule) OnChanCloseConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	im.keeper.CloseChannel(ctx, channelID)
	return nil
}

// OnRecvPacket implements the IBCModule interface. A successful acknowledgement
// is returned if the packet data is successfully decoded and the receive application
// logic returns without error. Failures of the ledger backend are not acknowledged:
// they abort the transaction.
func (im IBCModule) OnRecvPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) ibcexported.Acknowledgement {
	var (
		ack    types.Acknowledgement
		ackErr error
		data   types.ICS20Packet
	)

	// we are explicitly wrapping this emit event call in an anonymous function so that
	// the packet data is evaluated after it has been assigned a value.
	defer func() {
		events.EmitOnRecvPacketEvent(ctx, data, ack, ackErr)
	}()

	data, ackErr = types.UnmarshalPacketData(packet.GetData())
	if ackErr != nil {
		ack = types.NewErrorAcknowledgementFromError(ackErr)
		im.keeper.Logger(ctx).Error(fmt.Sprintf("%s sequence %d", ackErr.Error(), packet.Sequence))
		return ack
	}

	// NOTE: this needs to set the ackErr variable and not do if ackErr := ... because the ackErr variable is used in the defer function
	ackErr = im.keeper.OnRecvPacket(ctx, packet, data)
	if ackErr != nil {
		if keeper.IsLedgerStoreError(ackErr) {
			panic(ackErr)
		}

		ack = types.NewErrorAcknowledgementFromError(ackErr)
		im.keeper.Logger(ctx).Error(fmt.Sprintf("%s sequence %d", ackErr.Error(), packet.Sequence))
		return ack
	}

	ack = types.NewSuccessAcknowledgement()

	im.keeper.Logger(ctx).Info("successfully handled ICS-20 packet", "sequence", packet.Sequence)

	// NOTE: acknowledgement will be written synchronously during IBC handler execution.
	return ack
}

// OnAcknowledgementPacket implements the IBCModule interface
func (im IBCModule) OnAcknowledgementPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) error {
	ack, err := types.UnmarshalAcknowledgement(acknowledgement)
	if err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrUnknownRequest, "cannot unmarshal ICS-20 transfer packet acknowledgement: %v", err)
	}

	data, err := types.UnmarshalPacketData(packet.GetData())
	if err != nil {
		return err
	}

	if err := im.keeper.OnAcknowledgementPacket(ctx, packet.SourcePort, packet.SourceChannel, data, ack); err != nil {
		return err
	}

	events.EmitOnAcknowledgementPacketEvent(ctx, data, ack)

	return nil
}

// OnTimeoutPacket implements the IBCModule interface
func (im IBCModule) OnTimeoutPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) error {
	data, err := types.UnmarshalPacketData(packet.GetData())
	if err != nil {
		return err
	}

	// refund tokens
	if err := im.keeper.OnTimeoutPacket(ctx, packet.SourcePort, packet.SourceChannel, data); err != nil {
		return err
	}

	events.EmitOnTimeoutEvent(ctx, data)

	return nil
}

// UnmarshalPacketData attempts to unmarshal the provided packet data bytes
// into an ICS20Packet. This function implements the optional
// PacketDataUnmarshaler interface required for ADR 008 support.
func (im IBCModule) UnmarshalPacketData(ctx sdk.Context, portID string, channelID string, bz []byte) (interface{}, string, error) {
	if !im.keeper.HasChannel(ctx, channelID) {
		return types.ICS20Packet{}, "", errorsmod.Wrapf(ibcerrors.ErrNotFound, "escrow channel not found for port %s and channel %s", portID, channelID)
	}

	data, err := types.UnmarshalPacketData(bz)
	return data, types.Version, err
}
