package events

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ics20-escrow/types"
)

// EmitOnRecvPacketEvent emits a fungible token packet event in the OnRecvPacket callback
func EmitOnRecvPacketEvent(ctx sdk.Context, packetData types.ICS20Packet, ack types.Acknowledgement, ackErr error) {
	eventAttributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeySender, packetData.Sender),
		sdk.NewAttribute(types.AttributeKeyReceiver, packetData.Receiver),
		sdk.NewAttribute(types.AttributeKeyDenom, packetData.Denom),
		sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(packetData.Amount, 10)),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(ack.Success())),
	}

	if ackErr != nil {
		eventAttributes = append(eventAttributes, sdk.NewAttribute(types.AttributeKeyAckError, ackErr.Error()))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			eventAttributes...,
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitOnAcknowledgementPacketEvent emits a fungible token packet event in the OnAcknowledgementPacket callback
func EmitOnAcknowledgementPacketEvent(ctx sdk.Context, packetData types.ICS20Packet, ack types.Acknowledgement) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			sdk.NewAttribute(sdk.AttributeKeySender, packetData.Sender),
			sdk.NewAttribute(types.AttributeKeyReceiver, packetData.Receiver),
			sdk.NewAttribute(types.AttributeKeyDenom, packetData.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(packetData.Amount, 10)),
			sdk.NewAttribute(types.AttributeKeyAck, ack.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})

	switch resp := ack.Response.(type) {
	case *types.AcknowledgementResult:
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypePacket,
				sdk.NewAttribute(types.AttributeKeyAckSuccess, string(resp.Result)),
			),
		)
	case *types.AcknowledgementError:
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypePacket,
				sdk.NewAttribute(types.AttributeKeyAckError, resp.Error),
			),
		)
	}
}

// EmitOnTimeoutEvent emits a fungible token packet event in the OnTimeoutPacket callback
func EmitOnTimeoutEvent(ctx sdk.Context, packetData types.ICS20Packet) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeTimeout,
			sdk.NewAttribute(types.AttributeKeyRefundReceiver, packetData.Sender),
			sdk.NewAttribute(types.AttributeKeyDenom, packetData.Denom),
			sdk.NewAttribute(types.AttributeKeyRefundAmount, strconv.FormatUint(packetData.Amount, 10)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		),
	})
}

// EmitRefundEvent emits the refund of a failed outbound transfer together with the failure reason.
func EmitRefundEvent(ctx sdk.Context, instruction types.TransferInstruction, reason string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRefund,
			sdk.NewAttribute(types.AttributeKeyRefundReceiver, instruction.Recipient),
			sdk.NewAttribute(types.AttributeKeyDenom, instruction.Amount.LedgerDenom()),
			sdk.NewAttribute(types.AttributeKeyRefundAmount, instruction.Amount.GetAmount().String()),
			sdk.NewAttribute(types.AttributeKeyFailureReason, reason),
		),
	)
}

// EmitChannelConnectedEvent emits an event when a channel is added to the registry.
func EmitChannelConnectedEvent(ctx sdk.Context, info types.ChannelInfo) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChannelConnected,
			sdk.NewAttribute(types.AttributeKeyChannelID, info.ID),
			sdk.NewAttribute(types.AttributeKeyCounterpartyPortID, info.CounterpartyEndpoint.PortID),
			sdk.NewAttribute(types.AttributeKeyCounterpartyChannel, info.CounterpartyEndpoint.ChannelID),
			sdk.NewAttribute(types.AttributeKeyConnectionID, info.ConnectionID),
		),
	)
}

// EmitChannelClosedEvent emits one event per escrow balance left frozen on a closed channel.
func EmitChannelClosedEvent(ctx sdk.Context, channelID string, escrows []types.ChannelEscrow) {
	if len(escrows) == 0 {
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeChannelClose,
				sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			),
		)
		return
	}

	for _, escrow := range escrows {
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeChannelClose,
				sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
				sdk.NewAttribute(types.AttributeKeyDenom, escrow.Denom),
				sdk.NewAttribute(types.AttributeKeyOutstanding, escrow.State.Outstanding.String()),
			),
		)
	}
}
