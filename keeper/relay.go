package keeper

import (
	"errors"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"

	"github.com/cosmos/ics20-escrow/internal/events"
	"github.com/cosmos/ics20-escrow/internal/lifecycle"
	"github.com/cosmos/ics20-escrow/internal/telemetry"
	"github.com/cosmos/ics20-escrow/types"
)

// ReceiveTransfer releases the packet amount from the escrow ledger of the local channel the
// packet arrived on and returns the transfer that pays out the receiver. The ledger is left
// untouched on error.
func (k Keeper) ReceiveTransfer(ctx sdk.Context, channelID string, data types.ICS20Packet) (types.TransferInstruction, error) {
	var outcome lifecycle.Outcome
	_, err := k.UpdateChannelState(ctx, channelID, data.Denom, func(state types.ChannelState, found bool) (types.ChannelState, error) {
		var err error
		outcome, err = lifecycle.Transition(lifecycle.EventReceive, state, found, data, "")
		if err != nil {
			return state, err
		}
		return outcome.Entry, nil
	})
	if err != nil {
		return types.TransferInstruction{}, err
	}

	return *outcome.Instruction, nil
}

// OnRecvPacket processes an inbound ICS20 packet. The ledger update and the payout are
// applied atomically: both are run against a cached context that is only written back
// once the payout succeeded.
func (k Keeper) OnRecvPacket(ctx sdk.Context, packet channeltypes.Packet, data types.ICS20Packet) error {
	if !k.GetParams(ctx).ReceiveEnabled {
		return types.ErrReceiveDisabled
	}

	if err := data.ValidateBasic(); err != nil {
		return err
	}

	// CacheContext returns a new context with the multi-store branched into a cached storage object
	// writeCache is called only if the ledger update and the payout both succeed
	cacheCtx, writeCache := ctx.CacheContext()

	instruction, err := k.ReceiveTransfer(cacheCtx, packet.DestinationChannel, data)
	if err != nil {
		return err
	}

	if err := k.ExecuteTransfer(cacheCtx, instruction); err != nil {
		return err
	}

	writeCache()

	telemetry.ReportOnRecvPacket(packet.SourcePort, packet.SourceChannel, packet.DestinationPort, packet.DestinationChannel, data)
	k.Logger(ctx).Info("released escrow to receiver", "channel-id", packet.DestinationChannel, "denom", data.Denom, "amount", data.Amount, "receiver", data.Receiver)

	return nil
}

// OnAcknowledgementPacket responds to the success or failure of a packet acknowledgement
// written on the receiving chain.
//
// A result confirms the transfer: the packet amount is added to the escrow ledger of the
// source channel. An error refunds the sender without touching the ledger.
func (k Keeper) OnAcknowledgementPacket(ctx sdk.Context, sourcePort, sourceChannel string, data types.ICS20Packet, ack types.Acknowledgement) error {
	switch resp := ack.Response.(type) {
	case *types.AcknowledgementResult:
		_, err := k.UpdateChannelState(ctx, sourceChannel, data.Denom, func(state types.ChannelState, found bool) (types.ChannelState, error) {
			outcome, err := lifecycle.Transition(lifecycle.EventAckSuccess, state, found, data, "")
			if err != nil {
				return state, err
			}
			return outcome.Entry, nil
		})
		if err != nil {
			return err
		}

		telemetry.ReportAcknowledgement(sourcePort, sourceChannel, data)
		return nil

	case *types.AcknowledgementError:
		return k.refundPacketToken(ctx, sourcePort, sourceChannel, data, lifecycle.EventAckError, resp.Error)

	default:
		return errorsmod.Wrapf(ibcerrors.ErrInvalidType, "expected one of [%T, %T], got %T", types.AcknowledgementResult{}, types.AcknowledgementError{}, ack.Response)
	}
}

// OnTimeoutPacket refunds the sender of a packet that timed out.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, sourcePort, sourceChannel string, data types.ICS20Packet) error {
	return k.refundPacketToken(ctx, sourcePort, sourceChannel, data, lifecycle.EventTimeout, types.TimeoutReason)
}

// refundPacketToken pays the packet amount back to the original sender. The ledger is not
// modified: the amount was never added to it when the packet was sent.
func (k Keeper) refundPacketToken(ctx sdk.Context, sourcePort, sourceChannel string, data types.ICS20Packet, event lifecycle.Event, reason string) error {
	outcome, err := lifecycle.Transition(event, types.NewChannelState(), false, data, reason)
	if err != nil {
		return err
	}

	instruction := *outcome.Instruction
	if err := k.ExecuteTransfer(ctx, instruction); err != nil {
		return errorsmod.Wrapf(err, "failed to refund %s to %s", instruction.Amount, instruction.Recipient)
	}

	events.EmitRefundEvent(ctx, instruction, outcome.Reason)
	telemetry.ReportRefund(sourcePort, sourceChannel, instruction, event == lifecycle.EventTimeout)
	k.Logger(ctx).Info("refunded packet to sender", "channel-id", sourceChannel, "reason", outcome.Reason, "sender", data.Sender, "amount", instruction.Amount.String())

	return nil
}

// IsLedgerStoreError reports whether err originates from the ledger backend. Such errors are
// not protocol failures and must abort processing instead of producing an acknowledgement.
func IsLedgerStoreError(err error) bool {
	return errors.Is(err, types.ErrLedgerStore)
}
