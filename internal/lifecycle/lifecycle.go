// Package lifecycle computes the effect of a packet lifecycle event on an escrow ledger
// entry. It holds no state and performs no I/O: callers read the entry, call Transition
// and persist the result inside one unit of work.
package lifecycle

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"

	"github.com/cosmos/ics20-escrow/types"
)

// Event is a protocol event delivered by the transport.
type Event int

const (
	// EventReceive is an inbound transfer packet.
	EventReceive Event = iota + 1
	// EventAckSuccess is a result acknowledgement for a packet this chain sent.
	EventAckSuccess
	// EventAckError is an error acknowledgement for a packet this chain sent.
	EventAckError
	// EventTimeout is a timeout of a packet this chain sent.
	EventTimeout
)

func (e Event) String() string {
	switch e {
	case EventReceive:
		return "receive"
	case EventAckSuccess:
		return "ack_success"
	case EventAckError:
		return "ack_error"
	case EventTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Outcome is the result of applying an event.
type Outcome struct {
	// Entry is the ledger entry after the event. Only meaningful when Write is set.
	Entry types.ChannelState
	// Write reports whether Entry must be persisted.
	Write bool
	// Instruction is the value transfer to execute, if any.
	Instruction *types.TransferInstruction
	// Reason is the failure reason for refunds.
	Reason string
}

// Transition applies event to the ledger entry for the packet's (channel, denom).
// found reports whether the entry exists. reason is only used by EventAckError; timeouts
// always carry types.TimeoutReason.
func Transition(event Event, entry types.ChannelState, found bool, packet types.ICS20Packet, reason string) (Outcome, error) {
	amount := packet.GetAmount()

	switch event {
	case EventReceive:
		if !found {
			return Outcome{}, errorsmod.Wrapf(types.ErrInsufficientFunds, "no escrow for denom %s", packet.Denom)
		}

		released, err := entry.Release(amount)
		if err != nil {
			return Outcome{}, err
		}

		instruction := types.NewTransferInstruction(packet.Receiver, packet.ToAmount())
		return Outcome{Entry: released, Write: true, Instruction: &instruction}, nil

	case EventAckSuccess:
		if !found {
			entry = types.NewChannelState()
		}

		return Outcome{Entry: entry.Confirm(amount), Write: true}, nil

	case EventAckError, EventTimeout:
		if event == EventTimeout {
			reason = types.TimeoutReason
		}

		instruction := types.NewTransferInstruction(packet.Sender, packet.ToAmount())
		return Outcome{Instruction: &instruction, Reason: reason}, nil

	default:
		return Outcome{}, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "unknown packet lifecycle event %s", event)
	}
}
