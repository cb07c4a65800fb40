package telemetry

import (
	"github.com/hashicorp/go-metrics"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/telemetry"

	coremetrics "github.com/cosmos/ibc-go/v10/modules/core/metrics"

	"github.com/cosmos/ics20-escrow/types"
)

// ReportOnRecvPacket records a successful release of escrow to a packet receiver.
func ReportOnRecvPacket(sourcePort, sourceChannel, destinationPort, destinationChannel string, packetData types.ICS20Packet) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
		telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
		telemetry.NewLabel(coremetrics.LabelDestinationPort, destinationPort),
		telemetry.NewLabel(coremetrics.LabelDestinationChannel, destinationChannel),
	}

	setAmountGauge([]string{"ibc", types.ModuleName, "packet", "receive"}, packetData.Denom, packetData.GetAmount())

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "receive"},
		1,
		labels,
	)
}

// ReportAcknowledgement records the confirmation of an outbound transfer.
func ReportAcknowledgement(sourcePort, sourceChannel string, packetData types.ICS20Packet) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
		telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
	}

	setAmountGauge([]string{"ibc", types.ModuleName, "packet", "confirm"}, packetData.Denom, packetData.GetAmount())

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "confirm"},
		1,
		labels,
	)
}

// ReportRefund records a refund caused by an error acknowledgement or a timeout.
func ReportRefund(sourcePort, sourceChannel string, instruction types.TransferInstruction, timeout bool) {
	labels := []metrics.Label{
		telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
		telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
	}
	if timeout {
		labels = append(labels, telemetry.NewLabel(coremetrics.LabelTimeoutType, types.TimeoutReason))
	}

	setAmountGauge([]string{"ibc", types.ModuleName, "packet", "refund"}, instruction.Amount.LedgerDenom(), instruction.Amount.GetAmount())

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "refund"},
		1,
		labels,
	)
}

func setAmountGauge(keys []string, denom string, amount sdkmath.Uint) {
	if !amount.LTE(sdkmath.NewUint(1 << 53)) {
		return
	}

	telemetry.SetGaugeWithLabels(
		keys,
		float32(amount.Uint64()),
		[]metrics.Label{telemetry.NewLabel(coremetrics.LabelDenom, denom)},
	)
}
