package keeper

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ics20-escrow/types"
)

// RegisterInvariants registers all escrow transfer invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-ledger",
		EscrowLedgerInvariant(k))
	ir.RegisterRoute(types.ModuleName, "native-escrow-balance",
		NativeEscrowBalanceInvariant(k))
}

// AllInvariants runs all invariants of the escrow transfer module.
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := EscrowLedgerInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return NativeEscrowBalanceInvariant(k)(ctx)
	}
}

// EscrowLedgerInvariant checks that every ledger entry belongs to a registered channel and
// that no entry has more outstanding than was ever sent over its channel.
func EscrowLedgerInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken []string

		k.IterateChannelStates(ctx, func(escrow types.ChannelEscrow) bool {
			if !k.HasChannel(ctx, escrow.ChannelID) {
				broken = append(broken, fmt.Sprintf("%s/%s: channel is not registered", escrow.ChannelID, escrow.Denom))
			}
			if escrow.State.Outstanding.GT(escrow.State.TotalSent) {
				broken = append(broken, fmt.Sprintf("%s/%s: %s", escrow.ChannelID, escrow.Denom, escrow.State))
			}
			return false
		})

		if len(broken) > 0 {
			return sdk.FormatInvariant(
				types.ModuleName,
				"escrow ledger",
				fmt.Sprintf("found %d broken ledger entries:\n%s", len(broken), strings.Join(broken, "\n"))), true
		}

		return "", false
	}
}

// NativeEscrowBalanceInvariant checks that the module account holds at least the sum of the
// outstanding native escrow over all channels, for each denomination.
func NativeEscrowBalanceInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expected := sdk.NewCoins()

		k.IterateChannelStates(ctx, func(escrow types.ChannelEscrow) bool {
			if strings.HasPrefix(escrow.Denom, types.Cw20DenomPrefix) || escrow.State.Outstanding.IsZero() {
				return false
			}

			expected = expected.Add(sdk.NewCoin(escrow.Denom, sdkmath.NewIntFromBigInt(escrow.State.Outstanding.BigInt())))
			return false
		})

		moduleAddr := k.GetModuleAddress()
		actual := sdk.NewCoins()
		for _, coin := range expected {
			actual = actual.Add(k.bankKeeper.GetBalance(ctx, moduleAddr, coin.Denom))
		}

		// the module account balance must be greater than or equal to the expected amount for all denominations
		if !actual.IsAllGTE(expected) {
			return sdk.FormatInvariant(
				types.ModuleName,
				"native escrow balance",
				fmt.Sprintf("found denom(s) with escrow balance lower than outstanding:\nactual balance: %s\noutstanding: %s", actual, expected)), true
		}

		return "", false
	}
}
