package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ Amount = NativeAmount{}
	_ Amount = Cw20Amount{}
)

// Amount is a value that can be released from escrow. It is either a NativeAmount
// or a Cw20Amount; the set of variants is closed.
type Amount interface {
	isAmount()

	// LedgerDenom returns the denomination the escrow ledger tracks this amount under.
	LedgerDenom() string
	// GetAmount returns the quantity.
	GetAmount() sdkmath.Uint
	String() string
}

// NativeAmount is a balance of a native chain coin.
type NativeAmount struct {
	Denom  string
	Amount sdkmath.Uint
}

// Cw20Amount is a balance held on a cw20 token contract.
type Cw20Amount struct {
	Address string
	Amount  sdkmath.Uint
}

// AmountFromParts builds an Amount from a wire denomination. Denominations prefixed with
// Cw20DenomPrefix select the cw20 variant, everything else is a native coin.
func AmountFromParts(denom string, amount sdkmath.Uint) Amount {
	if contract, ok := strings.CutPrefix(denom, Cw20DenomPrefix); ok {
		return Cw20Amount{Address: contract, Amount: amount}
	}

	return NativeAmount{Denom: denom, Amount: amount}
}

func (NativeAmount) isAmount() {}

// LedgerDenom implements Amount.
func (a NativeAmount) LedgerDenom() string { return a.Denom }

// GetAmount implements Amount.
func (a NativeAmount) GetAmount() sdkmath.Uint { return a.Amount }

func (a NativeAmount) String() string {
	return fmt.Sprintf("%s%s", a.Amount, a.Denom)
}

// Coin converts the amount into an sdk.Coin. The denomination is validated but the
// amount may be zero.
func (a NativeAmount) Coin() (sdk.Coin, error) {
	coin := sdk.Coin{Denom: a.Denom, Amount: sdkmath.NewIntFromBigInt(a.Amount.BigInt())}
	if err := coin.Validate(); err != nil {
		return sdk.Coin{}, errorsmod.Wrapf(ErrInvalidDenom, "%s: %v", a.Denom, err)
	}

	return coin, nil
}

func (Cw20Amount) isAmount() {}

// LedgerDenom implements Amount.
func (a Cw20Amount) LedgerDenom() string { return Cw20DenomPrefix + a.Address }

// GetAmount implements Amount.
func (a Cw20Amount) GetAmount() sdkmath.Uint { return a.Amount }

func (a Cw20Amount) String() string {
	return fmt.Sprintf("%s%s", a.Amount, a.LedgerDenom())
}
