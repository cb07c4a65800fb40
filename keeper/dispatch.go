package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"

	"github.com/cosmos/ics20-escrow/types"
)

// ExecuteTransfer moves the value described by instruction out of escrow. Native coins are
// sent from the module account through the bank keeper; cw20 tokens are moved by executing
// a cw20 transfer on the token contract with the module account as caller.
func (k Keeper) ExecuteTransfer(ctx sdk.Context, instruction types.TransferInstruction) error {
	if err := instruction.ValidateBasic(); err != nil {
		return err
	}

	if instruction.Amount.GetAmount().IsZero() {
		return nil
	}

	recipient, err := sdk.AccAddressFromBech32(instruction.Recipient)
	if err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidAddress, "failed to decode recipient address %s: %s", instruction.Recipient, err)
	}

	switch amount := instruction.Amount.(type) {
	case types.NativeAmount:
		if k.bankKeeper.BlockedAddr(recipient) {
			return errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "%s is not allowed to receive funds", recipient)
		}

		coin, err := amount.Coin()
		if err != nil {
			return err
		}

		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(coin)); err != nil {
			return errorsmod.Wrapf(err, "failed to send %s from escrow", coin)
		}

	case types.Cw20Amount:
		contract, err := sdk.AccAddressFromBech32(amount.Address)
		if err != nil {
			return errorsmod.Wrapf(types.ErrInvalidDenom, "invalid cw20 contract address %s: %s", amount.Address, err)
		}

		msg, err := types.NewCw20TransferMsg(recipient.String(), amount.Amount)
		if err != nil {
			return err
		}

		if _, err := k.contractKeeper.Execute(ctx, contract, k.GetModuleAddress(), msg, nil); err != nil {
			return errorsmod.Wrapf(err, "failed to transfer %s from escrow", amount)
		}

	default:
		return errorsmod.Wrapf(types.ErrInvalidAmountVariant, "%T", instruction.Amount)
	}

	k.Logger(ctx).Debug("executed escrow transfer", "recipient", instruction.Recipient, "amount", instruction.Amount.String())

	return nil
}
