package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// Reward moves amount from the caller's ledger balance to the target and
// mirrors the credit on the target's user record. Any caller may invoke it.
// The target must be a registered user; that is checked before the ledger
// transfer so a rejected call leaves no partial state.
func (k Keeper) Reward(ctx context.Context, caller, target sdk.AccAddress, amount sdkmath.Int) error {
	targetAddr := target.String()

	user, found := k.GetUser(ctx, targetAddr)
	if !found {
		return types.ErrNotFound.Wrapf("user %s is not registered", targetAddr)
	}

	if err := k.Transfer(ctx, caller, target, amount); err != nil {
		return err
	}

	user.Balance = user.Balance.Add(amount)
	k.SetUser(ctx, user)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardDistributed,
			sdk.NewAttribute(types.AttributeKeySender, caller.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, targetAddr),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}
