package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// GetOwner returns the module owner address. Empty until genesis sets it.
func (k Keeper) GetOwner(ctx context.Context) string {
	store := k.getStore(ctx)
	bz := store.Get(types.OwnerKey)
	if bz == nil {
		return ""
	}
	return string(bz)
}

// SetOwner stores the module owner address.
func (k Keeper) SetOwner(ctx context.Context, owner string) {
	store := k.getStore(ctx)
	store.Set(types.OwnerKey, []byte(owner))
}

// assertOwner rejects callers other than the module owner. The check runs
// before any state mutation so a failed call has no observable effect.
func (k Keeper) assertOwner(ctx context.Context, caller sdk.AccAddress) error {
	owner := k.GetOwner(ctx)
	if owner == "" || caller.String() != owner {
		return types.ErrUnauthorized.Wrapf("caller %s is not the module owner", caller)
	}
	return nil
}

// TransferOwnership hands ownership to newOwner. Only the current owner may
// call it.
func (k Keeper) TransferOwnership(ctx context.Context, caller sdk.AccAddress, newOwner sdk.AccAddress) error {
	if err := k.assertOwner(ctx, caller); err != nil {
		return err
	}

	k.SetOwner(ctx, newOwner.String())

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOwnershipTransferred,
			sdk.NewAttribute(types.AttributeKeyOwner, caller.String()),
			sdk.NewAttribute(types.AttributeKeyNewOwner, newOwner.String()),
		),
	)

	return nil
}
