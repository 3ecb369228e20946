package keeper

import (
	"context"
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// GetParams gets the module parameters from the store
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams sets the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return types.ErrInvalidArgument.Wrapf("marshal params: %s", err)
	}

	store := k.getStore(ctx)
	store.Set(types.ParamsKey, bz)
	return nil
}

// UpdateParams replaces the module parameters. Only the module owner may
// call it.
func (k Keeper) UpdateParams(ctx context.Context, caller sdk.AccAddress, params types.Params) error {
	if err := k.assertOwner(ctx, caller); err != nil {
		return err
	}

	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeySender, caller.String()),
		),
	)

	return nil
}
