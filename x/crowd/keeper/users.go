package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// RegisterUser inserts or updates the user record for addr. Re-registration
// updates the display name only and preserves the accumulated reward
// balance.
func (k Keeper) RegisterUser(ctx context.Context, addr sdk.AccAddress, name string) error {
	if name == "" {
		return types.ErrInvalidArgument.Wrap("name cannot be empty")
	}

	address := addr.String()
	user, found := k.GetUser(ctx, address)
	if found {
		user.Name = name
	} else {
		user = types.NewUser(address, name)
	}
	k.SetUser(ctx, user)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUserRegistered,
			sdk.NewAttribute(types.AttributeKeyAddress, address),
			sdk.NewAttribute(types.AttributeKeyName, name),
		),
	)

	return nil
}

// GetUser retrieves the user record for an address
func (k Keeper) GetUser(ctx context.Context, addr string) (types.User, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetUserKey(addr))
	if bz == nil {
		return types.User{}, false
	}

	var user types.User
	if err := json.Unmarshal(bz, &user); err != nil {
		panic(fmt.Sprintf("corrupted user record for %s: %s", addr, err))
	}
	return user, true
}

// SetUser stores a user record
func (k Keeper) SetUser(ctx context.Context, user types.User) {
	bz, err := json.Marshal(user)
	if err != nil {
		panic(fmt.Sprintf("marshal user record: %s", err))
	}
	store := k.getStore(ctx)
	store.Set(types.GetUserKey(user.Address), bz)
}

// IterateUsers iterates over all user records in the store
func (k Keeper) IterateUsers(ctx context.Context, cb func(user types.User) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.UserKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var user types.User
		if err := json.Unmarshal(iterator.Value(), &user); err != nil {
			panic(fmt.Sprintf("corrupted user record: %s", err))
		}
		if cb(user) {
			break
		}
	}
}

// GetAllUsers returns all registered users
func (k Keeper) GetAllUsers(ctx context.Context) []types.User {
	users := make([]types.User, 0)
	k.IterateUsers(ctx, func(user types.User) bool {
		users = append(users, user)
		return false
	})
	return users
}
