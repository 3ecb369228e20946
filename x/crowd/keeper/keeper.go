package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// Keeper maintains the state of the crowd module: the token ledger, the user
// and campaign registries, and the compute request correlator.
type Keeper struct {
	cdc      codec.BinaryCodec
	storeKey storetypes.StoreKey
	router   types.ComputeRouter
}

// NewKeeper creates a new crowd Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	router types.ComputeRouter,
) *Keeper {
	return &Keeper{
		cdc:      cdc,
		storeKey: key,
		router:   router,
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// getStore returns the KVStore for the crowd module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
