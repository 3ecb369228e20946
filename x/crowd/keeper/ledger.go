package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// GetSupply returns the total token supply.
func (k Keeper) GetSupply(ctx context.Context) sdkmath.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.SupplyKey)
	if bz == nil {
		return sdkmath.ZeroInt()
	}

	var supply sdkmath.Int
	if err := supply.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("corrupted supply record: %s", err))
	}
	return supply
}

func (k Keeper) setSupply(ctx context.Context, supply sdkmath.Int) {
	bz, err := supply.Marshal()
	if err != nil {
		panic(fmt.Sprintf("marshal supply: %s", err))
	}
	store := k.getStore(ctx)
	store.Set(types.SupplyKey, bz)
}

// GetBalance returns the ledger balance of an address. Addresses without a
// record hold zero.
func (k Keeper) GetBalance(ctx context.Context, addr string) sdkmath.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.GetBalanceKey(addr))
	if bz == nil {
		return sdkmath.ZeroInt()
	}

	var balance sdkmath.Int
	if err := balance.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("corrupted balance record for %s: %s", addr, err))
	}
	return balance
}

func (k Keeper) setBalance(ctx context.Context, addr string, amount sdkmath.Int) {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(types.GetBalanceKey(addr))
		return
	}

	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Sprintf("marshal balance: %s", err))
	}
	store.Set(types.GetBalanceKey(addr), bz)
}

// MintInitial credits the full supply to owner. Called exactly once, from
// genesis; there is no code path that mints or burns afterwards.
func (k Keeper) MintInitial(ctx context.Context, owner string, amount sdkmath.Int) error {
	if !k.GetSupply(ctx).IsZero() {
		return types.ErrInvalidArgument.Wrap("supply already minted")
	}
	if amount.IsNegative() {
		return types.ErrInvalidArgument.Wrap("supply must be non-negative")
	}

	k.setSupply(ctx, amount)
	k.setBalance(ctx, owner, amount)
	return nil
}

// Transfer moves amount from one address to another. Fails with
// ErrInsufficientBalance when the source balance is smaller than amount;
// the total supply is conserved.
func (k Keeper) Transfer(ctx context.Context, from, to sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidArgument.Wrap("transfer amount must be positive")
	}

	fromAddr := from.String()
	toAddr := to.String()

	fromBalance := k.GetBalance(ctx, fromAddr)
	if fromBalance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("balance %s is less than %s", fromBalance, amount)
	}

	k.setBalance(ctx, fromAddr, fromBalance.Sub(amount))
	k.setBalance(ctx, toAddr, k.GetBalance(ctx, toAddr).Add(amount))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokenTransfer,
			sdk.NewAttribute(types.AttributeKeySender, fromAddr),
			sdk.NewAttribute(types.AttributeKeyRecipient, toAddr),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// IterateBalances iterates over all ledger balances in the store
func (k Keeper) IterateBalances(ctx context.Context, cb func(addr string, amount sdkmath.Int) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.BalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addr := string(iterator.Key()[len(types.BalanceKeyPrefix):])

		var amount sdkmath.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Sprintf("corrupted balance record for %s: %s", addr, err))
		}
		if cb(addr, amount) {
			break
		}
	}
}

// GetAllBalances returns every non-zero ledger balance
func (k Keeper) GetAllBalances(ctx context.Context) []types.Balance {
	balances := make([]types.Balance, 0)
	k.IterateBalances(ctx, func(addr string, amount sdkmath.Int) bool {
		balances = append(balances, types.Balance{Address: addr, Amount: amount})
		return false
	})
	return balances
}
