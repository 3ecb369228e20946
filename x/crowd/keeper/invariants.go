package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// RegisterInvariants registers all crowd module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "token-supply", TokenSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "non-negative-balances", NonNegativeBalancesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "campaign-ids", CampaignIDsInvariant(k))
}

// AllInvariants runs all invariants of the crowd module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := TokenSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = NonNegativeBalancesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return CampaignIDsInvariant(k)(ctx)
	}
}

// TokenSupplyInvariant checks that the sum of all ledger balances equals the
// total supply.
func TokenSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		supply := k.GetSupply(ctx)

		sum := sdkmath.ZeroInt()
		k.IterateBalances(ctx, func(addr string, amount sdkmath.Int) bool {
			sum = sum.Add(amount)
			return false
		})

		broken := !sum.Equal(supply)
		return sdk.FormatInvariant(
			types.ModuleName, "token-supply",
			fmt.Sprintf("sum of balances %s, total supply %s\n", sum, supply),
		), broken
	}
}

// NonNegativeBalancesInvariant checks that no ledger balance is negative.
func NonNegativeBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IterateBalances(ctx, func(addr string, amount sdkmath.Int) bool {
			if amount.IsNegative() {
				count++
				msg += fmt.Sprintf("address %s has negative balance %s\n", addr, amount)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "non-negative-balances",
			fmt.Sprintf("found %d negative balances\n%s", count, msg),
		), broken
	}
}

// CampaignIDsInvariant checks that every stored campaign id is below the id
// counter, so the counter can never reassign an existing id.
func CampaignIDsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		count := k.GetCampaignCount(ctx)

		var (
			msg    string
			broken int
		)

		k.IterateCampaigns(ctx, func(campaign types.Campaign) bool {
			if campaign.Id >= count {
				broken++
				msg += fmt.Sprintf("campaign id %d >= counter %d\n", campaign.Id, count)
			}
			return false
		})

		return sdk.FormatInvariant(
			types.ModuleName, "campaign-ids",
			fmt.Sprintf("found %d campaigns beyond the id counter\n%s", broken, msg),
		), broken != 0
	}
}
