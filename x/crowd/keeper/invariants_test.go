package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/crowd-chain/crowd/testutil/keeper"
	"github.com/crowd-chain/crowd/x/crowd/keeper"
	"github.com/crowd-chain/crowd/x/crowd/types"
)

func TestInvariantsHoldAfterOperations(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	alice := keepertest.TestAddress(0x10)
	require.NoError(t, k.RegisterUser(ctx, alice, "Alice"))
	require.NoError(t, k.Reward(ctx, keepertest.TestOwner(), alice, sdkmath.NewInt(300)))
	_, err := k.CreateCampaign(ctx, alice, "Launch", "desc", sdkmath.NewInt(10))
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestTokenSupplyInvariantBroken(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	// Import an inconsistent balance split directly, bypassing the genesis
	// validation that would normally reject it.
	bogus := types.NewGenesisState(keepertest.TestOwner().String(), sdkmath.NewInt(100))
	bogus.Balances = []types.Balance{
		{Address: keepertest.TestOwner().String(), Amount: sdkmath.NewInt(100)},
		{Address: keepertest.TestAddress(0x10).String(), Amount: sdkmath.NewInt(50)},
	}
	k.InitGenesis(ctx, *bogus)

	msg, broken := keeper.TokenSupplyInvariant(k)(ctx)
	require.True(t, broken, msg)
}

func TestCampaignIDsInvariantBroken(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	k.SetCampaign(ctx, types.NewCampaign(9, "Orphan", "desc", sdkmath.NewInt(1), keepertest.TestOwner().String()))

	msg, broken := keeper.CampaignIDsInvariant(k)(ctx)
	require.True(t, broken, msg)
}
