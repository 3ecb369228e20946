package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/crowd-chain/crowd/testutil/keeper"
	"github.com/crowd-chain/crowd/x/crowd/types"
)

func TestRegisterUser(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	alice := keepertest.TestAddress(0x10)
	require.NoError(t, k.RegisterUser(ctx, alice, "Alice"))

	user, found := k.GetUser(ctx, alice.String())
	require.True(t, found)
	require.Equal(t, "Alice", user.Name)
	require.True(t, user.Balance.IsZero())
}

func TestRegisterUserEmptyName(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	err := k.RegisterUser(ctx, keepertest.TestAddress(0x10), "")
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

// Re-registration renames the user but keeps the reward balance already
// accumulated under the address.
func TestRegisterUserTwicePreservesBalance(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	alice := keepertest.TestAddress(0x10)
	require.NoError(t, k.RegisterUser(ctx, alice, "Alice"))
	require.NoError(t, k.Reward(ctx, keepertest.TestOwner(), alice, sdkmath.NewInt(500)))

	require.NoError(t, k.RegisterUser(ctx, alice, "Bob"))

	user, found := k.GetUser(ctx, alice.String())
	require.True(t, found)
	require.Equal(t, "Bob", user.Name)
	require.Equal(t, sdkmath.NewInt(500), user.Balance)

	require.Len(t, k.GetAllUsers(ctx), 1)
}

func TestGetUserMissing(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	_, found := k.GetUser(ctx, keepertest.TestAddress(0x66).String())
	require.False(t, found)
}

func TestGetAllUsers(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	require.NoError(t, k.RegisterUser(ctx, keepertest.TestAddress(0x10), "Alice"))
	require.NoError(t, k.RegisterUser(ctx, keepertest.TestAddress(0x11), "Bob"))
	require.NoError(t, k.RegisterUser(ctx, keepertest.TestAddress(0x12), "Carol"))

	require.Len(t, k.GetAllUsers(ctx), 3)
}
