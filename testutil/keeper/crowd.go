package keeper

import (
	"bytes"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/crowd-chain/crowd/x/crowd/keeper"
	"github.com/crowd-chain/crowd/x/crowd/types"
)

// DefaultTestSupply is the supply minted to the owner by the test genesis.
var DefaultTestSupply = sdkmath.NewInt(1_000_000)

// TestAddress returns a deterministic bech32 account address for tests.
func TestAddress(b byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20))
}

// Well-known test identities. The owner holds the minted supply; the router
// is the only address allowed to deliver compute responses.
func TestOwner() sdk.AccAddress  { return TestAddress(0x01) }
func TestRouter() sdk.AccAddress { return TestAddress(0x02) }

// CrowdKeeper creates a test keeper for the crowd module with a mock compute
// router. The genesis mints DefaultTestSupply to TestOwner and configures
// TestRouter as the compute router.
func CrowdKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *MockComputeRouter) {
	genesis := types.NewGenesisState(TestOwner().String(), DefaultTestSupply)
	genesis.Params.RouterAddress = TestRouter().String()
	return CrowdKeeperWithGenesis(t, genesis)
}

// CrowdKeeperWithGenesis creates a test keeper initialized from the given
// genesis state.
func CrowdKeeperWithGenesis(t testing.TB, genesis *types.GenesisState) (keeper.Keeper, sdk.Context, *MockComputeRouter) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	router := NewMockComputeRouter()
	k := keeper.NewKeeper(cdc, storeKey, router)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, genesis.Validate())
	k.InitGenesis(ctx, *genesis)

	return *k, ctx, router
}
