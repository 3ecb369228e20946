package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/crowd-chain/crowd/testutil/keeper"
	"github.com/crowd-chain/crowd/x/crowd/types"
)

func TestCreateCampaign(t *testing.T) {
	creator := keepertest.TestAddress(0x10)

	tests := []struct {
		name         string
		campaignName string
		description  string
		reward       sdkmath.Int
		wantErr      error
	}{
		{
			name:         "valid campaign",
			campaignName: "Summer Launch",
			description:  "Promote the summer product line",
			reward:       sdkmath.NewInt(100),
		},
		{
			name:         "empty name",
			campaignName: "",
			description:  "desc",
			reward:       sdkmath.NewInt(100),
			wantErr:      types.ErrInvalidArgument,
		},
		{
			name:         "empty description",
			campaignName: "Summer Launch",
			description:  "",
			reward:       sdkmath.NewInt(100),
			wantErr:      types.ErrInvalidArgument,
		},
		{
			name:         "zero reward",
			campaignName: "Summer Launch",
			description:  "desc",
			reward:       sdkmath.NewInt(0),
			wantErr:      types.ErrInvalidArgument,
		},
		{
			name:         "negative reward",
			campaignName: "Summer Launch",
			description:  "desc",
			reward:       sdkmath.NewInt(-1),
			wantErr:      types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ctx, _ := keepertest.CrowdKeeper(t)

			campaign, err := k.CreateCampaign(ctx, creator, tt.campaignName, tt.description, tt.reward)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Zero(t, k.GetCampaignCount(ctx))
				return
			}

			require.NoError(t, err)
			require.Equal(t, uint64(0), campaign.Id)
			require.Equal(t, tt.campaignName, campaign.Name)
			require.Equal(t, creator.String(), campaign.Owner)
			require.True(t, campaign.Active)
			require.Zero(t, campaign.Performance)

			stored, found := k.GetCampaign(ctx, campaign.Id)
			require.True(t, found)
			require.Equal(t, campaign, stored)
		})
	}
}

func TestCreateCampaignSequentialIDs(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)
	creator := keepertest.TestAddress(0x10)

	first, err := k.CreateCampaign(ctx, creator, "First", "desc", sdkmath.NewInt(10))
	require.NoError(t, err)
	second, err := k.CreateCampaign(ctx, creator, "Second", "desc", sdkmath.NewInt(20))
	require.NoError(t, err)

	require.Equal(t, uint64(0), first.Id)
	require.Equal(t, uint64(1), second.Id)
	require.Equal(t, uint64(2), k.GetCampaignCount(ctx))
}

// The creation event must carry the id the campaign was stored under.
func TestCreateCampaignEventID(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)
	creator := keepertest.TestAddress(0x10)

	campaign, err := k.CreateCampaign(ctx, creator, "Tracked", "desc", sdkmath.NewInt(10))
	require.NoError(t, err)

	event := findEvent(t, ctx, types.EventTypeCampaignCreated)
	require.Equal(t, "0", attribute(t, event, types.AttributeKeyCampaignID))

	stored, found := k.GetCampaign(ctx, campaign.Id)
	require.True(t, found)
	require.Equal(t, uint64(0), stored.Id)
}

func TestUpdateCampaignPerformance(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)
	creator := keepertest.TestAddress(0x10)

	campaign, err := k.CreateCampaign(ctx, creator, "Tracked", "desc", sdkmath.NewInt(10))
	require.NoError(t, err)

	require.NoError(t, k.UpdateCampaignPerformance(ctx, creator, campaign.Id, 75))

	stored, found := k.GetCampaign(ctx, campaign.Id)
	require.True(t, found)
	require.Equal(t, uint64(75), stored.Performance)

	// Overwriting with the same value is allowed.
	require.NoError(t, k.UpdateCampaignPerformance(ctx, creator, campaign.Id, 75))
}

func TestUpdateCampaignPerformanceUnauthorized(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)
	creator := keepertest.TestAddress(0x10)
	stranger := keepertest.TestAddress(0x11)

	campaign, err := k.CreateCampaign(ctx, creator, "Tracked", "desc", sdkmath.NewInt(10))
	require.NoError(t, err)

	err = k.UpdateCampaignPerformance(ctx, stranger, campaign.Id, 50)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// The contract owner has no special standing over campaigns either.
	err = k.UpdateCampaignPerformance(ctx, keepertest.TestOwner(), campaign.Id, 50)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	stored, _ := k.GetCampaign(ctx, campaign.Id)
	require.Zero(t, stored.Performance)
}

func TestUpdateCampaignPerformanceMissing(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)

	err := k.UpdateCampaignPerformance(ctx, keepertest.TestAddress(0x10), 99, 10)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetAllCampaigns(t *testing.T) {
	k, ctx, _ := keepertest.CrowdKeeper(t)
	creator := keepertest.TestAddress(0x10)

	for i := 0; i < 3; i++ {
		_, err := k.CreateCampaign(ctx, creator, "Campaign", "desc", sdkmath.NewInt(10))
		require.NoError(t, err)
	}

	campaigns := k.GetAllCampaigns(ctx)
	require.Len(t, campaigns, 3)
	for i, c := range campaigns {
		require.Equal(t, uint64(i), c.Id)
	}
}

// findEvent returns the last emitted event of the given type.
func findEvent(t *testing.T, ctx sdk.Context, eventType string) sdk.Event {
	t.Helper()
	events := ctx.EventManager().Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == eventType {
			return events[i]
		}
	}
	t.Fatalf("event %q not emitted", eventType)
	return sdk.Event{}
}

func attribute(t *testing.T, event sdk.Event, key string) string {
	t.Helper()
	for _, attr := range event.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	t.Fatalf("event %q has no attribute %q", event.Type, key)
	return ""
}
