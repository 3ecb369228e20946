package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// GetNextCampaignID returns the next campaign id and increments the counter.
// Ids are sequential starting at 0.
func (k Keeper) GetNextCampaignID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.CampaignCountKey)

	var id uint64
	if bz != nil {
		id = sdk.BigEndianToUint64(bz)
	}

	store.Set(types.CampaignCountKey, sdk.Uint64ToBigEndian(id+1))
	return id
}

// GetCampaignCount returns the number of campaigns created so far
func (k Keeper) GetCampaignCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.CampaignCountKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// SetCampaignCount sets the campaign id counter. Used by genesis import.
func (k Keeper) SetCampaignCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	store.Set(types.CampaignCountKey, sdk.Uint64ToBigEndian(count))
}

// CreateCampaign allocates the next sequential id and stores a new active
// campaign owned by creator. The creation event carries the same id that is
// written to the record.
func (k Keeper) CreateCampaign(ctx context.Context, creator sdk.AccAddress, name, description string, reward sdkmath.Int) (types.Campaign, error) {
	if name == "" {
		return types.Campaign{}, types.ErrInvalidArgument.Wrap("campaign name cannot be empty")
	}
	if description == "" {
		return types.Campaign{}, types.ErrInvalidArgument.Wrap("campaign description cannot be empty")
	}
	if reward.IsNil() || !reward.IsPositive() {
		return types.Campaign{}, types.ErrInvalidArgument.Wrap("campaign reward must be positive")
	}

	id := k.GetNextCampaignID(ctx)
	campaign := types.NewCampaign(id, name, description, reward, creator.String())
	k.SetCampaign(ctx, campaign)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCampaignCreated,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaign.Id)),
			sdk.NewAttribute(types.AttributeKeyName, campaign.Name),
			sdk.NewAttribute(types.AttributeKeyDescription, campaign.Description),
			sdk.NewAttribute(types.AttributeKeyReward, campaign.Reward.String()),
			sdk.NewAttribute(types.AttributeKeyOwner, campaign.Owner),
		),
	)

	return campaign, nil
}

// UpdateCampaignPerformance overwrites the performance score of a campaign.
// Only the stored owner may call it; the new value is not bounds-checked.
func (k Keeper) UpdateCampaignPerformance(ctx context.Context, caller sdk.AccAddress, campaignID, performance uint64) error {
	campaign, found := k.GetCampaign(ctx, campaignID)
	if !found {
		return types.ErrNotFound.Wrapf("campaign %d does not exist", campaignID)
	}

	if campaign.Owner != caller.String() {
		return types.ErrUnauthorized.Wrapf("caller %s is not the owner of campaign %d", caller, campaignID)
	}

	campaign.Performance = performance
	k.SetCampaign(ctx, campaign)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCampaignPerformanceUpdated,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaignID)),
			sdk.NewAttribute(types.AttributeKeyPerformance, fmt.Sprintf("%d", performance)),
		),
	)

	return nil
}

// GetCampaign retrieves a campaign record by id
func (k Keeper) GetCampaign(ctx context.Context, id uint64) (types.Campaign, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetCampaignKey(id))
	if bz == nil {
		return types.Campaign{}, false
	}

	var campaign types.Campaign
	if err := json.Unmarshal(bz, &campaign); err != nil {
		panic(fmt.Sprintf("corrupted campaign record %d: %s", id, err))
	}
	return campaign, true
}

// SetCampaign stores a campaign record
func (k Keeper) SetCampaign(ctx context.Context, campaign types.Campaign) {
	bz, err := json.Marshal(campaign)
	if err != nil {
		panic(fmt.Sprintf("marshal campaign record: %s", err))
	}
	store := k.getStore(ctx)
	store.Set(types.GetCampaignKey(campaign.Id), bz)
}

// IterateCampaigns iterates over all campaigns in id order
func (k Keeper) IterateCampaigns(ctx context.Context, cb func(campaign types.Campaign) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.CampaignKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var campaign types.Campaign
		if err := json.Unmarshal(iterator.Value(), &campaign); err != nil {
			panic(fmt.Sprintf("corrupted campaign record: %s", err))
		}
		if cb(campaign) {
			break
		}
	}
}

// GetAllCampaigns returns all campaigns ordered by id
func (k Keeper) GetAllCampaigns(ctx context.Context) []types.Campaign {
	campaigns := make([]types.Campaign, 0)
	k.IterateCampaigns(ctx, func(campaign types.Campaign) bool {
		campaigns = append(campaigns, campaign)
		return false
	})
	return campaigns
}
