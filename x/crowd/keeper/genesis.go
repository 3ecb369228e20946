package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
// When no explicit balance split is given the full supply is minted to the
// owner, matching the construction-time mint of the original deployment.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	if genState.Owner != "" {
		k.SetOwner(ctx, genState.Owner)
	}

	if len(genState.Balances) == 0 {
		if genState.Supply.IsPositive() {
			if genState.Owner == "" {
				panic("genesis supply requires an owner to mint to")
			}
			if err := k.MintInitial(ctx, genState.Owner, genState.Supply); err != nil {
				panic(fmt.Sprintf("failed to mint initial supply: %s", err))
			}
		}
	} else {
		k.setSupply(ctx, genState.Supply)
		for _, b := range genState.Balances {
			k.setBalance(ctx, b.Address, b.Amount)
		}
	}

	for _, user := range genState.Users {
		k.SetUser(ctx, user)
	}

	for _, campaign := range genState.Campaigns {
		k.SetCampaign(ctx, campaign)
	}
	k.SetCampaignCount(ctx, genState.NextCampaignId)

	k.RestoreCorrelatorState(ctx, genState.LastRequestId, genState.LastResponse, genState.LastError)

	k.Logger(ctx).Info("crowd module genesis initialized",
		"users", len(genState.Users),
		"campaigns", len(genState.Campaigns),
		"supply", genState.Supply.String(),
	)
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:         k.GetParams(ctx),
		Owner:          k.GetOwner(ctx),
		Supply:         k.GetSupply(ctx),
		Balances:       k.GetAllBalances(ctx),
		Users:          k.GetAllUsers(ctx),
		Campaigns:      k.GetAllCampaigns(ctx),
		NextCampaignId: k.GetCampaignCount(ctx),
		LastRequestId:  k.GetLastRequestID(ctx),
		LastResponse:   k.GetLastResponse(ctx),
		LastError:      k.GetLastError(ctx),
	}
}
