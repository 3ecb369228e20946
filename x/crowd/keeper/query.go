package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the crowd QueryServer
// interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidArgument.Wrap("empty request")
	}

	return &types.QueryParamsResponse{Params: qs.GetParams(goCtx)}, nil
}

// Owner returns the module owner address
func (qs queryServer) Owner(goCtx context.Context, req *types.QueryOwnerRequest) (*types.QueryOwnerResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidArgument.Wrap("empty request")
	}

	return &types.QueryOwnerResponse{Owner: qs.GetOwner(goCtx)}, nil
}

// Campaign returns a campaign by id
func (qs queryServer) Campaign(goCtx context.Context, req *types.QueryCampaignRequest) (*types.QueryCampaignResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidArgument.Wrap("empty request")
	}

	campaign, found := qs.GetCampaign(goCtx, req.CampaignId)
	if !found {
		return nil, types.ErrNotFound.Wrapf("campaign %d does not exist", req.CampaignId)
	}

	return &types.QueryCampaignResponse{Campaign: campaign}, nil
}

// Campaigns returns all campaigns ordered by id
func (qs queryServer) Campaigns(goCtx context.Context, req *types.QueryCampaignsRequest) (*types.QueryCampaignsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidArgument.Wrap("empty request")
	}

	return &types.QueryCampaignsResponse{Campaigns: qs.GetAllCampaigns(goCtx)}, nil
}

// User returns a user record by address
func (qs queryServer) User(goCtx context.Context, req *types.QueryUserRequest) (*types.QueryUserResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidArgument.Wrap("empty request")
	}

	if _, err := sdk.AccAddressFromBech32(req.Address); err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid address: %s", err)
	}

	user, found := qs.GetUser(goCtx, req.Address)
	if !found {
		return nil, types.ErrNotFound.Wrapf("user %s is not registered", req.Address)
	}

	return &types.QueryUserResponse{User: user}, nil
}

// Balance returns the ledger balance of an address
func (qs queryServer) Balance(goCtx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidArgument.Wrap("empty request")
	}

	if _, err := sdk.AccAddressFromBech32(req.Address); err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid address: %s", err)
	}

	return &types.QueryBalanceResponse{Balance: qs.GetBalance(goCtx, req.Address)}, nil
}

// Supply returns the total token supply
func (qs queryServer) Supply(goCtx context.Context, req *types.QuerySupplyRequest) (*types.QuerySupplyResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidArgument.Wrap("empty request")
	}

	return &types.QuerySupplyResponse{Supply: qs.GetSupply(goCtx)}, nil
}

// LastRequest returns the correlator state: the outstanding request id and
// the last recorded response and error payloads
func (qs queryServer) LastRequest(goCtx context.Context, req *types.QueryLastRequestRequest) (*types.QueryLastRequestResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidArgument.Wrap("empty request")
	}

	return &types.QueryLastRequestResponse{
		RequestId: qs.GetLastRequestID(goCtx),
		Response:  qs.GetLastResponse(goCtx),
		Error:     qs.GetLastError(goCtx),
	}, nil
}
