package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// QueryServer defines the crowd query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Owner(context.Context, *QueryOwnerRequest) (*QueryOwnerResponse, error)
	Campaign(context.Context, *QueryCampaignRequest) (*QueryCampaignResponse, error)
	Campaigns(context.Context, *QueryCampaignsRequest) (*QueryCampaignsResponse, error)
	User(context.Context, *QueryUserRequest) (*QueryUserResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Supply(context.Context, *QuerySupplyRequest) (*QuerySupplyResponse, error)
	LastRequest(context.Context, *QueryLastRequestRequest) (*QueryLastRequestResponse, error)
}

// QueryParamsRequest requests the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryOwnerRequest requests the module owner address
type QueryOwnerRequest struct{}

// QueryOwnerResponse returns the module owner address
type QueryOwnerResponse struct {
	Owner string `json:"owner"`
}

// QueryCampaignRequest requests a campaign by id
type QueryCampaignRequest struct {
	CampaignId uint64 `json:"campaign_id"`
}

// QueryCampaignResponse returns a campaign record
type QueryCampaignResponse struct {
	Campaign Campaign `json:"campaign"`
}

// QueryCampaignsRequest requests all campaign records
type QueryCampaignsRequest struct{}

// QueryCampaignsResponse returns all campaign records ordered by id
type QueryCampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}

// QueryUserRequest requests a user record by address
type QueryUserRequest struct {
	Address string `json:"address"`
}

// QueryUserResponse returns a user record
type QueryUserResponse struct {
	User User `json:"user"`
}

// QueryBalanceRequest requests the ledger balance of an address
type QueryBalanceRequest struct {
	Address string `json:"address"`
}

// QueryBalanceResponse returns a ledger balance
type QueryBalanceResponse struct {
	Balance sdkmath.Int `json:"balance"`
}

// QuerySupplyRequest requests the total token supply
type QuerySupplyRequest struct{}

// QuerySupplyResponse returns the total token supply
type QuerySupplyResponse struct {
	Supply sdkmath.Int `json:"supply"`
}

// QueryLastRequestRequest requests the correlator state: the outstanding
// request id plus the last recorded response and error payloads
type QueryLastRequestRequest struct{}

// QueryLastRequestResponse returns the correlator state
type QueryLastRequestResponse struct {
	RequestId []byte `json:"request_id,omitempty"`
	Response  []byte `json:"response,omitempty"`
	Error     []byte `json:"error,omitempty"`
}

// Placeholder for protobuf service descriptor
var _Query_serviceDesc = struct{}{}
