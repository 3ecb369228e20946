package types

import (
	"context"
)

// MsgServer defines the crowd message server interface
type MsgServer interface {
	RegisterUser(context.Context, *MsgRegisterUser) (*MsgRegisterUserResponse, error)
	CreateCampaign(context.Context, *MsgCreateCampaign) (*MsgCreateCampaignResponse, error)
	UpdateCampaignPerformance(context.Context, *MsgUpdateCampaignPerformance) (*MsgUpdateCampaignPerformanceResponse, error)
	SendComputeRequest(context.Context, *MsgSendComputeRequest) (*MsgSendComputeRequestResponse, error)
	SendRawComputeRequest(context.Context, *MsgSendRawComputeRequest) (*MsgSendRawComputeRequestResponse, error)
	FulfillComputeRequest(context.Context, *MsgFulfillComputeRequest) (*MsgFulfillComputeRequestResponse, error)
	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
	Reward(context.Context, *MsgReward) (*MsgRewardResponse, error)
	TransferOwnership(context.Context, *MsgTransferOwnership) (*MsgTransferOwnershipResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Response types

// MsgRegisterUserResponse defines the response for RegisterUser
type MsgRegisterUserResponse struct{}

// MsgCreateCampaignResponse defines the response for CreateCampaign
type MsgCreateCampaignResponse struct {
	CampaignId uint64 `json:"campaign_id"`
}

// MsgUpdateCampaignPerformanceResponse defines the response for UpdateCampaignPerformance
type MsgUpdateCampaignPerformanceResponse struct{}

// MsgSendComputeRequestResponse defines the response for SendComputeRequest
type MsgSendComputeRequestResponse struct {
	RequestId []byte `json:"request_id"`
}

// MsgSendRawComputeRequestResponse defines the response for SendRawComputeRequest
type MsgSendRawComputeRequestResponse struct {
	RequestId []byte `json:"request_id"`
}

// MsgFulfillComputeRequestResponse defines the response for FulfillComputeRequest
type MsgFulfillComputeRequestResponse struct{}

// MsgTransferResponse defines the response for Transfer
type MsgTransferResponse struct{}

// MsgRewardResponse defines the response for Reward
type MsgRewardResponse struct{}

// MsgTransferOwnershipResponse defines the response for TransferOwnership
type MsgTransferOwnershipResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}

// Placeholder for protobuf service descriptor
var _Msg_serviceDesc = struct{}{}
