package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the crowd MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RegisterUser handles user registration
func (ms msgServer) RegisterUser(goCtx context.Context, msg *types.MsgRegisterUser) (*types.MsgRegisterUserResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if err := ms.Keeper.RegisterUser(goCtx, sender, msg.Name); err != nil {
		return nil, err
	}

	return &types.MsgRegisterUserResponse{}, nil
}

// CreateCampaign handles campaign creation
func (ms msgServer) CreateCampaign(goCtx context.Context, msg *types.MsgCreateCampaign) (*types.MsgCreateCampaignResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}

	campaign, err := ms.Keeper.CreateCampaign(goCtx, creator, msg.Name, msg.Description, msg.Reward)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateCampaignResponse{
		CampaignId: campaign.Id,
	}, nil
}

// UpdateCampaignPerformance handles performance updates from campaign owners
func (ms msgServer) UpdateCampaignPerformance(goCtx context.Context, msg *types.MsgUpdateCampaignPerformance) (*types.MsgUpdateCampaignPerformanceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if err := ms.Keeper.UpdateCampaignPerformance(goCtx, sender, msg.CampaignId, msg.Performance); err != nil {
		return nil, err
	}

	return &types.MsgUpdateCampaignPerformanceResponse{}, nil
}

// SendComputeRequest handles owner-initiated compute dispatch built from
// components
func (ms msgServer) SendComputeRequest(goCtx context.Context, msg *types.MsgSendComputeRequest) (*types.MsgSendComputeRequestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	req, err := types.BuildComputeRequest(
		msg.Source,
		msg.SecretsReference,
		uint8(msg.SecretsSlot),
		msg.SecretsVersion,
		msg.Args,
		msg.BytesArgs,
	)
	if err != nil {
		return nil, err
	}

	requestID, err := ms.Keeper.SendComputeRequest(goCtx, sender, req, msg.SubscriptionId, msg.GasLimit, msg.DomainId)
	if err != nil {
		return nil, err
	}

	return &types.MsgSendComputeRequestResponse{
		RequestId: requestID,
	}, nil
}

// SendRawComputeRequest handles owner-initiated dispatch of a pre-encoded
// payload
func (ms msgServer) SendRawComputeRequest(goCtx context.Context, msg *types.MsgSendRawComputeRequest) (*types.MsgSendRawComputeRequestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	requestID, err := ms.Keeper.SendRawComputeRequest(goCtx, sender, msg.Payload, msg.SubscriptionId, msg.GasLimit, msg.DomainId)
	if err != nil {
		return nil, err
	}

	return &types.MsgSendRawComputeRequestResponse{
		RequestId: requestID,
	}, nil
}

// FulfillComputeRequest handles response delivery from the compute router
func (ms msgServer) FulfillComputeRequest(goCtx context.Context, msg *types.MsgFulfillComputeRequest) (*types.MsgFulfillComputeRequestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if err := ms.Keeper.FulfillComputeRequest(goCtx, sender, msg.RequestId, msg.Response, msg.Error); err != nil {
		return nil, err
	}

	return &types.MsgFulfillComputeRequestResponse{}, nil
}

// Transfer handles a ledger transfer between two addresses
func (ms msgServer) Transfer(goCtx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
	}

	if err := ms.Keeper.Transfer(goCtx, sender, recipient, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgTransferResponse{}, nil
}

// Reward handles reward distribution to a registered user
func (ms msgServer) Reward(goCtx context.Context, msg *types.MsgReward) (*types.MsgRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	target, err := sdk.AccAddressFromBech32(msg.Target)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid target address: %s", err)
	}

	if err := ms.Keeper.Reward(goCtx, sender, target, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgRewardResponse{}, nil
}

// TransferOwnership handles module ownership transfer
func (ms msgServer) TransferOwnership(goCtx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	newOwner, err := sdk.AccAddressFromBech32(msg.NewOwner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid new owner address: %s", err)
	}

	if err := ms.Keeper.TransferOwnership(goCtx, sender, newOwner); err != nil {
		return nil, err
	}

	return &types.MsgTransferOwnershipResponse{}, nil
}

// UpdateParams handles parameter updates from the module owner
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if err := ms.Keeper.UpdateParams(goCtx, sender, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
