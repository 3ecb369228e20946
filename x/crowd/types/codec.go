package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

// Because the Msg types are hand-written rather than protoc-generated, the
// gogoproto name registration that generated code performs must be done here;
// without it every message resolves to an empty name and the interface
// registry cannot derive distinct typeURLs.
func init() {
	proto.RegisterType(&MsgRegisterUser{}, "crowd.MsgRegisterUser")
	proto.RegisterType(&MsgCreateCampaign{}, "crowd.MsgCreateCampaign")
	proto.RegisterType(&MsgUpdateCampaignPerformance{}, "crowd.MsgUpdateCampaignPerformance")
	proto.RegisterType(&MsgSendComputeRequest{}, "crowd.MsgSendComputeRequest")
	proto.RegisterType(&MsgSendRawComputeRequest{}, "crowd.MsgSendRawComputeRequest")
	proto.RegisterType(&MsgFulfillComputeRequest{}, "crowd.MsgFulfillComputeRequest")
	proto.RegisterType(&MsgTransfer{}, "crowd.MsgTransfer")
	proto.RegisterType(&MsgReward{}, "crowd.MsgReward")
	proto.RegisterType(&MsgTransferOwnership{}, "crowd.MsgTransferOwnership")
	proto.RegisterType(&MsgUpdateParams{}, "crowd.MsgUpdateParams")
}

// RegisterLegacyAminoCodec registers the crowd module's concrete types on the
// provided LegacyAmino codec. These types are used for Amino JSON
// serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterUser{}, "crowd/RegisterUser", nil)
	cdc.RegisterConcrete(&MsgCreateCampaign{}, "crowd/CreateCampaign", nil)
	cdc.RegisterConcrete(&MsgUpdateCampaignPerformance{}, "crowd/UpdateCampaignPerformance", nil)
	cdc.RegisterConcrete(&MsgSendComputeRequest{}, "crowd/SendComputeRequest", nil)
	cdc.RegisterConcrete(&MsgSendRawComputeRequest{}, "crowd/SendRawComputeRequest", nil)
	cdc.RegisterConcrete(&MsgFulfillComputeRequest{}, "crowd/FulfillComputeRequest", nil)
	cdc.RegisterConcrete(&MsgTransfer{}, "crowd/Transfer", nil)
	cdc.RegisterConcrete(&MsgReward{}, "crowd/Reward", nil)
	cdc.RegisterConcrete(&MsgTransferOwnership{}, "crowd/TransferOwnership", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "crowd/UpdateParams", nil)
}

// RegisterInterfaces registers the crowd module's message implementations
// with the interface registry.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRegisterUser{},
		&MsgCreateCampaign{},
		&MsgUpdateCampaignPerformance{},
		&MsgSendComputeRequest{},
		&MsgSendRawComputeRequest{},
		&MsgFulfillComputeRequest{},
		&MsgTransfer{},
		&MsgReward{},
		&MsgTransferOwnership{},
		&MsgUpdateParams{},
	)
}

// ModuleCdc references the crowd module's amino codec, used for sign bytes.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
