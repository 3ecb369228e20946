package types

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreateCampaign{}

// MsgCreateCampaign creates a new campaign owned by the creator.
type MsgCreateCampaign struct {
	Creator     string      `json:"creator"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Reward      sdkmath.Int `json:"reward"`
}

// NewMsgCreateCampaign creates a new MsgCreateCampaign instance
func NewMsgCreateCampaign(creator, name, description string, reward sdkmath.Int) *MsgCreateCampaign {
	return &MsgCreateCampaign{
		Creator:     creator,
		Name:        name,
		Description: description,
		Reward:      reward,
	}
}

// Reset implements proto.Message
func (msg *MsgCreateCampaign) Reset() { *msg = MsgCreateCampaign{} }

// String implements proto.Message
func (msg *MsgCreateCampaign) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgCreateCampaign) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgCreateCampaign) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgCreateCampaign) Type() string {
	return "create_campaign"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgCreateCampaign) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgCreateCampaign) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgCreateCampaign) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}

	if msg.Name == "" {
		return ErrInvalidArgument.Wrap("campaign name cannot be empty")
	}

	if msg.Description == "" {
		return ErrInvalidArgument.Wrap("campaign description cannot be empty")
	}

	if msg.Reward.IsNil() || !msg.Reward.IsPositive() {
		return ErrInvalidArgument.Wrap("campaign reward must be positive")
	}

	return nil
}
