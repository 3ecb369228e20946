package types

import (
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgUpdateCampaignPerformance{}

// MsgUpdateCampaignPerformance overwrites a campaign's performance score.
// Only the campaign owner may do this.
type MsgUpdateCampaignPerformance struct {
	Sender      string `json:"sender"`
	CampaignId  uint64 `json:"campaign_id"`
	Performance uint64 `json:"performance"`
}

// NewMsgUpdateCampaignPerformance creates a new MsgUpdateCampaignPerformance instance
func NewMsgUpdateCampaignPerformance(sender string, campaignID, performance uint64) *MsgUpdateCampaignPerformance {
	return &MsgUpdateCampaignPerformance{
		Sender:      sender,
		CampaignId:  campaignID,
		Performance: performance,
	}
}

// Reset implements proto.Message
func (msg *MsgUpdateCampaignPerformance) Reset() { *msg = MsgUpdateCampaignPerformance{} }

// String implements proto.Message
func (msg *MsgUpdateCampaignPerformance) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgUpdateCampaignPerformance) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgUpdateCampaignPerformance) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgUpdateCampaignPerformance) Type() string {
	return "update_campaign_performance"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgUpdateCampaignPerformance) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgUpdateCampaignPerformance) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgUpdateCampaignPerformance) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	return nil
}
