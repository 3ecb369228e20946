package types

import (
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgUpdateParams{}

// MsgUpdateParams replaces the module parameters. Only the module owner may
// send it.
type MsgUpdateParams struct {
	Sender string `json:"sender"`
	Params Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(sender string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Sender: sender,
		Params: params,
	}
}

// Reset implements proto.Message
func (msg *MsgUpdateParams) Reset() { *msg = MsgUpdateParams{} }

// String implements proto.Message
func (msg *MsgUpdateParams) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgUpdateParams) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgUpdateParams) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgUpdateParams) Type() string {
	return "update_params"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	return msg.Params.Validate()
}
