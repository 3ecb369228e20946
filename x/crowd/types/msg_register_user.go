package types

import (
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRegisterUser{}

// MsgRegisterUser registers (or re-registers) the sender as a user.
// Re-registration updates the display name only; the accumulated reward
// balance is preserved.
type MsgRegisterUser struct {
	Sender string `json:"sender"`
	Name   string `json:"name"`
}

// NewMsgRegisterUser creates a new MsgRegisterUser instance
func NewMsgRegisterUser(sender, name string) *MsgRegisterUser {
	return &MsgRegisterUser{
		Sender: sender,
		Name:   name,
	}
}

// Reset implements proto.Message
func (msg *MsgRegisterUser) Reset() { *msg = MsgRegisterUser{} }

// String implements proto.Message
func (msg *MsgRegisterUser) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgRegisterUser) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgRegisterUser) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgRegisterUser) Type() string {
	return "register_user"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgRegisterUser) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgRegisterUser) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgRegisterUser) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if msg.Name == "" {
		return ErrInvalidArgument.Wrap("name cannot be empty")
	}

	return nil
}
