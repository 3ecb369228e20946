package types

import (
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgTransferOwnership{}

// MsgTransferOwnership hands module ownership to a new address. Only the
// current owner may send it.
type MsgTransferOwnership struct {
	Sender   string `json:"sender"`
	NewOwner string `json:"new_owner"`
}

// NewMsgTransferOwnership creates a new MsgTransferOwnership instance
func NewMsgTransferOwnership(sender, newOwner string) *MsgTransferOwnership {
	return &MsgTransferOwnership{
		Sender:   sender,
		NewOwner: newOwner,
	}
}

// Reset implements proto.Message
func (msg *MsgTransferOwnership) Reset() { *msg = MsgTransferOwnership{} }

// String implements proto.Message
func (msg *MsgTransferOwnership) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgTransferOwnership) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgTransferOwnership) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgTransferOwnership) Type() string {
	return "transfer_ownership"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgTransferOwnership) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgTransferOwnership) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgTransferOwnership) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.NewOwner); err != nil {
		return ErrInvalidAddress.Wrapf("invalid new owner address: %s", err)
	}

	return nil
}
