package types

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgTransfer{}

// MsgTransfer moves tokens from the sender to the recipient on the module
// ledger.
type MsgTransfer struct {
	Sender    string      `json:"sender"`
	Recipient string      `json:"recipient"`
	Amount    sdkmath.Int `json:"amount"`
}

// NewMsgTransfer creates a new MsgTransfer instance
func NewMsgTransfer(sender, recipient string, amount sdkmath.Int) *MsgTransfer {
	return &MsgTransfer{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}
}

// Reset implements proto.Message
func (msg *MsgTransfer) Reset() { *msg = MsgTransfer{} }

// String implements proto.Message
func (msg *MsgTransfer) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgTransfer) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgTransfer) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgTransfer) Type() string {
	return "transfer"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgTransfer) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgTransfer) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgTransfer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInvalidAddress.Wrapf("invalid recipient address: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidArgument.Wrap("amount must be positive")
	}

	return nil
}
