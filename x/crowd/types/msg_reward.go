package types

import (
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgReward{}

// MsgReward debits the sender's ledger balance and credits the target user,
// mirroring the amount on the target's reward balance. The target must be a
// registered user.
type MsgReward struct {
	Sender string      `json:"sender"`
	Target string      `json:"target"`
	Amount sdkmath.Int `json:"amount"`
}

// NewMsgReward creates a new MsgReward instance
func NewMsgReward(sender, target string, amount sdkmath.Int) *MsgReward {
	return &MsgReward{
		Sender: sender,
		Target: target,
		Amount: amount,
	}
}

// Reset implements proto.Message
func (msg *MsgReward) Reset() { *msg = MsgReward{} }

// String implements proto.Message
func (msg *MsgReward) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgReward) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgReward) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgReward) Type() string {
	return "reward"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgReward) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgReward) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Target); err != nil {
		return ErrInvalidAddress.Wrapf("invalid target address: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidArgument.Wrap("amount must be positive")
	}

	return nil
}
