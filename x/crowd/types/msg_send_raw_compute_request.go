package types

import (
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSendRawComputeRequest{}

// MsgSendRawComputeRequest dispatches a pre-encoded computation payload to
// the off-chain runtime. Restricted to the module owner. Same supersede
// semantics as MsgSendComputeRequest.
type MsgSendRawComputeRequest struct {
	Sender         string `json:"sender"`
	Payload        []byte `json:"payload"`
	SubscriptionId uint64 `json:"subscription_id"`
	GasLimit       uint32 `json:"gas_limit"`
	DomainId       []byte `json:"domain_id"`
}

// NewMsgSendRawComputeRequest creates a new MsgSendRawComputeRequest instance
func NewMsgSendRawComputeRequest(sender string, payload []byte, subscriptionID uint64, gasLimit uint32, domainID []byte) *MsgSendRawComputeRequest {
	return &MsgSendRawComputeRequest{
		Sender:         sender,
		Payload:        payload,
		SubscriptionId: subscriptionID,
		GasLimit:       gasLimit,
		DomainId:       domainID,
	}
}

// Reset implements proto.Message
func (msg *MsgSendRawComputeRequest) Reset() { *msg = MsgSendRawComputeRequest{} }

// String implements proto.Message
func (msg *MsgSendRawComputeRequest) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgSendRawComputeRequest) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgSendRawComputeRequest) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgSendRawComputeRequest) Type() string {
	return "send_raw_compute_request"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgSendRawComputeRequest) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgSendRawComputeRequest) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgSendRawComputeRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if len(msg.Payload) == 0 {
		return ErrInvalidArgument.Wrap("payload cannot be empty")
	}

	if msg.GasLimit == 0 {
		return ErrInvalidArgument.Wrap("gas limit must be positive")
	}

	if len(msg.DomainId) == 0 {
		return ErrInvalidArgument.Wrap("domain id cannot be empty")
	}

	return nil
}
