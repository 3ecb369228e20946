package types

import (
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgFulfillComputeRequest{}

// MsgFulfillComputeRequest delivers the result of an off-chain computation.
// Only the router address configured in module params may send it, and the
// request id must match the outstanding one.
type MsgFulfillComputeRequest struct {
	Sender    string `json:"sender"`
	RequestId []byte `json:"request_id"`
	Response  []byte `json:"response,omitempty"`
	Error     []byte `json:"error,omitempty"`
}

// NewMsgFulfillComputeRequest creates a new MsgFulfillComputeRequest instance
func NewMsgFulfillComputeRequest(sender string, requestID, response, errPayload []byte) *MsgFulfillComputeRequest {
	return &MsgFulfillComputeRequest{
		Sender:    sender,
		RequestId: requestID,
		Response:  response,
		Error:     errPayload,
	}
}

// Reset implements proto.Message
func (msg *MsgFulfillComputeRequest) Reset() { *msg = MsgFulfillComputeRequest{} }

// String implements proto.Message
func (msg *MsgFulfillComputeRequest) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgFulfillComputeRequest) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgFulfillComputeRequest) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgFulfillComputeRequest) Type() string {
	return "fulfill_compute_request"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgFulfillComputeRequest) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgFulfillComputeRequest) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgFulfillComputeRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if len(msg.RequestId) != RequestIDLength {
		return ErrInvalidArgument.Wrapf("request id must be %d bytes, got %d", RequestIDLength, len(msg.RequestId))
	}

	return nil
}
