package types

import (
	"github.com/cosmos/gogoproto/proto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSendComputeRequest{}

// MsgSendComputeRequest dispatches a computation to the off-chain runtime,
// built from its components. Restricted to the module owner. The new request
// identifier supersedes any previously outstanding one.
type MsgSendComputeRequest struct {
	Sender           string   `json:"sender"`
	Source           string   `json:"source"`
	SecretsReference []byte   `json:"secrets_reference,omitempty"`
	SecretsSlot      uint32   `json:"secrets_slot,omitempty"`
	SecretsVersion   uint64   `json:"secrets_version,omitempty"`
	Args             []string `json:"args,omitempty"`
	BytesArgs        [][]byte `json:"bytes_args,omitempty"`
	SubscriptionId   uint64   `json:"subscription_id"`
	GasLimit         uint32   `json:"gas_limit"`
	DomainId         []byte   `json:"domain_id"`
}

// NewMsgSendComputeRequest creates a new MsgSendComputeRequest instance
func NewMsgSendComputeRequest(sender, source string, subscriptionID uint64, gasLimit uint32, domainID []byte) *MsgSendComputeRequest {
	return &MsgSendComputeRequest{
		Sender:         sender,
		Source:         source,
		SubscriptionId: subscriptionID,
		GasLimit:       gasLimit,
		DomainId:       domainID,
	}
}

// Reset implements proto.Message
func (msg *MsgSendComputeRequest) Reset() { *msg = MsgSendComputeRequest{} }

// String implements proto.Message
func (msg *MsgSendComputeRequest) String() string { return proto.CompactTextString(msg) }

// ProtoMessage implements proto.Message
func (*MsgSendComputeRequest) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (msg *MsgSendComputeRequest) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg *MsgSendComputeRequest) Type() string {
	return "send_compute_request"
}

// GetSigners implements the sdk.Msg interface
func (msg *MsgSendComputeRequest) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgSendComputeRequest) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgSendComputeRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if msg.Source == "" {
		return ErrInvalidArgument.Wrap("source code cannot be empty")
	}

	if msg.SecretsSlot > 255 {
		return ErrInvalidArgument.Wrap("secrets slot must fit in a byte")
	}

	if msg.GasLimit == 0 {
		return ErrInvalidArgument.Wrap("gas limit must be positive")
	}

	if len(msg.DomainId) == 0 {
		return ErrInvalidArgument.Wrap("domain id cannot be empty")
	}

	return nil
}
