package types_test

import (
	"bytes"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

func testAddr(b byte) string {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20)).String()
}

func TestMsgRegisterUserValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgRegisterUser
		wantErr error
	}{
		{
			name: "valid",
			msg:  types.NewMsgRegisterUser(testAddr(0x01), "Alice"),
		},
		{
			name:    "invalid sender",
			msg:     types.NewMsgRegisterUser("garbage", "Alice"),
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "empty name",
			msg:     types.NewMsgRegisterUser(testAddr(0x01), ""),
			wantErr: types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgCreateCampaignValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgCreateCampaign
		wantErr error
	}{
		{
			name: "valid",
			msg:  types.NewMsgCreateCampaign(testAddr(0x01), "Launch", "desc", sdkmath.NewInt(10)),
		},
		{
			name:    "invalid creator",
			msg:     types.NewMsgCreateCampaign("garbage", "Launch", "desc", sdkmath.NewInt(10)),
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "empty name",
			msg:     types.NewMsgCreateCampaign(testAddr(0x01), "", "desc", sdkmath.NewInt(10)),
			wantErr: types.ErrInvalidArgument,
		},
		{
			name:    "empty description",
			msg:     types.NewMsgCreateCampaign(testAddr(0x01), "Launch", "", sdkmath.NewInt(10)),
			wantErr: types.ErrInvalidArgument,
		},
		{
			name:    "zero reward",
			msg:     types.NewMsgCreateCampaign(testAddr(0x01), "Launch", "desc", sdkmath.ZeroInt()),
			wantErr: types.ErrInvalidArgument,
		},
		{
			name:    "nil reward",
			msg:     &types.MsgCreateCampaign{Creator: testAddr(0x01), Name: "Launch", Description: "desc"},
			wantErr: types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgTransferValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgTransfer
		wantErr error
	}{
		{
			name: "valid",
			msg:  types.NewMsgTransfer(testAddr(0x01), testAddr(0x02), sdkmath.NewInt(5)),
		},
		{
			name:    "invalid recipient",
			msg:     types.NewMsgTransfer(testAddr(0x01), "garbage", sdkmath.NewInt(5)),
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "negative amount",
			msg:     types.NewMsgTransfer(testAddr(0x01), testAddr(0x02), sdkmath.NewInt(-5)),
			wantErr: types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgSendComputeRequestValidateBasic(t *testing.T) {
	valid := func() *types.MsgSendComputeRequest {
		return types.NewMsgSendComputeRequest(testAddr(0x01), "return 1;", 1, 100_000, []byte{0x01})
	}

	tests := []struct {
		name    string
		mutate  func(msg *types.MsgSendComputeRequest)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(msg *types.MsgSendComputeRequest) {},
		},
		{
			name:    "empty source",
			mutate:  func(msg *types.MsgSendComputeRequest) { msg.Source = "" },
			wantErr: types.ErrInvalidArgument,
		},
		{
			name:    "secrets slot out of range",
			mutate:  func(msg *types.MsgSendComputeRequest) { msg.SecretsSlot = 256 },
			wantErr: types.ErrInvalidArgument,
		},
		{
			name:    "zero gas limit",
			mutate:  func(msg *types.MsgSendComputeRequest) { msg.GasLimit = 0 },
			wantErr: types.ErrInvalidArgument,
		},
		{
			name:    "empty domain id",
			mutate:  func(msg *types.MsgSendComputeRequest) { msg.DomainId = nil },
			wantErr: types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid()
			tt.mutate(msg)

			err := msg.ValidateBasic()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgFulfillComputeRequestValidateBasic(t *testing.T) {
	id := bytes.Repeat([]byte{0xaa}, types.RequestIDLength)

	require.NoError(t, types.NewMsgFulfillComputeRequest(testAddr(0x01), id, []byte("ok"), nil).ValidateBasic())

	err := types.NewMsgFulfillComputeRequest(testAddr(0x01), id[:10], []byte("ok"), nil).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	err = types.NewMsgFulfillComputeRequest("garbage", id, []byte("ok"), nil).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestMsgUpdateParamsValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgUpdateParams(testAddr(0x01), types.DefaultParams()).ValidateBasic())

	bad := types.DefaultParams()
	bad.TokenName = ""
	require.Error(t, types.NewMsgUpdateParams(testAddr(0x01), bad).ValidateBasic())
}

func TestMsgSigners(t *testing.T) {
	sender := testAddr(0x01)

	msgs := []sdk.Msg{
		types.NewMsgRegisterUser(sender, "Alice"),
		types.NewMsgTransfer(sender, testAddr(0x02), sdkmath.NewInt(1)),
		types.NewMsgTransferOwnership(sender, testAddr(0x02)),
	}

	for _, msg := range msgs {
		signers := msg.(interface{ GetSigners() []sdk.AccAddress }).GetSigners()
		require.Len(t, signers, 1)
		require.Equal(t, sender, signers[0].String())
	}
}
