package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crowd-chain/crowd/x/crowd/types"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *types.Params)
		wantErr bool
	}{
		{
			name:   "default is valid",
			mutate: func(p *types.Params) {},
		},
		{
			name:   "valid router address",
			mutate: func(p *types.Params) { p.RouterAddress = testAddr(0x02) },
		},
		{
			name:    "malformed router address",
			mutate:  func(p *types.Params) { p.RouterAddress = "garbage" },
			wantErr: true,
		},
		{
			name:    "empty token name",
			mutate:  func(p *types.Params) { p.TokenName = "" },
			wantErr: true,
		},
		{
			name:    "empty token symbol",
			mutate:  func(p *types.Params) { p.TokenSymbol = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := types.DefaultParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
