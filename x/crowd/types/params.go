package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default token metadata for the module ledger.
const (
	DefaultTokenName   = "CrowdToken"
	DefaultTokenSymbol = "CROWD"
)

// Params defines the crowd module parameters.
type Params struct {
	// RouterAddress is the only caller allowed to deliver compute responses.
	// Empty means no router is configured and responses are rejected.
	RouterAddress string `json:"router_address"`
	TokenName     string `json:"token_name"`
	TokenSymbol   string `json:"token_symbol"`
}

// DefaultParams returns default crowd parameters.
func DefaultParams() Params {
	return Params{
		RouterAddress: "",
		TokenName:     DefaultTokenName,
		TokenSymbol:   DefaultTokenSymbol,
	}
}

// Validate checks the parameter set for well-formedness.
func (p Params) Validate() error {
	if p.RouterAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.RouterAddress); err != nil {
			return ErrInvalidAddress.Wrapf("invalid router address: %s", err)
		}
	}
	if p.TokenName == "" {
		return ErrInvalidArgument.Wrap("token name cannot be empty")
	}
	if p.TokenSymbol == "" {
		return ErrInvalidArgument.Wrap("token symbol cannot be empty")
	}
	return nil
}
