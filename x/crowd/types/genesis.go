package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the crowd module's genesis state.
type GenesisState struct {
	Params         Params      `json:"params"`
	Owner          string      `json:"owner"`
	Supply         sdkmath.Int `json:"supply"`
	Balances       []Balance   `json:"balances"`
	Users          []User      `json:"users"`
	Campaigns      []Campaign  `json:"campaigns"`
	NextCampaignId uint64      `json:"next_campaign_id"`
	LastRequestId  []byte      `json:"last_request_id,omitempty"`
	LastResponse   []byte      `json:"last_response,omitempty"`
	LastError      []byte      `json:"last_error,omitempty"`
}

// DefaultGenesis returns the default genesis state. The owner must be set by
// the deployment before the chain starts; the zero supply means no tokens are
// minted.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		Owner:          "",
		Supply:         sdkmath.ZeroInt(),
		Balances:       []Balance{},
		Users:          []User{},
		Campaigns:      []Campaign{},
		NextCampaignId: 0,
	}
}

// NewGenesisState builds a genesis state that mints the full supply to the
// owner, matching the construction-time mint of the original deployment.
func NewGenesisState(owner string, supply sdkmath.Int) *GenesisState {
	gs := DefaultGenesis()
	gs.Owner = owner
	gs.Supply = supply
	return gs
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Owner); err != nil {
			return fmt.Errorf("invalid owner address: %w", err)
		}
	}

	if gs.Supply.IsNil() || gs.Supply.IsNegative() {
		return fmt.Errorf("supply must be non-negative")
	}

	// An explicit balance split must conserve the declared supply.
	if len(gs.Balances) > 0 {
		sum := sdkmath.ZeroInt()
		seen := make(map[string]struct{}, len(gs.Balances))
		for _, b := range gs.Balances {
			if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
				return fmt.Errorf("invalid balance address %q: %w", b.Address, err)
			}
			if _, ok := seen[b.Address]; ok {
				return fmt.Errorf("duplicate balance for address %s", b.Address)
			}
			seen[b.Address] = struct{}{}
			if b.Amount.IsNil() || b.Amount.IsNegative() {
				return fmt.Errorf("balance for %s must be non-negative", b.Address)
			}
			sum = sum.Add(b.Amount)
		}
		if !sum.Equal(gs.Supply) {
			return fmt.Errorf("balances sum %s does not match supply %s", sum, gs.Supply)
		}
	}

	seenUsers := make(map[string]struct{}, len(gs.Users))
	for _, u := range gs.Users {
		if _, err := sdk.AccAddressFromBech32(u.Address); err != nil {
			return fmt.Errorf("invalid user address %q: %w", u.Address, err)
		}
		if _, ok := seenUsers[u.Address]; ok {
			return fmt.Errorf("duplicate user record for %s", u.Address)
		}
		seenUsers[u.Address] = struct{}{}
		if u.Name == "" {
			return fmt.Errorf("user %s has an empty name", u.Address)
		}
		if u.Balance.IsNil() || u.Balance.IsNegative() {
			return fmt.Errorf("user %s has a negative reward balance", u.Address)
		}
	}

	seenCampaigns := make(map[uint64]struct{}, len(gs.Campaigns))
	for _, c := range gs.Campaigns {
		if c.Id >= gs.NextCampaignId {
			return fmt.Errorf("campaign id %d exceeds next campaign id %d", c.Id, gs.NextCampaignId)
		}
		if _, ok := seenCampaigns[c.Id]; ok {
			return fmt.Errorf("duplicate campaign id %d", c.Id)
		}
		seenCampaigns[c.Id] = struct{}{}
		if c.Name == "" || c.Description == "" {
			return fmt.Errorf("campaign %d has an empty name or description", c.Id)
		}
		if c.Reward.IsNil() || !c.Reward.IsPositive() {
			return fmt.Errorf("campaign %d reward must be positive", c.Id)
		}
		if _, err := sdk.AccAddressFromBech32(c.Owner); err != nil {
			return fmt.Errorf("campaign %d has an invalid owner: %w", c.Id, err)
		}
	}

	if len(gs.LastRequestId) != 0 && len(gs.LastRequestId) != RequestIDLength {
		return fmt.Errorf("last request id must be %d bytes, got %d", RequestIDLength, len(gs.LastRequestId))
	}

	return nil
}
