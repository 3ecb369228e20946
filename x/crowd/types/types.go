package types

import (
	sdkmath "cosmossdk.io/math"
)

// User is a registered participant. Balance mirrors the cumulative rewards
// credited to the user via reward distribution and never decreases.
type User struct {
	Address string      `json:"address"`
	Name    string      `json:"name"`
	Balance sdkmath.Int `json:"balance"`
}

// NewUser creates a user record with a zero reward balance.
func NewUser(address, name string) User {
	return User{
		Address: address,
		Name:    name,
		Balance: sdkmath.ZeroInt(),
	}
}

// Campaign is a crowdsourced campaign record. Id, Name, Description, Reward
// and Owner are immutable after creation; only Performance is mutable, and
// only by the owner.
type Campaign struct {
	Id          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Reward      sdkmath.Int `json:"reward"`
	Owner       string      `json:"owner"`
	Active      bool        `json:"active"`
	Performance uint64      `json:"performance"`
}

// NewCampaign creates an active campaign with zero performance.
func NewCampaign(id uint64, name, description string, reward sdkmath.Int, owner string) Campaign {
	return Campaign{
		Id:          id,
		Name:        name,
		Description: description,
		Reward:      reward,
		Owner:       owner,
		Active:      true,
		Performance: 0,
	}
}

// Balance pairs an address with a ledger amount, used in genesis state.
type Balance struct {
	Address string      `json:"address"`
	Amount  sdkmath.Int `json:"amount"`
}
