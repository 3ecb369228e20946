package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "crowd"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_crowd"

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// RequestIDLength is the size of a compute request identifier in bytes.
const RequestIDLength = 32

// Store key prefixes
var (
	ParamsKey         = []byte{0x01} // key for module parameters
	OwnerKey          = []byte{0x02} // key for the module owner address
	SupplyKey         = []byte{0x03} // key for the total token supply
	BalanceKeyPrefix  = []byte{0x04} // prefix for per-address token balances
	UserKeyPrefix     = []byte{0x05} // prefix for registered user records
	CampaignKeyPrefix = []byte{0x06} // prefix for campaign records
	CampaignCountKey  = []byte{0x07} // key for the next campaign id counter
	LastRequestIDKey  = []byte{0x08} // key for the outstanding compute request id
	LastResponseKey   = []byte{0x09} // key for the last compute response payload
	LastErrorKey      = []byte{0x0A} // key for the last compute error payload
)

// GetBalanceKey returns the store key for an address's token balance
func GetBalanceKey(addr string) []byte {
	return append(BalanceKeyPrefix, []byte(addr)...)
}

// GetUserKey returns the store key for a user record
func GetUserKey(addr string) []byte {
	return append(UserKeyPrefix, []byte(addr)...)
}

// GetCampaignKey returns the store key for a campaign record
func GetCampaignKey(id uint64) []byte {
	return append(CampaignKeyPrefix, sdk.Uint64ToBigEndian(id)...)
}
