package types

// Event types for the crowd module
// All event types use lowercase with underscore separator (module_action format)
const (
	// Registry events
	EventTypeUserRegistered             = "user_registered"
	EventTypeCampaignCreated            = "campaign_created"
	EventTypeCampaignPerformanceUpdated = "campaign_performance_updated"

	// Ledger events
	EventTypeTokenTransfer     = "token_transfer"
	EventTypeRewardDistributed = "reward_distributed"

	// Compute events
	EventTypeComputeRequestSent      = "compute_request_sent"
	EventTypeComputeResponseReceived = "compute_response_received"

	// Administration events
	EventTypeOwnershipTransferred = "ownership_transferred"
	EventTypeParamsUpdated        = "params_updated"
)

// Event attribute keys for the crowd module
const (
	// Identity attributes
	AttributeKeyAddress   = "address"
	AttributeKeySender    = "sender"
	AttributeKeyRecipient = "recipient"
	AttributeKeyOwner     = "owner"
	AttributeKeyNewOwner  = "new_owner"

	// User attributes
	AttributeKeyName = "name"

	// Campaign attributes
	AttributeKeyCampaignID  = "campaign_id"
	AttributeKeyDescription = "description"
	AttributeKeyReward      = "reward"
	AttributeKeyPerformance = "performance"

	// Ledger attributes
	AttributeKeyAmount = "amount"

	// Compute attributes
	AttributeKeyRequestID      = "request_id"
	AttributeKeySubscriptionID = "subscription_id"
	AttributeKeyGasLimit       = "gas_limit"
	AttributeKeyDomainID       = "domain_id"
	AttributeKeyResponse       = "response"
	AttributeKeyError          = "error"
)
