package types

// Faucet module event types
const (
	EventTypeTokensRequested = "faucet_tokens_requested"
	EventTypeParamsUpdated   = "faucet_params_updated"
)

// Faucet module event attribute keys
const (
	AttributeKeyRequester = "requester"
	AttributeKeyAmount    = "amount"
	AttributeKeyDenom     = "denom"
	AttributeKeyAuthority = "authority"
)
