package types

import "fmt"

// DefaultDenom is the denom the faucet dispenses.
const DefaultDenom = "uvrs"

const (
	// DefaultAmountPerRequest is 10 whole tokens at 6 decimals.
	DefaultAmountPerRequest uint64 = 10_000_000

	// DefaultCooldownSeconds spaces requests per account a day apart.
	DefaultCooldownSeconds uint64 = 86_400
)

// Params holds the faucet configuration.
type Params struct {
	// AmountPerRequest is minted to the requester on every successful
	// request.
	AmountPerRequest uint64 `json:"amount_per_request"`

	// CooldownSeconds is the minimum spacing between requests from the
	// same account.
	CooldownSeconds uint64 `json:"cooldown_seconds"`

	// Active gates the faucet as a whole. Mainnet runs with the faucet
	// disabled.
	Active bool `json:"active"`

	// Denom is the denom dispensed.
	Denom string `json:"denom"`
}

// DefaultParams returns default faucet parameters
func DefaultParams() Params {
	return Params{
		AmountPerRequest: DefaultAmountPerRequest,
		CooldownSeconds:  DefaultCooldownSeconds,
		Active:           true,
		Denom:            DefaultDenom,
	}
}

// MainnetParams returns parameters suitable for mainnet deployment
func MainnetParams() Params {
	params := DefaultParams()
	params.Active = false
	return params
}

// Validate checks the parameter set for internal consistency.
func (p Params) Validate() error {
	if p.AmountPerRequest == 0 {
		return fmt.Errorf("amount per request must be positive")
	}
	if p.Denom == "" {
		return fmt.Errorf("denom must be set")
	}
	return nil
}
