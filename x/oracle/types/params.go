package types

import "fmt"

// DefaultFeeDenom is the denom feeds are funded and charged in.
const DefaultFeeDenom = "uvrs"

// Params holds the protocol-wide pricing configuration.
type Params struct {
	// BasePricePerSecondScaled is the base price per second multiplied by
	// PriceScalar twice, matching the factor arithmetic in the pricing
	// engine.
	BasePricePerSecondScaled uint64 `json:"base_price_per_second_scaled"`

	// FrequencyCoefficient is the exponent for the updates-per-day factor,
	// in units of CoefficientScale (10000 = exponent 1).
	FrequencyCoefficient uint64 `json:"frequency_coefficient"`

	// SignersCoefficient is the exponent for the signature-threshold
	// factor, in units of CoefficientScale.
	SignersCoefficient uint64 `json:"signers_coefficient"`

	// PriorityFeeBufferPercentage scales the computed price to leave
	// headroom for priority fees (150 = 50% buffer).
	PriorityFeeBufferPercentage uint64 `json:"priority_fee_buffer_percentage"`

	// FlatFeePerUpdate, when non-zero, switches publishing to the legacy
	// flat-fee policy charged against per-consumer subscriptions.
	FlatFeePerUpdate uint64 `json:"flat_fee_per_update"`

	// FeeDenom is the denom feeds are funded and charged in.
	FeeDenom string `json:"fee_denom"`
}

// DefaultParams returns default oracle parameters
func DefaultParams() Params {
	return Params{
		// 100 micro-units per second once the two PriceScalar divisions
		// cancel at exponent-1 coefficients.
		BasePricePerSecondScaled:    100_000_000_000_000,
		FrequencyCoefficient:        10_000, // exponent 1
		SignersCoefficient:          10_000, // exponent 1
		PriorityFeeBufferPercentage: 100,    // no buffer
		FlatFeePerUpdate:            0,      // metered policy
		FeeDenom:                    DefaultFeeDenom,
	}
}

// MainnetParams returns parameters suitable for mainnet deployment
func MainnetParams() Params {
	params := DefaultParams()
	// 50% headroom so publishers are not starved during fee spikes.
	params.PriorityFeeBufferPercentage = 150
	return params
}

// Validate checks the parameter set for internal consistency.
func (p Params) Validate() error {
	if p.BasePricePerSecondScaled == 0 {
		return fmt.Errorf("base price must be positive")
	}
	if p.FrequencyCoefficient == 0 {
		return fmt.Errorf("frequency coefficient must be positive")
	}
	if p.SignersCoefficient == 0 {
		return fmt.Errorf("signers coefficient must be positive")
	}
	if p.PriorityFeeBufferPercentage == 0 {
		return fmt.Errorf("priority fee buffer percentage must be positive")
	}
	if p.FeeDenom == "" {
		return fmt.Errorf("fee denom must be set")
	}
	return nil
}
