package types

import (
	"testing"
)

func TestDefaultParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("DefaultParams().Validate() = %v, want nil", err)
	}
}

func TestMainnetParamsValidate(t *testing.T) {
	params := MainnetParams()
	if err := params.Validate(); err != nil {
		t.Errorf("MainnetParams().Validate() = %v, want nil", err)
	}
	if params.PriorityFeeBufferPercentage != 150 {
		t.Errorf("mainnet buffer = %d, want 150", params.PriorityFeeBufferPercentage)
	}
}

func TestDefaultParamsUseMeteredPolicy(t *testing.T) {
	if DefaultParams().FlatFeePerUpdate != 0 {
		t.Error("default params must select the metered fee policy")
	}
}

func TestParamsValidateRejectsZeroes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"zero base price", func(p *Params) { p.BasePricePerSecondScaled = 0 }},
		{"zero frequency coefficient", func(p *Params) { p.FrequencyCoefficient = 0 }},
		{"zero signers coefficient", func(p *Params) { p.SignersCoefficient = 0 }},
		{"zero buffer percentage", func(p *Params) { p.PriorityFeeBufferPercentage = 0 }},
		{"empty fee denom", func(p *Params) { p.FeeDenom = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultParams()
			tt.mutate(&params)
			if err := params.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestFlatFeeIsAValidPolicySwitch(t *testing.T) {
	params := DefaultParams()
	params.FlatFeePerUpdate = 10

	if err := params.Validate(); err != nil {
		t.Errorf("flat-fee params rejected: %v", err)
	}
}
