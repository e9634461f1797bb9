package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func TestDefaultGenesisValidate(t *testing.T) {
	if err := DefaultGenesis().Validate(); err != nil {
		t.Errorf("DefaultGenesis().Validate() = %v, want nil", err)
	}
}

func TestGenesisValidateRejectsBadRecords(t *testing.T) {
	addr := sdk.AccAddress([]byte("faucet_requester____")).String()

	tests := []struct {
		name    string
		records []LastRequest
	}{
		{"empty address", []LastRequest{{Address: "", Timestamp: 1}}},
		{"negative timestamp", []LastRequest{{Address: addr, Timestamp: -1}}},
		{"duplicate address", []LastRequest{
			{Address: addr, Timestamp: 1},
			{Address: addr, Timestamp: 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genState := GenesisState{
				Params:       DefaultParams(),
				LastRequests: tt.records,
			}
			if err := genState.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestGenesisValidateRejectsBadParams(t *testing.T) {
	genState := DefaultGenesis()
	genState.Params.AmountPerRequest = 0

	if err := genState.Validate(); err == nil {
		t.Error("Validate() = nil, want error")
	}
}
