package types

import "fmt"

// GenesisState defines the faucet module's genesis state.
type GenesisState struct {
	Params       Params        `json:"params"`
	LastRequests []LastRequest `json:"last_requests"`
}

// DefaultGenesis returns the default genesis state for the faucet module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		LastRequests: []LastRequest{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(gs.LastRequests))
	for _, record := range gs.LastRequests {
		if record.Address == "" {
			return fmt.Errorf("cooldown record address cannot be empty")
		}
		if record.Timestamp < 0 {
			return fmt.Errorf("cooldown record for %s has negative timestamp", record.Address)
		}
		if _, ok := seen[record.Address]; ok {
			return fmt.Errorf("duplicate cooldown record for %s", record.Address)
		}
		seen[record.Address] = struct{}{}
	}

	return nil
}
