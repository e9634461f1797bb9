package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

var (
	// ModuleNamespace is the namespace byte for the faucet module (0x02)
	ModuleNamespace = byte(0x02)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x02, 0x01}

	// LastRequestKeyPrefix is the prefix for per-account cooldown records
	LastRequestKeyPrefix = []byte{0x02, 0x02}
)

// DefaultAuthority returns the governance module address as the only allowed
// authority for parameter updates.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// GetLastRequestKey returns the store key for an account's cooldown record.
func GetLastRequestKey(address string) []byte {
	return append(LastRequestKeyPrefix, []byte(address)...)
}
