package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

var (
	// ModuleNamespace is the namespace byte for the oracle module (0x01)
	ModuleNamespace = byte(0x01)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01, 0x01}

	// NodeRegistryKey is the key for the node registry singleton
	NodeRegistryKey = []byte{0x01, 0x02}

	// FeedKeyPrefix is the prefix for feed storage
	FeedKeyPrefix = []byte{0x01, 0x03}

	// DataSourceKeyPrefix is the prefix for data source storage
	DataSourceKeyPrefix = []byte{0x01, 0x04}

	// EthLinkKeyPrefix is the prefix for foreign-owner link storage
	EthLinkKeyPrefix = []byte{0x01, 0x05}

	// NodeAccountKeyPrefix is the prefix for per-node bookkeeping records
	NodeAccountKeyPrefix = []byte{0x01, 0x06}

	// SubscriptionKeyPrefix is the prefix for per-consumer subscriptions
	SubscriptionKeyPrefix = []byte{0x01, 0x07}
)

// DefaultAuthority returns the governance module address as the only allowed
// authority for parameter updates.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// GetFeedKey returns the store key for a feed. The authority is a bech32
// string and can never contain '/', so the first separator is unambiguous
// even when the feed name contains one.
func GetFeedKey(authority, name string) []byte {
	key := append(FeedKeyPrefix, []byte(authority)...)
	key = append(key, '/')
	return append(key, []byte(name)...)
}

// GetDataSourceKey returns the store key for a data source by content id.
func GetDataSourceKey(id []byte) []byte {
	return append(DataSourceKeyPrefix, id...)
}

// GetEthLinkKey returns the store key for an (owner, grantee) link. The
// owner is exactly EthAddressLength bytes, so no separator is needed.
func GetEthLinkKey(ownerEth []byte, grantee string) []byte {
	key := append(EthLinkKeyPrefix, ownerEth...)
	return append(key, []byte(grantee)...)
}

// GetNodeAccountKey returns the store key for a node's bookkeeping record.
func GetNodeAccountKey(identity []byte) []byte {
	return append(NodeAccountKeyPrefix, identity...)
}

// GetSubscriptionKey returns the store key for a consumer's subscription to
// a feed. Consumer and authority are bech32 strings, so the separators
// split unambiguously.
func GetSubscriptionKey(consumer, feedAuthority, feedName string) []byte {
	key := append(SubscriptionKeyPrefix, []byte(consumer)...)
	key = append(key, '/')
	key = append(key, []byte(feedAuthority)...)
	key = append(key, '/')
	return append(key, []byte(feedName)...)
}
