package tests

import (
	"bytes"
	"testing"

	faucettypes "github.com/veris-chain/veris/x/faucet/types"
	oracletypes "github.com/veris-chain/veris/x/oracle/types"

	"github.com/stretchr/testify/require"
)

// TestModuleNamespaceUniqueness verifies that each module has a unique namespace byte
func TestModuleNamespaceUniqueness(t *testing.T) {
	namespaces := map[byte]string{
		oracletypes.ModuleNamespace: "oracle",
		faucettypes.ModuleNamespace: "faucet",
	}

	// Verify all namespaces are different
	require.Equal(t, 2, len(namespaces), "Each module must have a unique namespace")
	require.Equal(t, byte(0x01), oracletypes.ModuleNamespace, "Oracle module namespace must be 0x01")
	require.Equal(t, byte(0x02), faucettypes.ModuleNamespace, "Faucet module namespace must be 0x02")
}

// TestOracleKeysHaveNamespace verifies all oracle module keys are properly namespaced
func TestOracleKeysHaveNamespace(t *testing.T) {
	keys := [][]byte{
		oracletypes.ParamsKey,
		oracletypes.NodeRegistryKey,
		oracletypes.FeedKeyPrefix,
		oracletypes.DataSourceKeyPrefix,
		oracletypes.EthLinkKeyPrefix,
		oracletypes.NodeAccountKeyPrefix,
		oracletypes.SubscriptionKeyPrefix,
	}

	for i, key := range keys {
		require.GreaterOrEqual(t, len(key), 2, "Key %d must have at least 2 bytes (namespace + prefix)", i)
		require.Equal(t, byte(0x01), key[0], "Key %d must start with oracle namespace (0x01), got 0x%02x", i, key[0])
	}
}

// TestFaucetKeysHaveNamespace verifies all faucet module keys are properly namespaced
func TestFaucetKeysHaveNamespace(t *testing.T) {
	keys := [][]byte{
		faucettypes.ParamsKey,
		faucettypes.LastRequestKeyPrefix,
	}

	for i, key := range keys {
		require.GreaterOrEqual(t, len(key), 2, "Key %d must have at least 2 bytes (namespace + prefix)", i)
		require.Equal(t, byte(0x02), key[0], "Key %d must start with faucet namespace (0x02), got 0x%02x", i, key[0])
	}
}

// TestNoKeyCollisionsAcrossModules verifies that no keys collide across modules
func TestNoKeyCollisionsAcrossModules(t *testing.T) {
	oracleKeys := [][]byte{
		oracletypes.ParamsKey,
		oracletypes.NodeRegistryKey,
		oracletypes.FeedKeyPrefix,
		oracletypes.DataSourceKeyPrefix,
		oracletypes.EthLinkKeyPrefix,
		oracletypes.NodeAccountKeyPrefix,
		oracletypes.SubscriptionKeyPrefix,
	}

	faucetKeys := [][]byte{
		faucettypes.ParamsKey,
		faucettypes.LastRequestKeyPrefix,
	}

	for _, ok := range oracleKeys {
		for _, fk := range faucetKeys {
			require.False(t, bytes.Equal(ok, fk), "Oracle key %x collides with faucet key %x", ok, fk)
		}
	}
}

// TestParamsKeyUniqueness verifies ParamsKey is unique across all modules
func TestParamsKeyUniqueness(t *testing.T) {
	oracleParams := oracletypes.ParamsKey
	faucetParams := faucettypes.ParamsKey

	require.False(t, bytes.Equal(oracleParams, faucetParams), "Oracle and faucet ParamsKey must differ")

	require.Equal(t, []byte{0x01, 0x01}, oracleParams, "Oracle ParamsKey must be [0x01, 0x01]")
	require.Equal(t, []byte{0x02, 0x01}, faucetParams, "Faucet ParamsKey must be [0x02, 0x01]")
}

// TestKeyPrefixStructure verifies the two-byte structure of all keys
func TestKeyPrefixStructure(t *testing.T) {
	testCases := []struct {
		name      string
		key       []byte
		namespace byte
		subPrefix byte
	}{
		{"Oracle ParamsKey", oracletypes.ParamsKey, 0x01, 0x01},
		{"Oracle NodeRegistryKey", oracletypes.NodeRegistryKey, 0x01, 0x02},
		{"Oracle FeedKeyPrefix", oracletypes.FeedKeyPrefix, 0x01, 0x03},
		{"Oracle DataSourceKeyPrefix", oracletypes.DataSourceKeyPrefix, 0x01, 0x04},
		{"Oracle EthLinkKeyPrefix", oracletypes.EthLinkKeyPrefix, 0x01, 0x05},
		{"Faucet ParamsKey", faucettypes.ParamsKey, 0x02, 0x01},
		{"Faucet LastRequestKeyPrefix", faucettypes.LastRequestKeyPrefix, 0x02, 0x02},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.GreaterOrEqual(t, len(tc.key), 2, "Key must have at least 2 bytes")
			require.Equal(t, tc.namespace, tc.key[0], "First byte must be module namespace")
			require.Equal(t, tc.subPrefix, tc.key[1], "Second byte must be sub-prefix")
		})
	}
}
