package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veris-chain/veris/testutil/keeper"
	"github.com/veris-chain/veris/x/oracle/keeper"
	"github.com/veris-chain/veris/x/oracle/types"
)

// TestCreateDataSource tests explicit registration under the owner's
// signature
func TestCreateDataSource(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	creator := sdk.AccAddress([]byte("source_creator______")).String()

	key, ownerEth := newEthSigner(t)
	signature := signDigest(t, key,
		keeper.DataSourceDigest(types.DataSourceKindPublic, testSource, ownerEth, testSourceName))

	id, err := k.CreateDataSource(ctx, creator, types.DataSourceKindPublic, testSourceName, testSource, ownerEth, signature)
	require.NoError(t, err)
	require.Equal(t, keeper.ComputeDataSourceID(types.DataSourceKindPublic, testSource, ownerEth, testSourceName), id)

	source, err := k.GetDataSource(ctx, id)
	require.NoError(t, err)
	require.Equal(t, creator, source.Owner)
	require.Equal(t, ownerEth, source.OwnerEth)
	require.Equal(t, types.DataSourceKindPublic, source.Kind)
	require.Equal(t, testSourceName, source.Name)
	require.Equal(t, testSource, source.Source)
	require.Equal(t, ctx.BlockTime().Unix(), source.CreatedAt)
}

// TestCreateDataSource_Duplicate tests that the content id is unique
func TestCreateDataSource_Duplicate(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	creator := sdk.AccAddress([]byte("source_creator______")).String()

	key, ownerEth := newEthSigner(t)
	signature := signDigest(t, key,
		keeper.DataSourceDigest(types.DataSourceKindPublic, testSource, ownerEth, testSourceName))

	_, err := k.CreateDataSource(ctx, creator, types.DataSourceKindPublic, testSourceName, testSource, ownerEth, signature)
	require.NoError(t, err)

	_, err = k.CreateDataSource(ctx, creator, types.DataSourceKindPublic, testSourceName, testSource, ownerEth, signature)
	require.ErrorIs(t, err, types.ErrDataSourceExists)
}

// TestCreateDataSource_BadSignature tests that a foreign signature rejects
// the registration
func TestCreateDataSource_BadSignature(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	creator := sdk.AccAddress([]byte("source_creator______")).String()

	_, ownerEth := newEthSigner(t)
	otherKey, _ := newEthSigner(t)
	signature := signDigest(t, otherKey,
		keeper.DataSourceDigest(types.DataSourceKindPublic, testSource, ownerEth, testSourceName))

	_, err := k.CreateDataSource(ctx, creator, types.DataSourceKindPublic, testSourceName, testSource, ownerEth, signature)
	require.ErrorIs(t, err, types.ErrRecoveredAddressMismatch)
	require.False(t, k.HasDataSource(ctx,
		keeper.ComputeDataSourceID(types.DataSourceKindPublic, testSource, ownerEth, testSourceName)))
}

// TestCreatePermit tests the grant lifecycle and its duplicate guard
func TestCreatePermit(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	grantee := sdk.AccAddress([]byte("permit_grantee______")).String()

	key, ownerEth := newEthSigner(t)
	signature := signDigest(t, key, keeper.PermitDigest(ownerEth, grantee))

	require.NoError(t, k.CreatePermit(ctx, ownerEth, grantee, signature))
	require.True(t, k.HasEthLink(ctx, ownerEth, grantee))

	link, err := k.GetEthLink(ctx, ownerEth, grantee)
	require.NoError(t, err)
	require.Equal(t, ownerEth, link.OwnerEth)
	require.Equal(t, grantee, link.Grantee)

	err = k.CreatePermit(ctx, ownerEth, grantee, signature)
	require.ErrorIs(t, err, types.ErrEthLinkExists)
}

// TestRevokePermit tests deleting a grant under the owner's revoke
// signature
func TestRevokePermit(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	grantee := sdk.AccAddress([]byte("permit_grantee______")).String()

	key, ownerEth := newEthSigner(t)
	require.NoError(t, k.CreatePermit(ctx, ownerEth, grantee,
		signDigest(t, key, keeper.PermitDigest(ownerEth, grantee))))

	revokeSig := signDigest(t, key, keeper.RevokePermitDigest(ownerEth, grantee))
	require.NoError(t, k.RevokePermit(ctx, ownerEth, grantee, revokeSig))
	require.False(t, k.HasEthLink(ctx, ownerEth, grantee))

	// Revoking again finds nothing.
	err := k.RevokePermit(ctx, ownerEth, grantee, revokeSig)
	require.ErrorIs(t, err, types.ErrEthLinkNotFound)
}

// TestRevokePermit_WrongSigner tests that only the owner can revoke
func TestRevokePermit_WrongSigner(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	grantee := sdk.AccAddress([]byte("permit_grantee______")).String()

	key, ownerEth := newEthSigner(t)
	require.NoError(t, k.CreatePermit(ctx, ownerEth, grantee,
		signDigest(t, key, keeper.PermitDigest(ownerEth, grantee))))

	otherKey, _ := newEthSigner(t)
	err := k.RevokePermit(ctx, ownerEth, grantee,
		signDigest(t, otherKey, keeper.RevokePermitDigest(ownerEth, grantee)))
	require.ErrorIs(t, err, types.ErrPermitRecoveredAddressMismatch)
	require.True(t, k.HasEthLink(ctx, ownerEth, grantee))
}

// TestIterateDataSources tests enumeration across distinct owners
func TestIterateDataSources(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)
	creator := sdk.AccAddress([]byte("source_creator______")).String()

	for _, name := range []string{"btc-usd", "eth-usd", "atom-usd"} {
		key, ownerEth := newEthSigner(t)
		signature := signDigest(t, key,
			keeper.DataSourceDigest(types.DataSourceKindPublic, testSource, ownerEth, name))
		_, err := k.CreateDataSource(ctx, creator, types.DataSourceKindPublic, name, testSource, ownerEth, signature)
		require.NoError(t, err)
	}

	var names []string
	k.IterateDataSources(ctx, func(source types.DataSource) bool {
		names = append(names, source.Name)
		return false
	})
	require.ElementsMatch(t, []string{"btc-usd", "eth-usd", "atom-usd"}, names)
}
