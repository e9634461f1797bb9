package keeper_test

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veris-chain/veris/testutil/keeper"
	"github.com/veris-chain/veris/x/oracle/types"
)

// TestGenesisRoundtrip tests that a populated state exports to the genesis
// it was imported from
func TestGenesisRoundtrip(t *testing.T) {
	authority := sdk.AccAddress([]byte("genesis_authority___")).String()
	consumer := sdk.AccAddress([]byte("genesis_consumer____")).String()
	identity := testIdentity(0x01)
	ownerEth := bytes.Repeat([]byte{0x22}, types.EthAddressLength)

	params := types.DefaultParams()
	params.FlatFeePerUpdate = 25

	genesis := types.GenesisState{
		Params: params,
		Registry: &types.NodeRegistry{
			Authority: authority,
			Nodes:     [][]byte{identity},
		},
		NodeAccounts: []types.NodeAccount{{
			Identity:   identity,
			Authority:  authority,
			Active:     true,
			CreatedAt:  1_700_000_000,
			LastActive: 1_700_000_100,
		}},
		DataSources: []types.DataSource{{
			ID:        bytes.Repeat([]byte{0x33}, 32),
			Owner:     authority,
			OwnerEth:  ownerEth,
			Kind:      types.DataSourceKindPrivate,
			Name:      testSourceName,
			Source:    testSource,
			CreatedAt: 1_700_000_000,
		}},
		EthLinks: []types.EthLink{{
			OwnerEth:  ownerEth,
			Grantee:   authority,
			CreatedAt: 1_700_000_000,
		}},
		Feeds: []types.Feed{{
			Name:                 "btc-usd",
			Authority:            authority,
			FeedType:             types.FeedTypePersonal,
			JobID:                bytes.Repeat([]byte{0x4A}, types.JobIDLength),
			DataSourceID:         bytes.Repeat([]byte{0x33}, 32),
			MinSignatures:        1,
			FrequencySeconds:     3_600,
			IPFSCid:              testCid,
			LatestAnswer:         types.Answer{Value: bytes.Repeat([]byte{0xAA}, types.AnswerValueLength), Timestamp: 1_700_000_050},
			AnswerHistory:        []types.Answer{{Value: bytes.Repeat([]byte{0xAA}, types.AnswerValueLength), Timestamp: 1_700_000_050}},
			HistoryCursor:        1,
			Balance:              5_000,
			SubscriptionDueTime:  1_700_086_400,
			PricePerSecondScaled: 2_400,
			PriorityFeeAllowance: 1_000,
			ConsumedPriorityFees: 40,
			CreatedAt:            1_700_000_000,
		}},
		Subscriptions: []types.Subscription{{
			Consumer:      consumer,
			FeedAuthority: authority,
			FeedName:      "btc-usd",
			Balance:       320,
			CreatedAt:     1_700_000_000,
		}},
	}
	require.NoError(t, genesis.Validate())

	k, _, ctx := keepertest.OracleKeeper(t)
	k.InitGenesis(ctx, genesis)

	exported := k.ExportGenesis(ctx)
	require.Equal(t, genesis.Params, exported.Params)
	require.Equal(t, genesis.Registry, exported.Registry)
	require.Equal(t, genesis.NodeAccounts, exported.NodeAccounts)
	require.Equal(t, genesis.DataSources, exported.DataSources)
	require.Equal(t, genesis.EthLinks, exported.EthLinks)
	require.Equal(t, genesis.Feeds, exported.Feeds)
	require.Equal(t, genesis.Subscriptions, exported.Subscriptions)
}

// TestExportGenesis_Empty tests exporting a chain that never initialized a
// registry
func TestExportGenesis_Empty(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)

	exported := k.ExportGenesis(ctx)
	require.Equal(t, types.DefaultParams(), exported.Params)
	require.Nil(t, exported.Registry)
	require.Empty(t, exported.NodeAccounts)
	require.Empty(t, exported.Feeds)
	require.Empty(t, exported.Subscriptions)
	require.NoError(t, exported.Validate())
}

// TestInitGenesis_RejectsBadParams tests the params guard on import
func TestInitGenesis_RejectsBadParams(t *testing.T) {
	k, _, ctx := keepertest.OracleKeeper(t)

	genesis := *types.DefaultGenesis()
	genesis.Params.BasePricePerSecondScaled = 0

	require.Panics(t, func() {
		k.InitGenesis(ctx, genesis)
	})
}
