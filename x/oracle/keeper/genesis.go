package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/oracle/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	if genState.Registry != nil {
		k.SetNodeRegistry(ctx, *genState.Registry)
	}
	for _, account := range genState.NodeAccounts {
		k.SetNodeAccount(ctx, account)
	}
	for _, source := range genState.DataSources {
		k.SetDataSource(ctx, source)
	}
	for _, link := range genState.EthLinks {
		k.SetEthLink(ctx, link)
	}
	for _, feed := range genState.Feeds {
		k.SetFeed(ctx, feed)
	}
	for _, sub := range genState.Subscriptions {
		k.SetSubscription(ctx, sub)
	}
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := types.DefaultGenesis()
	genState.Params = k.GetParams(ctx)

	if registry, err := k.GetNodeRegistry(ctx); err == nil {
		genState.Registry = &registry
	}
	k.IterateNodeAccounts(ctx, func(account types.NodeAccount) bool {
		genState.NodeAccounts = append(genState.NodeAccounts, account)
		return false
	})
	k.IterateDataSources(ctx, func(source types.DataSource) bool {
		genState.DataSources = append(genState.DataSources, source)
		return false
	})
	k.IterateEthLinks(ctx, func(link types.EthLink) bool {
		genState.EthLinks = append(genState.EthLinks, link)
		return false
	})
	k.IterateFeeds(ctx, func(feed types.Feed) bool {
		genState.Feeds = append(genState.Feeds, feed)
		return false
	})
	k.IterateSubscriptions(ctx, func(sub types.Subscription) bool {
		genState.Subscriptions = append(genState.Subscriptions, sub)
		return false
	})

	return genState
}
