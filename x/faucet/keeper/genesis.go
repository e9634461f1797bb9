package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/faucet/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	for _, record := range genState.LastRequests {
		k.SetLastRequest(ctx, record)
	}
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := types.DefaultGenesis()
	genState.Params = k.GetParams(ctx)

	k.IterateLastRequests(ctx, func(record types.LastRequest) bool {
		genState.LastRequests = append(genState.LastRequests, record)
		return false
	})

	return genState
}
