package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/faucet/types"
)

// GetParams retrieves the faucet module parameters. Defaults apply until the
// first SetParams call writes an explicit value.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	k.mustUnmarshal(bz, &params)
	return params
}

// SetParams validates and stores the faucet module parameters
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	store.Set(types.ParamsKey, k.mustMarshal(&params))
	return nil
}
