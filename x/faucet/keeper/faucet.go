package keeper

import (
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/faucet/types"
)

// GetLastRequest returns the cooldown record for an account, if any.
func (k Keeper) GetLastRequest(ctx sdk.Context, address string) (types.LastRequest, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetLastRequestKey(address))
	if bz == nil {
		return types.LastRequest{}, false
	}

	var record types.LastRequest
	k.mustUnmarshal(bz, &record)
	return record, true
}

// SetLastRequest stores an account's cooldown record
func (k Keeper) SetLastRequest(ctx sdk.Context, record types.LastRequest) {
	store := k.getStore(ctx)
	store.Set(types.GetLastRequestKey(record.Address), k.mustMarshal(&record))
}

// IterateLastRequests walks all cooldown records, stopping when cb returns true.
func (k Keeper) IterateLastRequests(ctx sdk.Context, cb func(types.LastRequest) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.LastRequestKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.LastRequest
		k.mustUnmarshal(iterator.Value(), &record)
		if cb(record) {
			break
		}
	}
}

// RequestTokens mints the configured amount to the requester and stamps the
// cooldown record. Requests fail while the faucet is disabled or while the
// requester's cooldown has not elapsed.
func (k Keeper) RequestTokens(ctx sdk.Context, requester string) (sdk.Coin, error) {
	params := k.GetParams(ctx)
	if !params.Active {
		return sdk.Coin{}, types.ErrFaucetInactive
	}

	addr, err := sdk.AccAddressFromBech32(requester)
	if err != nil {
		return sdk.Coin{}, err
	}

	now := ctx.BlockTime().Unix()
	if record, found := k.GetLastRequest(ctx, requester); found {
		elapsed := now - record.Timestamp
		if elapsed < int64(params.CooldownSeconds) {
			return sdk.Coin{}, types.ErrCooldownActive.Wrapf(
				"retry in %d seconds", int64(params.CooldownSeconds)-elapsed)
		}
	}

	coin := sdk.NewCoin(params.Denom, sdkmath.NewIntFromUint64(params.AmountPerRequest))
	coins := sdk.NewCoins(coin)
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return sdk.Coin{}, types.ErrMintFailed.Wrap(err.Error())
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins); err != nil {
		return sdk.Coin{}, err
	}

	k.SetLastRequest(ctx, types.LastRequest{
		Address:   requester,
		Timestamp: now,
	})

	k.Logger(ctx).Info("faucet request served",
		"requester", requester,
		"amount", coin.String(),
	)

	return coin, nil
}
