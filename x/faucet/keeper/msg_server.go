package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/faucet/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RequestTokens mints the configured faucet amount to the signer
func (ms msgServer) RequestTokens(goCtx context.Context, msg *types.MsgRequestTokens) (*types.MsgRequestTokensResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	coin, err := ms.Keeper.RequestTokens(ctx, msg.Requester)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokensRequested,
			sdk.NewAttribute(types.AttributeKeyRequester, msg.Requester),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", coin.Amount.Uint64())),
			sdk.NewAttribute(types.AttributeKeyDenom, coin.Denom),
		),
	)

	return &types.MsgRequestTokensResponse{
		Amount: coin.Amount.Uint64(),
		Denom:  coin.Denom,
	}, nil
}

// UpdateParams updates the module parameters; only the module authority may
// do so
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if msg.Authority != ms.authority {
		return nil, types.ErrUnauthorized.Wrapf("signer %s, module authority %s", msg.Authority, ms.authority)
	}

	if err := ms.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
		),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}
