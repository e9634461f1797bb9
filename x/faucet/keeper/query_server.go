package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/veris-chain/veris/x/faucet/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params queries the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryParamsResponse{Params: qs.GetParams(ctx)}, nil
}

// LastRequest queries an account's cooldown record and the earliest time it
// may request again. Accounts that never requested get a zero record.
func (qs queryServer) LastRequest(goCtx context.Context, req *types.QueryLastRequestRequest) (*types.QueryLastRequestResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if _, err := sdk.AccAddressFromBech32(req.Address); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid address")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	params := qs.GetParams(ctx)

	record, found := qs.GetLastRequest(ctx, req.Address)
	if !found {
		return &types.QueryLastRequestResponse{}, nil
	}

	return &types.QueryLastRequestResponse{
		LastRequest:     record,
		NextRequestTime: record.Timestamp + int64(params.CooldownSeconds),
	}, nil
}
