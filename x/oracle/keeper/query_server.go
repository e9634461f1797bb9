package keeper

import (
	"context"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/veris-chain/veris/x/oracle/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// sanitizePagination enforces sensible defaults and caps for paginated queries.
func sanitizePagination(p *query.PageRequest) *query.PageRequest {
	if p == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}

	if p.Limit == 0 {
		p.Limit = defaultPaginationLimit
	}

	if p.Limit > maxPaginationLimit {
		p.Limit = maxPaginationLimit
	}

	return p
}

// Params queries the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryParamsResponse{Params: qs.GetParams(ctx)}, nil
}

// Registry queries the node registry
func (qs queryServer) Registry(goCtx context.Context, req *types.QueryRegistryRequest) (*types.QueryRegistryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	registry, err := qs.GetNodeRegistry(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryRegistryResponse{Registry: registry}, nil
}

// NodeAccount queries bookkeeping for one node identity
func (qs queryServer) NodeAccount(goCtx context.Context, req *types.QueryNodeAccountRequest) (*types.QueryNodeAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if len(req.Identity) != types.NodeIdentityLength {
		return nil, status.Error(codes.InvalidArgument, "identity must be 32 bytes")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	account, err := qs.GetNodeAccount(ctx, req.Identity)
	if err != nil {
		return nil, err
	}

	return &types.QueryNodeAccountResponse{NodeAccount: account}, nil
}

// NodeAccounts queries all node bookkeeping records
func (qs queryServer) NodeAccounts(goCtx context.Context, req *types.QueryNodeAccountsRequest) (*types.QueryNodeAccountsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	accountStore := prefix.NewStore(ctx.KVStore(qs.storeKey), types.NodeAccountKeyPrefix)

	var accounts []types.NodeAccount
	pageRes, err := query.Paginate(accountStore, sanitizePagination(req.Pagination), func(key []byte, value []byte) error {
		var account types.NodeAccount
		qs.mustUnmarshal(value, &account)
		accounts = append(accounts, account)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryNodeAccountsResponse{
		NodeAccounts: accounts,
		Pagination:   pageRes,
	}, nil
}

// Feed queries one feed by authority and name
func (qs queryServer) Feed(goCtx context.Context, req *types.QueryFeedRequest) (*types.QueryFeedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.Authority == "" || req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "authority and name cannot be empty")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	feed, err := qs.GetFeed(ctx, req.Authority, req.Name)
	if err != nil {
		return nil, err
	}

	return &types.QueryFeedResponse{Feed: feed}, nil
}

// Feeds queries all feeds
func (qs queryServer) Feeds(goCtx context.Context, req *types.QueryFeedsRequest) (*types.QueryFeedsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	feedStore := prefix.NewStore(ctx.KVStore(qs.storeKey), types.FeedKeyPrefix)

	var feeds []types.Feed
	pageRes, err := query.Paginate(feedStore, sanitizePagination(req.Pagination), func(key []byte, value []byte) error {
		var feed types.Feed
		qs.mustUnmarshal(value, &feed)
		feeds = append(feeds, feed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryFeedsResponse{
		Feeds:      feeds,
		Pagination: pageRes,
	}, nil
}

// AnswerHistory queries a feed's retained answers, oldest first
func (qs queryServer) AnswerHistory(goCtx context.Context, req *types.QueryAnswerHistoryRequest) (*types.QueryAnswerHistoryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.Authority == "" || req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "authority and name cannot be empty")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	feed, err := qs.GetFeed(ctx, req.Authority, req.Name)
	if err != nil {
		return nil, err
	}

	return &types.QueryAnswerHistoryResponse{Answers: feed.AnswerHistoryChronological()}, nil
}

// FeedPrice quotes the per-second price for a feed configuration without
// creating anything
func (qs queryServer) FeedPrice(goCtx context.Context, req *types.QueryFeedPriceRequest) (*types.QueryFeedPriceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.MinSignatures == 0 {
		return nil, status.Error(codes.InvalidArgument, "min signatures must be positive")
	}
	if req.FrequencySeconds == 0 {
		return nil, status.Error(codes.InvalidArgument, "frequency must be positive")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	price, err := qs.CalculatePricePerSecond(qs.GetParams(ctx), req.MinSignatures, req.FrequencySeconds)
	if err != nil {
		return nil, err
	}

	return &types.QueryFeedPriceResponse{PricePerSecondScaled: price}, nil
}

// DataSource queries one data source by content id
func (qs queryServer) DataSource(goCtx context.Context, req *types.QueryDataSourceRequest) (*types.QueryDataSourceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if len(req.Id) == 0 {
		return nil, status.Error(codes.InvalidArgument, "id cannot be empty")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	source, err := qs.GetDataSource(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	return &types.QueryDataSourceResponse{DataSource: source}, nil
}

// DataSources queries all data sources
func (qs queryServer) DataSources(goCtx context.Context, req *types.QueryDataSourcesRequest) (*types.QueryDataSourcesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sourceStore := prefix.NewStore(ctx.KVStore(qs.storeKey), types.DataSourceKeyPrefix)

	var sources []types.DataSource
	pageRes, err := query.Paginate(sourceStore, sanitizePagination(req.Pagination), func(key []byte, value []byte) error {
		var source types.DataSource
		qs.mustUnmarshal(value, &source)
		sources = append(sources, source)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryDataSourcesResponse{
		DataSources: sources,
		Pagination:  pageRes,
	}, nil
}

// EthLink queries one permit by owner and grantee
func (qs queryServer) EthLink(goCtx context.Context, req *types.QueryEthLinkRequest) (*types.QueryEthLinkResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if len(req.OwnerEth) != types.EthAddressLength {
		return nil, status.Error(codes.InvalidArgument, "owner address must be 20 bytes")
	}
	if req.Grantee == "" {
		return nil, status.Error(codes.InvalidArgument, "grantee cannot be empty")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	link, err := qs.GetEthLink(ctx, req.OwnerEth, req.Grantee)
	if err != nil {
		return nil, err
	}

	return &types.QueryEthLinkResponse{EthLink: link}, nil
}

// Subscription queries a consumer's prepaid subscription on a feed
func (qs queryServer) Subscription(goCtx context.Context, req *types.QuerySubscriptionRequest) (*types.QuerySubscriptionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.Consumer == "" || req.FeedAuthority == "" || req.FeedName == "" {
		return nil, status.Error(codes.InvalidArgument, "consumer, feed authority and feed name cannot be empty")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sub, err := qs.GetSubscription(ctx, req.Consumer, req.FeedAuthority, req.FeedName)
	if err != nil {
		return nil, err
	}

	return &types.QuerySubscriptionResponse{Subscription: sub}, nil
}
