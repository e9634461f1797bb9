package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Registry(ctx context.Context, in *QueryRegistryRequest, opts ...grpc.CallOption) (*QueryRegistryResponse, error)
	NodeAccount(ctx context.Context, in *QueryNodeAccountRequest, opts ...grpc.CallOption) (*QueryNodeAccountResponse, error)
	NodeAccounts(ctx context.Context, in *QueryNodeAccountsRequest, opts ...grpc.CallOption) (*QueryNodeAccountsResponse, error)
	Feed(ctx context.Context, in *QueryFeedRequest, opts ...grpc.CallOption) (*QueryFeedResponse, error)
	Feeds(ctx context.Context, in *QueryFeedsRequest, opts ...grpc.CallOption) (*QueryFeedsResponse, error)
	AnswerHistory(ctx context.Context, in *QueryAnswerHistoryRequest, opts ...grpc.CallOption) (*QueryAnswerHistoryResponse, error)
	FeedPrice(ctx context.Context, in *QueryFeedPriceRequest, opts ...grpc.CallOption) (*QueryFeedPriceResponse, error)
	DataSource(ctx context.Context, in *QueryDataSourceRequest, opts ...grpc.CallOption) (*QueryDataSourceResponse, error)
	DataSources(ctx context.Context, in *QueryDataSourcesRequest, opts ...grpc.CallOption) (*QueryDataSourcesResponse, error)
	EthLink(ctx context.Context, in *QueryEthLinkRequest, opts ...grpc.CallOption) (*QueryEthLinkResponse, error)
	Subscription(ctx context.Context, in *QuerySubscriptionRequest, opts ...grpc.CallOption) (*QuerySubscriptionResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Registry(ctx context.Context, in *QueryRegistryRequest, opts ...grpc.CallOption) (*QueryRegistryResponse, error) {
	out := new(QueryRegistryResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/Registry", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) NodeAccount(ctx context.Context, in *QueryNodeAccountRequest, opts ...grpc.CallOption) (*QueryNodeAccountResponse, error) {
	out := new(QueryNodeAccountResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/NodeAccount", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) NodeAccounts(ctx context.Context, in *QueryNodeAccountsRequest, opts ...grpc.CallOption) (*QueryNodeAccountsResponse, error) {
	out := new(QueryNodeAccountsResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/NodeAccounts", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Feed(ctx context.Context, in *QueryFeedRequest, opts ...grpc.CallOption) (*QueryFeedResponse, error) {
	out := new(QueryFeedResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/Feed", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Feeds(ctx context.Context, in *QueryFeedsRequest, opts ...grpc.CallOption) (*QueryFeedsResponse, error) {
	out := new(QueryFeedsResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/Feeds", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) AnswerHistory(ctx context.Context, in *QueryAnswerHistoryRequest, opts ...grpc.CallOption) (*QueryAnswerHistoryResponse, error) {
	out := new(QueryAnswerHistoryResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/AnswerHistory", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) FeedPrice(ctx context.Context, in *QueryFeedPriceRequest, opts ...grpc.CallOption) (*QueryFeedPriceResponse, error) {
	out := new(QueryFeedPriceResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/FeedPrice", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) DataSource(ctx context.Context, in *QueryDataSourceRequest, opts ...grpc.CallOption) (*QueryDataSourceResponse, error) {
	out := new(QueryDataSourceResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/DataSource", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) DataSources(ctx context.Context, in *QueryDataSourcesRequest, opts ...grpc.CallOption) (*QueryDataSourcesResponse, error) {
	out := new(QueryDataSourcesResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/DataSources", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) EthLink(ctx context.Context, in *QueryEthLinkRequest, opts ...grpc.CallOption) (*QueryEthLinkResponse, error) {
	out := new(QueryEthLinkResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/EthLink", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Subscription(ctx context.Context, in *QuerySubscriptionRequest, opts ...grpc.CallOption) (*QuerySubscriptionResponse, error) {
	out := new(QuerySubscriptionResponse)
	err := c.cc.Invoke(ctx, "/veris.oracle.v1.Query/Subscription", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
