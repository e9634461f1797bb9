package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the gRPC query service for the oracle module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Registry(context.Context, *QueryRegistryRequest) (*QueryRegistryResponse, error)
	NodeAccount(context.Context, *QueryNodeAccountRequest) (*QueryNodeAccountResponse, error)
	NodeAccounts(context.Context, *QueryNodeAccountsRequest) (*QueryNodeAccountsResponse, error)
	Feed(context.Context, *QueryFeedRequest) (*QueryFeedResponse, error)
	Feeds(context.Context, *QueryFeedsRequest) (*QueryFeedsResponse, error)
	AnswerHistory(context.Context, *QueryAnswerHistoryRequest) (*QueryAnswerHistoryResponse, error)
	FeedPrice(context.Context, *QueryFeedPriceRequest) (*QueryFeedPriceResponse, error)
	DataSource(context.Context, *QueryDataSourceRequest) (*QueryDataSourceResponse, error)
	DataSources(context.Context, *QueryDataSourcesRequest) (*QueryDataSourcesResponse, error)
	EthLink(context.Context, *QueryEthLinkRequest) (*QueryEthLinkResponse, error)
	Subscription(context.Context, *QuerySubscriptionRequest) (*QuerySubscriptionResponse, error)
}

// QueryParamsRequest is the request type for the Query/Params RPC method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryRegistryRequest is the request type for the Query/Registry RPC method
type QueryRegistryRequest struct{}

// QueryRegistryResponse is the response type for the Query/Registry RPC method
type QueryRegistryResponse struct {
	Registry NodeRegistry `json:"registry"`
}

// QueryNodeAccountRequest is the request type for the Query/NodeAccount RPC method
type QueryNodeAccountRequest struct {
	Identity []byte `json:"identity"`
}

// QueryNodeAccountResponse is the response type for the Query/NodeAccount RPC method
type QueryNodeAccountResponse struct {
	NodeAccount NodeAccount `json:"node_account"`
}

// QueryNodeAccountsRequest is the request type for the Query/NodeAccounts RPC method
type QueryNodeAccountsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryNodeAccountsResponse is the response type for the Query/NodeAccounts RPC method
type QueryNodeAccountsResponse struct {
	NodeAccounts []NodeAccount       `json:"node_accounts"`
	Pagination   *query.PageResponse `json:"pagination,omitempty"`
}

// QueryFeedRequest is the request type for the Query/Feed RPC method
type QueryFeedRequest struct {
	Authority string `json:"authority"`
	Name      string `json:"name"`
}

// QueryFeedResponse is the response type for the Query/Feed RPC method
type QueryFeedResponse struct {
	Feed Feed `json:"feed"`
}

// QueryFeedsRequest is the request type for the Query/Feeds RPC method
type QueryFeedsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryFeedsResponse is the response type for the Query/Feeds RPC method
type QueryFeedsResponse struct {
	Feeds      []Feed              `json:"feeds"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryAnswerHistoryRequest is the request type for the Query/AnswerHistory RPC method
type QueryAnswerHistoryRequest struct {
	Authority string `json:"authority"`
	Name      string `json:"name"`
}

// QueryAnswerHistoryResponse is the response type for the Query/AnswerHistory
// RPC method. Answers are returned oldest first.
type QueryAnswerHistoryResponse struct {
	Answers []Answer `json:"answers"`
}

// QueryFeedPriceRequest is the request type for the Query/FeedPrice RPC
// method. It quotes the per-second price for a hypothetical feed
// configuration without creating anything.
type QueryFeedPriceRequest struct {
	MinSignatures    uint32 `json:"min_signatures"`
	FrequencySeconds uint64 `json:"frequency_seconds"`
}

// QueryFeedPriceResponse is the response type for the Query/FeedPrice RPC method
type QueryFeedPriceResponse struct {
	PricePerSecondScaled uint64 `json:"price_per_second_scaled"`
}

// QueryDataSourceRequest is the request type for the Query/DataSource RPC method
type QueryDataSourceRequest struct {
	Id []byte `json:"id"`
}

// QueryDataSourceResponse is the response type for the Query/DataSource RPC method
type QueryDataSourceResponse struct {
	DataSource DataSource `json:"data_source"`
}

// QueryDataSourcesRequest is the request type for the Query/DataSources RPC method
type QueryDataSourcesRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryDataSourcesResponse is the response type for the Query/DataSources RPC method
type QueryDataSourcesResponse struct {
	DataSources []DataSource        `json:"data_sources"`
	Pagination  *query.PageResponse `json:"pagination,omitempty"`
}

// QueryEthLinkRequest is the request type for the Query/EthLink RPC method
type QueryEthLinkRequest struct {
	OwnerEth []byte `json:"owner_eth"`
	Grantee  string `json:"grantee"`
}

// QueryEthLinkResponse is the response type for the Query/EthLink RPC method
type QueryEthLinkResponse struct {
	EthLink EthLink `json:"eth_link"`
}

// QuerySubscriptionRequest is the request type for the Query/Subscription RPC method
type QuerySubscriptionRequest struct {
	Consumer      string `json:"consumer"`
	FeedAuthority string `json:"feed_authority"`
	FeedName      string `json:"feed_name"`
}

// QuerySubscriptionResponse is the response type for the Query/Subscription RPC method
type QuerySubscriptionResponse struct {
	Subscription Subscription `json:"subscription"`
}
