package types

import (
	"context"
)

// QueryServer defines the gRPC query service for the faucet module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	LastRequest(context.Context, *QueryLastRequestRequest) (*QueryLastRequestResponse, error)
}

// QueryParamsRequest is the request type for the Query/Params RPC method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryLastRequestRequest is the request type for the Query/LastRequest RPC method
type QueryLastRequestRequest struct {
	Address string `json:"address"`
}

// QueryLastRequestResponse is the response type for the Query/LastRequest
// RPC method. NextRequestTime is the earliest unix time the account may
// request again.
type QueryLastRequestResponse struct {
	LastRequest     LastRequest `json:"last_request"`
	NextRequestTime int64       `json:"next_request_time"`
}
