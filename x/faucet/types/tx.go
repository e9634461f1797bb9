package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	RequestTokens(context.Context, *MsgRequestTokens) (*MsgRequestTokensResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Response types

// MsgRequestTokensResponse defines the response for RequestTokens
type MsgRequestTokensResponse struct {
	Amount uint64 `json:"amount"`
	Denom  string `json:"denom"`
}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
