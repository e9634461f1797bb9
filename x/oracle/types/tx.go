package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	InitializeRegistry(context.Context, *MsgInitializeRegistry) (*MsgInitializeRegistryResponse, error)
	AddNode(context.Context, *MsgAddNode) (*MsgAddNodeResponse, error)
	RemoveNode(context.Context, *MsgRemoveNode) (*MsgRemoveNodeResponse, error)
	CreateDataSource(context.Context, *MsgCreateDataSource) (*MsgCreateDataSourceResponse, error)
	CreatePermit(context.Context, *MsgCreatePermit) (*MsgCreatePermitResponse, error)
	RevokePermit(context.Context, *MsgRevokePermit) (*MsgRevokePermitResponse, error)
	CreateFeed(context.Context, *MsgCreateFeed) (*MsgCreateFeedResponse, error)
	PublishAnswer(context.Context, *MsgPublishAnswer) (*MsgPublishAnswerResponse, error)
	ExtendSubscription(context.Context, *MsgExtendSubscription) (*MsgExtendSubscriptionResponse, error)
	UpdateFeedConfig(context.Context, *MsgUpdateFeedConfig) (*MsgUpdateFeedConfigResponse, error)
	TopUpFeed(context.Context, *MsgTopUpFeed) (*MsgTopUpFeedResponse, error)
	FundSubscription(context.Context, *MsgFundSubscription) (*MsgFundSubscriptionResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Response types

// MsgInitializeRegistryResponse defines the response for InitializeRegistry
type MsgInitializeRegistryResponse struct{}

// MsgAddNodeResponse defines the response for AddNode
type MsgAddNodeResponse struct {
	NodeCount uint64 `json:"node_count"`
}

// MsgRemoveNodeResponse defines the response for RemoveNode
type MsgRemoveNodeResponse struct {
	NodeCount uint64 `json:"node_count"`
}

// MsgCreateDataSourceResponse defines the response for CreateDataSource
type MsgCreateDataSourceResponse struct {
	Id []byte `json:"id"`
}

// MsgCreatePermitResponse defines the response for CreatePermit
type MsgCreatePermitResponse struct{}

// MsgRevokePermitResponse defines the response for RevokePermit
type MsgRevokePermitResponse struct{}

// MsgCreateFeedResponse defines the response for CreateFeed
type MsgCreateFeedResponse struct {
	DataSourceId         []byte `json:"data_source_id"`
	PricePerSecondScaled uint64 `json:"price_per_second_scaled"`
	TotalCharged         uint64 `json:"total_charged"`
	SubscriptionDueTime  int64  `json:"subscription_due_time"`
}

// MsgPublishAnswerResponse defines the response for PublishAnswer
type MsgPublishAnswerResponse struct {
	SignerCount uint32 `json:"signer_count"`
	FeeCharged  uint64 `json:"fee_charged"`
}

// MsgExtendSubscriptionResponse defines the response for ExtendSubscription
type MsgExtendSubscriptionResponse struct {
	SubscriptionDueTime int64  `json:"subscription_due_time"`
	TotalCharged        uint64 `json:"total_charged"`
}

// MsgUpdateFeedConfigResponse defines the response for UpdateFeedConfig
type MsgUpdateFeedConfigResponse struct {
	PricePerSecondScaled uint64 `json:"price_per_second_scaled"`
	SubscriptionDueTime  int64  `json:"subscription_due_time"`
}

// MsgTopUpFeedResponse defines the response for TopUpFeed
type MsgTopUpFeedResponse struct {
	Balance uint64 `json:"balance"`
}

// MsgFundSubscriptionResponse defines the response for FundSubscription
type MsgFundSubscriptionResponse struct {
	Balance uint64 `json:"balance"`
}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
