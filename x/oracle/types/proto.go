package types

import "fmt"

// Message, response, query and genesis types in this package are written
// by hand rather than generated from .proto definitions. The methods
// below satisfy the proto.Message contract the SDK msg and codec plumbing
// expects, with XXX_MessageName supplying the registry type name.

func (m *MsgInitializeRegistry) Reset()                { *m = MsgInitializeRegistry{} }
func (m *MsgInitializeRegistry) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgInitializeRegistry) ProtoMessage()           {}
func (*MsgInitializeRegistry) XXX_MessageName() string { return "veris.oracle.v1.MsgInitializeRegistry" }

func (m *MsgAddNode) Reset()                { *m = MsgAddNode{} }
func (m *MsgAddNode) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgAddNode) ProtoMessage()           {}
func (*MsgAddNode) XXX_MessageName() string { return "veris.oracle.v1.MsgAddNode" }

func (m *MsgRemoveNode) Reset()                { *m = MsgRemoveNode{} }
func (m *MsgRemoveNode) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgRemoveNode) ProtoMessage()           {}
func (*MsgRemoveNode) XXX_MessageName() string { return "veris.oracle.v1.MsgRemoveNode" }

func (m *MsgCreateDataSource) Reset()                { *m = MsgCreateDataSource{} }
func (m *MsgCreateDataSource) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgCreateDataSource) ProtoMessage()           {}
func (*MsgCreateDataSource) XXX_MessageName() string { return "veris.oracle.v1.MsgCreateDataSource" }

func (m *MsgCreatePermit) Reset()                { *m = MsgCreatePermit{} }
func (m *MsgCreatePermit) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgCreatePermit) ProtoMessage()           {}
func (*MsgCreatePermit) XXX_MessageName() string { return "veris.oracle.v1.MsgCreatePermit" }

func (m *MsgRevokePermit) Reset()                { *m = MsgRevokePermit{} }
func (m *MsgRevokePermit) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgRevokePermit) ProtoMessage()           {}
func (*MsgRevokePermit) XXX_MessageName() string { return "veris.oracle.v1.MsgRevokePermit" }

func (m *MsgCreateFeed) Reset()                { *m = MsgCreateFeed{} }
func (m *MsgCreateFeed) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgCreateFeed) ProtoMessage()           {}
func (*MsgCreateFeed) XXX_MessageName() string { return "veris.oracle.v1.MsgCreateFeed" }

func (m *MsgPublishAnswer) Reset()                { *m = MsgPublishAnswer{} }
func (m *MsgPublishAnswer) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgPublishAnswer) ProtoMessage()           {}
func (*MsgPublishAnswer) XXX_MessageName() string { return "veris.oracle.v1.MsgPublishAnswer" }

func (m *MsgExtendSubscription) Reset()                { *m = MsgExtendSubscription{} }
func (m *MsgExtendSubscription) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgExtendSubscription) ProtoMessage()           {}
func (*MsgExtendSubscription) XXX_MessageName() string { return "veris.oracle.v1.MsgExtendSubscription" }

func (m *MsgUpdateFeedConfig) Reset()                { *m = MsgUpdateFeedConfig{} }
func (m *MsgUpdateFeedConfig) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgUpdateFeedConfig) ProtoMessage()           {}
func (*MsgUpdateFeedConfig) XXX_MessageName() string { return "veris.oracle.v1.MsgUpdateFeedConfig" }

func (m *MsgTopUpFeed) Reset()                { *m = MsgTopUpFeed{} }
func (m *MsgTopUpFeed) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgTopUpFeed) ProtoMessage()           {}
func (*MsgTopUpFeed) XXX_MessageName() string { return "veris.oracle.v1.MsgTopUpFeed" }

func (m *MsgFundSubscription) Reset()                { *m = MsgFundSubscription{} }
func (m *MsgFundSubscription) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgFundSubscription) ProtoMessage()           {}
func (*MsgFundSubscription) XXX_MessageName() string { return "veris.oracle.v1.MsgFundSubscription" }

func (m *MsgUpdateParams) Reset()                { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgUpdateParams) ProtoMessage()           {}
func (*MsgUpdateParams) XXX_MessageName() string { return "veris.oracle.v1.MsgUpdateParams" }

func (m *MsgInitializeRegistryResponse) Reset()         { *m = MsgInitializeRegistryResponse{} }
func (m *MsgInitializeRegistryResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgInitializeRegistryResponse) ProtoMessage()    {}
func (*MsgInitializeRegistryResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgInitializeRegistryResponse"
}

func (m *MsgAddNodeResponse) Reset()         { *m = MsgAddNodeResponse{} }
func (m *MsgAddNodeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgAddNodeResponse) ProtoMessage()    {}
func (*MsgAddNodeResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgAddNodeResponse"
}

func (m *MsgRemoveNodeResponse) Reset()         { *m = MsgRemoveNodeResponse{} }
func (m *MsgRemoveNodeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRemoveNodeResponse) ProtoMessage()    {}
func (*MsgRemoveNodeResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgRemoveNodeResponse"
}

func (m *MsgCreateDataSourceResponse) Reset()         { *m = MsgCreateDataSourceResponse{} }
func (m *MsgCreateDataSourceResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCreateDataSourceResponse) ProtoMessage()    {}
func (*MsgCreateDataSourceResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgCreateDataSourceResponse"
}

func (m *MsgCreatePermitResponse) Reset()         { *m = MsgCreatePermitResponse{} }
func (m *MsgCreatePermitResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCreatePermitResponse) ProtoMessage()    {}
func (*MsgCreatePermitResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgCreatePermitResponse"
}

func (m *MsgRevokePermitResponse) Reset()         { *m = MsgRevokePermitResponse{} }
func (m *MsgRevokePermitResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRevokePermitResponse) ProtoMessage()    {}
func (*MsgRevokePermitResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgRevokePermitResponse"
}

func (m *MsgCreateFeedResponse) Reset()         { *m = MsgCreateFeedResponse{} }
func (m *MsgCreateFeedResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCreateFeedResponse) ProtoMessage()    {}
func (*MsgCreateFeedResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgCreateFeedResponse"
}

func (m *MsgPublishAnswerResponse) Reset()         { *m = MsgPublishAnswerResponse{} }
func (m *MsgPublishAnswerResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgPublishAnswerResponse) ProtoMessage()    {}
func (*MsgPublishAnswerResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgPublishAnswerResponse"
}

func (m *MsgExtendSubscriptionResponse) Reset()         { *m = MsgExtendSubscriptionResponse{} }
func (m *MsgExtendSubscriptionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgExtendSubscriptionResponse) ProtoMessage()    {}
func (*MsgExtendSubscriptionResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgExtendSubscriptionResponse"
}

func (m *MsgUpdateFeedConfigResponse) Reset()         { *m = MsgUpdateFeedConfigResponse{} }
func (m *MsgUpdateFeedConfigResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgUpdateFeedConfigResponse) ProtoMessage()    {}
func (*MsgUpdateFeedConfigResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgUpdateFeedConfigResponse"
}

func (m *MsgTopUpFeedResponse) Reset()         { *m = MsgTopUpFeedResponse{} }
func (m *MsgTopUpFeedResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgTopUpFeedResponse) ProtoMessage()    {}
func (*MsgTopUpFeedResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgTopUpFeedResponse"
}

func (m *MsgFundSubscriptionResponse) Reset()         { *m = MsgFundSubscriptionResponse{} }
func (m *MsgFundSubscriptionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgFundSubscriptionResponse) ProtoMessage()    {}
func (*MsgFundSubscriptionResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgFundSubscriptionResponse"
}

func (m *MsgUpdateParamsResponse) Reset()         { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgUpdateParamsResponse) ProtoMessage()    {}
func (*MsgUpdateParamsResponse) XXX_MessageName() string {
	return "veris.oracle.v1.MsgUpdateParamsResponse"
}

func (m *QueryParamsRequest) Reset()                { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryParamsRequest) ProtoMessage()           {}
func (*QueryParamsRequest) XXX_MessageName() string { return "veris.oracle.v1.QueryParamsRequest" }

func (m *QueryParamsResponse) Reset()                { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryParamsResponse) ProtoMessage()           {}
func (*QueryParamsResponse) XXX_MessageName() string { return "veris.oracle.v1.QueryParamsResponse" }

func (m *QueryRegistryRequest) Reset()                { *m = QueryRegistryRequest{} }
func (m *QueryRegistryRequest) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryRegistryRequest) ProtoMessage()           {}
func (*QueryRegistryRequest) XXX_MessageName() string { return "veris.oracle.v1.QueryRegistryRequest" }

func (m *QueryRegistryResponse) Reset()         { *m = QueryRegistryResponse{} }
func (m *QueryRegistryResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryRegistryResponse) ProtoMessage()    {}
func (*QueryRegistryResponse) XXX_MessageName() string {
	return "veris.oracle.v1.QueryRegistryResponse"
}

func (m *QueryNodeAccountRequest) Reset()         { *m = QueryNodeAccountRequest{} }
func (m *QueryNodeAccountRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryNodeAccountRequest) ProtoMessage()    {}
func (*QueryNodeAccountRequest) XXX_MessageName() string {
	return "veris.oracle.v1.QueryNodeAccountRequest"
}

func (m *QueryNodeAccountResponse) Reset()         { *m = QueryNodeAccountResponse{} }
func (m *QueryNodeAccountResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryNodeAccountResponse) ProtoMessage()    {}
func (*QueryNodeAccountResponse) XXX_MessageName() string {
	return "veris.oracle.v1.QueryNodeAccountResponse"
}

func (m *QueryNodeAccountsRequest) Reset()         { *m = QueryNodeAccountsRequest{} }
func (m *QueryNodeAccountsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryNodeAccountsRequest) ProtoMessage()    {}
func (*QueryNodeAccountsRequest) XXX_MessageName() string {
	return "veris.oracle.v1.QueryNodeAccountsRequest"
}

func (m *QueryNodeAccountsResponse) Reset()         { *m = QueryNodeAccountsResponse{} }
func (m *QueryNodeAccountsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryNodeAccountsResponse) ProtoMessage()    {}
func (*QueryNodeAccountsResponse) XXX_MessageName() string {
	return "veris.oracle.v1.QueryNodeAccountsResponse"
}

func (m *QueryFeedRequest) Reset()                { *m = QueryFeedRequest{} }
func (m *QueryFeedRequest) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryFeedRequest) ProtoMessage()           {}
func (*QueryFeedRequest) XXX_MessageName() string { return "veris.oracle.v1.QueryFeedRequest" }

func (m *QueryFeedResponse) Reset()                { *m = QueryFeedResponse{} }
func (m *QueryFeedResponse) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryFeedResponse) ProtoMessage()           {}
func (*QueryFeedResponse) XXX_MessageName() string { return "veris.oracle.v1.QueryFeedResponse" }

func (m *QueryFeedsRequest) Reset()                { *m = QueryFeedsRequest{} }
func (m *QueryFeedsRequest) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryFeedsRequest) ProtoMessage()           {}
func (*QueryFeedsRequest) XXX_MessageName() string { return "veris.oracle.v1.QueryFeedsRequest" }

func (m *QueryFeedsResponse) Reset()                { *m = QueryFeedsResponse{} }
func (m *QueryFeedsResponse) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryFeedsResponse) ProtoMessage()           {}
func (*QueryFeedsResponse) XXX_MessageName() string { return "veris.oracle.v1.QueryFeedsResponse" }

func (m *QueryAnswerHistoryRequest) Reset()         { *m = QueryAnswerHistoryRequest{} }
func (m *QueryAnswerHistoryRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryAnswerHistoryRequest) ProtoMessage()    {}
func (*QueryAnswerHistoryRequest) XXX_MessageName() string {
	return "veris.oracle.v1.QueryAnswerHistoryRequest"
}

func (m *QueryAnswerHistoryResponse) Reset()         { *m = QueryAnswerHistoryResponse{} }
func (m *QueryAnswerHistoryResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryAnswerHistoryResponse) ProtoMessage()    {}
func (*QueryAnswerHistoryResponse) XXX_MessageName() string {
	return "veris.oracle.v1.QueryAnswerHistoryResponse"
}

func (m *QueryFeedPriceRequest) Reset()         { *m = QueryFeedPriceRequest{} }
func (m *QueryFeedPriceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryFeedPriceRequest) ProtoMessage()    {}
func (*QueryFeedPriceRequest) XXX_MessageName() string {
	return "veris.oracle.v1.QueryFeedPriceRequest"
}

func (m *QueryFeedPriceResponse) Reset()         { *m = QueryFeedPriceResponse{} }
func (m *QueryFeedPriceResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryFeedPriceResponse) ProtoMessage()    {}
func (*QueryFeedPriceResponse) XXX_MessageName() string {
	return "veris.oracle.v1.QueryFeedPriceResponse"
}

func (m *QueryDataSourceRequest) Reset()         { *m = QueryDataSourceRequest{} }
func (m *QueryDataSourceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDataSourceRequest) ProtoMessage()    {}
func (*QueryDataSourceRequest) XXX_MessageName() string {
	return "veris.oracle.v1.QueryDataSourceRequest"
}

func (m *QueryDataSourceResponse) Reset()         { *m = QueryDataSourceResponse{} }
func (m *QueryDataSourceResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDataSourceResponse) ProtoMessage()    {}
func (*QueryDataSourceResponse) XXX_MessageName() string {
	return "veris.oracle.v1.QueryDataSourceResponse"
}

func (m *QueryDataSourcesRequest) Reset()         { *m = QueryDataSourcesRequest{} }
func (m *QueryDataSourcesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDataSourcesRequest) ProtoMessage()    {}
func (*QueryDataSourcesRequest) XXX_MessageName() string {
	return "veris.oracle.v1.QueryDataSourcesRequest"
}

func (m *QueryDataSourcesResponse) Reset()         { *m = QueryDataSourcesResponse{} }
func (m *QueryDataSourcesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDataSourcesResponse) ProtoMessage()    {}
func (*QueryDataSourcesResponse) XXX_MessageName() string {
	return "veris.oracle.v1.QueryDataSourcesResponse"
}

func (m *QueryEthLinkRequest) Reset()                { *m = QueryEthLinkRequest{} }
func (m *QueryEthLinkRequest) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryEthLinkRequest) ProtoMessage()           {}
func (*QueryEthLinkRequest) XXX_MessageName() string { return "veris.oracle.v1.QueryEthLinkRequest" }

func (m *QueryEthLinkResponse) Reset()                { *m = QueryEthLinkResponse{} }
func (m *QueryEthLinkResponse) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryEthLinkResponse) ProtoMessage()           {}
func (*QueryEthLinkResponse) XXX_MessageName() string { return "veris.oracle.v1.QueryEthLinkResponse" }

func (m *QuerySubscriptionRequest) Reset()         { *m = QuerySubscriptionRequest{} }
func (m *QuerySubscriptionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QuerySubscriptionRequest) ProtoMessage()    {}
func (*QuerySubscriptionRequest) XXX_MessageName() string {
	return "veris.oracle.v1.QuerySubscriptionRequest"
}

func (m *QuerySubscriptionResponse) Reset()         { *m = QuerySubscriptionResponse{} }
func (m *QuerySubscriptionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QuerySubscriptionResponse) ProtoMessage()    {}
func (*QuerySubscriptionResponse) XXX_MessageName() string {
	return "veris.oracle.v1.QuerySubscriptionResponse"
}

func (m *GenesisState) Reset()                { *m = GenesisState{} }
func (m *GenesisState) String() string        { return fmt.Sprintf("%+v", *m) }
func (*GenesisState) ProtoMessage()           {}
func (*GenesisState) XXX_MessageName() string { return "veris.oracle.v1.GenesisState" }
