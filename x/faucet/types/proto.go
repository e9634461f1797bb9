package types

import "fmt"

// Message, response, query and genesis types in this package are written
// by hand rather than generated from .proto definitions. The methods
// below satisfy the proto.Message contract the SDK msg and codec plumbing
// expects, with XXX_MessageName supplying the registry type name.

func (m *MsgRequestTokens) Reset()                { *m = MsgRequestTokens{} }
func (m *MsgRequestTokens) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgRequestTokens) ProtoMessage()           {}
func (*MsgRequestTokens) XXX_MessageName() string { return "veris.faucet.v1.MsgRequestTokens" }

func (m *MsgUpdateParams) Reset()                { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string        { return fmt.Sprintf("%+v", *m) }
func (*MsgUpdateParams) ProtoMessage()           {}
func (*MsgUpdateParams) XXX_MessageName() string { return "veris.faucet.v1.MsgUpdateParams" }

func (m *MsgRequestTokensResponse) Reset()         { *m = MsgRequestTokensResponse{} }
func (m *MsgRequestTokensResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRequestTokensResponse) ProtoMessage()    {}
func (*MsgRequestTokensResponse) XXX_MessageName() string {
	return "veris.faucet.v1.MsgRequestTokensResponse"
}

func (m *MsgUpdateParamsResponse) Reset()         { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgUpdateParamsResponse) ProtoMessage()    {}
func (*MsgUpdateParamsResponse) XXX_MessageName() string {
	return "veris.faucet.v1.MsgUpdateParamsResponse"
}

func (m *QueryParamsRequest) Reset()                { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryParamsRequest) ProtoMessage()           {}
func (*QueryParamsRequest) XXX_MessageName() string { return "veris.faucet.v1.QueryParamsRequest" }

func (m *QueryParamsResponse) Reset()                { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string        { return fmt.Sprintf("%+v", *m) }
func (*QueryParamsResponse) ProtoMessage()           {}
func (*QueryParamsResponse) XXX_MessageName() string { return "veris.faucet.v1.QueryParamsResponse" }

func (m *QueryLastRequestRequest) Reset()         { *m = QueryLastRequestRequest{} }
func (m *QueryLastRequestRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryLastRequestRequest) ProtoMessage()    {}
func (*QueryLastRequestRequest) XXX_MessageName() string {
	return "veris.faucet.v1.QueryLastRequestRequest"
}

func (m *QueryLastRequestResponse) Reset()         { *m = QueryLastRequestResponse{} }
func (m *QueryLastRequestResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryLastRequestResponse) ProtoMessage()    {}
func (*QueryLastRequestResponse) XXX_MessageName() string {
	return "veris.faucet.v1.QueryLastRequestResponse"
}

func (m *GenesisState) Reset()                { *m = GenesisState{} }
func (m *GenesisState) String() string        { return fmt.Sprintf("%+v", *m) }
func (*GenesisState) ProtoMessage()           {}
func (*GenesisState) XXX_MessageName() string { return "veris.faucet.v1.GenesisState" }
