package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the necessary x/oracle interfaces and
// concrete types on the provided LegacyAmino codec. These types are used
// for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializeRegistry{}, "veris/oracle/MsgInitializeRegistry", nil)
	cdc.RegisterConcrete(&MsgAddNode{}, "veris/oracle/MsgAddNode", nil)
	cdc.RegisterConcrete(&MsgRemoveNode{}, "veris/oracle/MsgRemoveNode", nil)
	cdc.RegisterConcrete(&MsgCreateDataSource{}, "veris/oracle/MsgCreateDataSource", nil)
	cdc.RegisterConcrete(&MsgCreatePermit{}, "veris/oracle/MsgCreatePermit", nil)
	cdc.RegisterConcrete(&MsgRevokePermit{}, "veris/oracle/MsgRevokePermit", nil)
	cdc.RegisterConcrete(&MsgCreateFeed{}, "veris/oracle/MsgCreateFeed", nil)
	cdc.RegisterConcrete(&MsgPublishAnswer{}, "veris/oracle/MsgPublishAnswer", nil)
	cdc.RegisterConcrete(&MsgExtendSubscription{}, "veris/oracle/MsgExtendSubscription", nil)
	cdc.RegisterConcrete(&MsgUpdateFeedConfig{}, "veris/oracle/MsgUpdateFeedConfig", nil)
	cdc.RegisterConcrete(&MsgTopUpFeed{}, "veris/oracle/MsgTopUpFeed", nil)
	cdc.RegisterConcrete(&MsgFundSubscription{}, "veris/oracle/MsgFundSubscription", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "veris/oracle/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/oracle interface types with the
// interface registry
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializeRegistry{},
		&MsgAddNode{},
		&MsgRemoveNode{},
		&MsgCreateDataSource{},
		&MsgCreatePermit{},
		&MsgRevokePermit{},
		&MsgCreateFeed{},
		&MsgPublishAnswer{},
		&MsgExtendSubscription{},
		&MsgUpdateFeedConfig{},
		&MsgTopUpFeed{},
		&MsgFundSubscription{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgInitializeRegistryResponse{},
		&MsgAddNodeResponse{},
		&MsgRemoveNodeResponse{},
		&MsgCreateDataSourceResponse{},
		&MsgCreatePermitResponse{},
		&MsgRevokePermitResponse{},
		&MsgCreateFeedResponse{},
		&MsgPublishAnswerResponse{},
		&MsgExtendSubscriptionResponse{},
		&MsgUpdateFeedConfigResponse{},
		&MsgTopUpFeedResponse{},
		&MsgFundSubscriptionResponse{},
		&MsgUpdateParamsResponse{},
	)
}

// ModuleCdc references the global x/oracle module codec. It is used for
// Amino JSON sign bytes and KVStore persistence of module state.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
