package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the necessary x/faucet interfaces and
// concrete types on the provided LegacyAmino codec. These types are used
// for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRequestTokens{}, "veris/faucet/MsgRequestTokens", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "veris/faucet/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/faucet interface types with the
// interface registry
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRequestTokens{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgRequestTokensResponse{},
		&MsgUpdateParamsResponse{},
	)
}

// ModuleCdc references the global x/faucet module codec. It is used for
// Amino JSON sign bytes and KVStore persistence of module state.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}
