package types

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgInitializeRegistry = "initialize_registry"
	TypeMsgAddNode            = "add_node"
	TypeMsgRemoveNode         = "remove_node"
	TypeMsgCreateDataSource   = "create_data_source"
	TypeMsgCreatePermit       = "create_permit"
	TypeMsgRevokePermit       = "revoke_permit"
	TypeMsgCreateFeed         = "create_feed"
	TypeMsgPublishAnswer      = "publish_answer"
	TypeMsgExtendSubscription = "extend_subscription"
	TypeMsgUpdateFeedConfig   = "update_feed_config"
	TypeMsgTopUpFeed          = "top_up_feed"
	TypeMsgFundSubscription   = "fund_subscription"
	TypeMsgUpdateParams       = "update_params"
)

var (
	_ sdk.Msg = &MsgInitializeRegistry{}
	_ sdk.Msg = &MsgAddNode{}
	_ sdk.Msg = &MsgRemoveNode{}
	_ sdk.Msg = &MsgCreateDataSource{}
	_ sdk.Msg = &MsgCreatePermit{}
	_ sdk.Msg = &MsgRevokePermit{}
	_ sdk.Msg = &MsgCreateFeed{}
	_ sdk.Msg = &MsgPublishAnswer{}
	_ sdk.Msg = &MsgExtendSubscription{}
	_ sdk.Msg = &MsgUpdateFeedConfig{}
	_ sdk.Msg = &MsgTopUpFeed{}
	_ sdk.Msg = &MsgFundSubscription{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgInitializeRegistry creates the singleton node registry
type MsgInitializeRegistry struct {
	Authority string `json:"authority"`
}

// NewMsgInitializeRegistry creates a new MsgInitializeRegistry instance
func NewMsgInitializeRegistry(authority string) *MsgInitializeRegistry {
	return &MsgInitializeRegistry{
		Authority: authority,
	}
}

// Route implements sdk.Msg
func (msg *MsgInitializeRegistry) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgInitializeRegistry) Type() string {
	return TypeMsgInitializeRegistry
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgInitializeRegistry) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgInitializeRegistry) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgInitializeRegistry) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}

	return nil
}

// MsgAddNode adds a signer identity to the node registry
type MsgAddNode struct {
	Authority string `json:"authority"`
	Identity  []byte `json:"identity"`
}

// NewMsgAddNode creates a new MsgAddNode instance
func NewMsgAddNode(authority string, identity []byte) *MsgAddNode {
	return &MsgAddNode{
		Authority: authority,
		Identity:  identity,
	}
}

// Route implements sdk.Msg
func (msg *MsgAddNode) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgAddNode) Type() string {
	return TypeMsgAddNode
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgAddNode) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgAddNode) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgAddNode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}

	if err := validateNodeIdentity(msg.Identity); err != nil {
		return err
	}

	return nil
}

// MsgRemoveNode removes a signer identity from the node registry
type MsgRemoveNode struct {
	Authority string `json:"authority"`
	Identity  []byte `json:"identity"`
}

// NewMsgRemoveNode creates a new MsgRemoveNode instance
func NewMsgRemoveNode(authority string, identity []byte) *MsgRemoveNode {
	return &MsgRemoveNode{
		Authority: authority,
		Identity:  identity,
	}
}

// Route implements sdk.Msg
func (msg *MsgRemoveNode) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgRemoveNode) Type() string {
	return TypeMsgRemoveNode
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgRemoveNode) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRemoveNode) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRemoveNode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}

	if err := validateNodeIdentity(msg.Identity); err != nil {
		return err
	}

	return nil
}

// MsgUpdateParams updates the module parameters
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Authority: authority,
		Params:    params,
	}
}

// Route implements sdk.Msg
func (msg *MsgUpdateParams) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgUpdateParams) Type() string {
	return TypeMsgUpdateParams
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}

	return msg.Params.Validate()
}

func validateNodeIdentity(identity []byte) error {
	if len(identity) != NodeIdentityLength {
		return ErrZeroIdentity.Wrapf("identity must be %d bytes, got %d", NodeIdentityLength, len(identity))
	}

	if bytes.Equal(identity, make([]byte, NodeIdentityLength)) {
		return ErrZeroIdentity.Wrap("identity cannot be all zeroes")
	}

	return nil
}
