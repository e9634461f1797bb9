package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgRequestTokens = "request_tokens"
	TypeMsgUpdateParams  = "update_params"
)

var (
	_ sdk.Msg = &MsgRequestTokens{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgRequestTokens asks the faucet to mint the configured amount to the
// requester.
type MsgRequestTokens struct {
	Requester string `json:"requester"`
}

// NewMsgRequestTokens creates a new MsgRequestTokens instance
func NewMsgRequestTokens(requester string) *MsgRequestTokens {
	return &MsgRequestTokens{
		Requester: requester,
	}
}

// Route implements sdk.Msg
func (msg *MsgRequestTokens) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgRequestTokens) Type() string {
	return TypeMsgRequestTokens
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgRequestTokens) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRequestTokens) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRequestTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrUnauthorized.Wrapf("invalid requester address: %s", err)
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
