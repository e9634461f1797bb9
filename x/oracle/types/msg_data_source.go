package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreateDataSource registers a data source under a foreign-chain owner.
// The owner authorizes creation by signing the typed-data digest of the
// source fields with the key behind OwnerEth.
type MsgCreateDataSource struct {
	Creator   string         `json:"creator"`
	Kind      DataSourceKind `json:"kind"`
	Name      string         `json:"name"`
	Source    string         `json:"source"`
	OwnerEth  []byte         `json:"owner_eth"`
	Signature []byte         `json:"signature"`
}

// NewMsgCreateDataSource creates a new MsgCreateDataSource instance
func NewMsgCreateDataSource(creator string, kind DataSourceKind, name, source string, ownerEth, signature []byte) *MsgCreateDataSource {
	return &MsgCreateDataSource{
		Creator:   creator,
		Kind:      kind,
		Name:      name,
		Source:    source,
		OwnerEth:  ownerEth,
		Signature: signature,
	}
}

// Route implements sdk.Msg
func (msg *MsgCreateDataSource) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgCreateDataSource) Type() string {
	return TypeMsgCreateDataSource
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgCreateDataSource) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgCreateDataSource) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgCreateDataSource) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return ErrUnauthorized.Wrapf("invalid creator address: %s", err)
	}

	if err := msg.Kind.Validate(); err != nil {
		return ErrInvalidDataSource.Wrap(err.Error())
	}

	if err := validateDataSourceFields(msg.Name, msg.Source); err != nil {
		return err
	}

	if len(msg.OwnerEth) != EthAddressLength {
		return ErrInvalidEthereumAddress.Wrapf("owner address must be %d bytes, got %d", EthAddressLength, len(msg.OwnerEth))
	}

	if len(msg.Signature) != EthSignatureLength {
		return ErrInvalidSignature.Wrapf("signature must be %d bytes, got %d", EthSignatureLength, len(msg.Signature))
	}

	return nil
}

// MsgCreatePermit grants a local account access to a foreign owner's
// private data sources. Authorization is the owner's signature over the
// permit digest; any account may pay for and submit the message.
type MsgCreatePermit struct {
	Creator   string `json:"creator"`
	OwnerEth  []byte `json:"owner_eth"`
	Grantee   string `json:"grantee"`
	Signature []byte `json:"signature"`
}

// NewMsgCreatePermit creates a new MsgCreatePermit instance
func NewMsgCreatePermit(creator string, ownerEth []byte, grantee string, signature []byte) *MsgCreatePermit {
	return &MsgCreatePermit{
		Creator:   creator,
		OwnerEth:  ownerEth,
		Grantee:   grantee,
		Signature: signature,
	}
}

// Route implements sdk.Msg
func (msg *MsgCreatePermit) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgCreatePermit) Type() string {
	return TypeMsgCreatePermit
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgCreatePermit) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgCreatePermit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgCreatePermit) ValidateBasic() error {
	return validatePermitFields(msg.Creator, msg.OwnerEth, msg.Grantee, msg.Signature)
}

// MsgRevokePermit revokes a previously granted permit. Authorization is
// the owner's signature over the revoke digest.
type MsgRevokePermit struct {
	Creator   string `json:"creator"`
	OwnerEth  []byte `json:"owner_eth"`
	Grantee   string `json:"grantee"`
	Signature []byte `json:"signature"`
}

// NewMsgRevokePermit creates a new MsgRevokePermit instance
func NewMsgRevokePermit(creator string, ownerEth []byte, grantee string, signature []byte) *MsgRevokePermit {
	return &MsgRevokePermit{
		Creator:   creator,
		OwnerEth:  ownerEth,
		Grantee:   grantee,
		Signature: signature,
	}
}

// Route implements sdk.Msg
func (msg *MsgRevokePermit) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgRevokePermit) Type() string {
	return TypeMsgRevokePermit
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgRevokePermit) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRevokePermit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRevokePermit) ValidateBasic() error {
	return validatePermitFields(msg.Creator, msg.OwnerEth, msg.Grantee, msg.Signature)
}

func validateDataSourceFields(name, source string) error {
	if name == "" {
		return ErrInvalidDataSource.Wrap("name cannot be empty")
	}

	if len(name) > MaxDataSourceNameLength {
		return ErrInvalidDataSource.Wrapf("name exceeds %d bytes", MaxDataSourceNameLength)
	}

	if source == "" {
		return ErrInvalidDataSource.Wrap("source cannot be empty")
	}

	if len(source) > MaxSourceLength {
		return ErrInvalidDataSource.Wrapf("source exceeds %d bytes", MaxSourceLength)
	}

	return nil
}

func validatePermitFields(creator string, ownerEth []byte, grantee string, signature []byte) error {
	if _, err := sdk.AccAddressFromBech32(creator); err != nil {
		return ErrUnauthorized.Wrapf("invalid creator address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(grantee); err != nil {
		return ErrInvalidDataSource.Wrapf("invalid grantee address: %s", err)
	}

	if len(ownerEth) != EthAddressLength {
		return ErrInvalidEthereumAddress.Wrapf("owner address must be %d bytes, got %d", EthAddressLength, len(ownerEth))
	}

	if len(signature) != EthSignatureLength {
		return ErrInvalidSignature.Wrapf("signature must be %d bytes, got %d", EthSignatureLength, len(signature))
	}

	return nil
}
