package types

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreateFeed registers a feed and pays for its first subscription
// period. The data source is resolved by content id and created lazily
// when absent; either way the owner signature over the source fields is
// verified.
type MsgCreateFeed struct {
	Authority         string         `json:"authority"`
	Name              string         `json:"name"`
	FeedType          FeedType       `json:"feed_type"`
	JobID             []byte         `json:"job_id"`
	DataSourceKind    DataSourceKind `json:"data_source_kind"`
	DataSourceName    string         `json:"data_source_name"`
	Source            string         `json:"source"`
	OwnerEth          []byte         `json:"owner_eth"`
	OwnerSignature    []byte         `json:"owner_signature"`
	MinSignatures     uint32         `json:"min_signatures"`
	FrequencySeconds  uint64         `json:"frequency_seconds"`
	IPFSCid           string         `json:"ipfs_cid"`
	DurationSeconds   uint64         `json:"duration_seconds"`
	PriorityFeeBudget uint64         `json:"priority_fee_budget"`
}

// NewMsgCreateFeed creates a new MsgCreateFeed instance
func NewMsgCreateFeed(authority, name string, feedType FeedType, jobID []byte) *MsgCreateFeed {
	return &MsgCreateFeed{
		Authority: authority,
		Name:      name,
		FeedType:  feedType,
		JobID:     jobID,
	}
}

// Route implements sdk.Msg
func (msg *MsgCreateFeed) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgCreateFeed) Type() string {
	return TypeMsgCreateFeed
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgCreateFeed) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgCreateFeed) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgCreateFeed) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}

	if err := validateFeedName(msg.Name); err != nil {
		return err
	}

	if err := msg.FeedType.Validate(); err != nil {
		return ErrInvalidFeedConfig.Wrap(err.Error())
	}

	if len(msg.JobID) != JobIDLength {
		return ErrInvalidFeedConfig.Wrapf("job id must be %d bytes, got %d", JobIDLength, len(msg.JobID))
	}

	if err := msg.DataSourceKind.Validate(); err != nil {
		return ErrInvalidDataSource.Wrap(err.Error())
	}

	if err := validateDataSourceFields(msg.DataSourceName, msg.Source); err != nil {
		return err
	}

	if len(msg.OwnerEth) != EthAddressLength {
		return ErrInvalidEthereumAddress.Wrapf("owner address must be %d bytes, got %d", EthAddressLength, len(msg.OwnerEth))
	}

	if len(msg.OwnerSignature) != EthSignatureLength {
		return ErrInvalidSignature.Wrapf("owner signature must be %d bytes, got %d", EthSignatureLength, len(msg.OwnerSignature))
	}

	if err := validateFeedConfig(msg.MinSignatures, msg.FrequencySeconds, msg.IPFSCid); err != nil {
		return err
	}

	if msg.DurationSeconds < MinSubscriptionSeconds {
		return ErrMinimumSubscriptionTime.Wrapf("duration %d below minimum %d", msg.DurationSeconds, MinSubscriptionSeconds)
	}

	return nil
}

// MsgPublishAnswer submits an aggregated report to a feed.
type MsgPublishAnswer struct {
	Submitter     string        `json:"submitter"`
	FeedAuthority string        `json:"feed_authority"`
	FeedName      string        `json:"feed_name"`
	Value         []byte        `json:"value"`
	Timestamp     int64         `json:"timestamp"`
	Attestations  []Attestation `json:"attestations"`
	FeeBid        uint64        `json:"fee_bid"`
}

// NewMsgPublishAnswer creates a new MsgPublishAnswer instance
func NewMsgPublishAnswer(submitter, feedAuthority, feedName string, value []byte, timestamp int64, attestations []Attestation, feeBid uint64) *MsgPublishAnswer {
	return &MsgPublishAnswer{
		Submitter:     submitter,
		FeedAuthority: feedAuthority,
		FeedName:      feedName,
		Value:         value,
		Timestamp:     timestamp,
		Attestations:  attestations,
		FeeBid:        feeBid,
	}
}

// Route implements sdk.Msg
func (msg *MsgPublishAnswer) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgPublishAnswer) Type() string {
	return TypeMsgPublishAnswer
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgPublishAnswer) GetSigners() []sdk.AccAddress {
	submitter, _ := sdk.AccAddressFromBech32(msg.Submitter)
	return []sdk.AccAddress{submitter}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgPublishAnswer) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgPublishAnswer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Submitter); err != nil {
		return ErrUnauthorized.Wrapf("invalid submitter address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.FeedAuthority); err != nil {
		return ErrFeedNotFound.Wrapf("invalid feed authority address: %s", err)
	}

	if err := validateFeedName(msg.FeedName); err != nil {
		return err
	}

	if len(msg.Value) != AnswerValueLength {
		return ErrZeroValue.Wrapf("value must be %d bytes, got %d", AnswerValueLength, len(msg.Value))
	}

	if bytes.Equal(msg.Value, make([]byte, AnswerValueLength)) {
		return ErrZeroValue.Wrap("value cannot be all zeroes")
	}

	if msg.Timestamp <= 0 {
		return ErrPastTimestamp.Wrap("timestamp must be positive")
	}

	if len(msg.Attestations) == 0 {
		return ErrNotEnoughSignatures.Wrap("at least one attestation required")
	}

	for i, att := range msg.Attestations {
		if err := att.Scheme.Validate(); err != nil {
			return ErrMalformedAttestation.Wrapf("attestation %d: %s", i, err)
		}
	}

	return nil
}

// MsgExtendSubscription prolongs a feed's subscription and optionally
// tops up its priority fee allowance.
type MsgExtendSubscription struct {
	Authority                string `json:"authority"`
	FeedName                 string `json:"feed_name"`
	AdditionalSeconds        uint64 `json:"additional_seconds"`
	AdditionalPriorityBudget uint64 `json:"additional_priority_budget"`
}

// NewMsgExtendSubscription creates a new MsgExtendSubscription instance
func NewMsgExtendSubscription(authority, feedName string, additionalSeconds, additionalPriorityBudget uint64) *MsgExtendSubscription {
	return &MsgExtendSubscription{
		Authority:                authority,
		FeedName:                 feedName,
		AdditionalSeconds:        additionalSeconds,
		AdditionalPriorityBudget: additionalPriorityBudget,
	}
}

// Route implements sdk.Msg
func (msg *MsgExtendSubscription) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgExtendSubscription) Type() string {
	return TypeMsgExtendSubscription
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgExtendSubscription) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgExtendSubscription) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgExtendSubscription) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}

	if err := validateFeedName(msg.FeedName); err != nil {
		return err
	}

	if msg.AdditionalSeconds < MinExtensionSeconds {
		return ErrMinimumExtensionTime.Wrapf("extension %d below minimum %d", msg.AdditionalSeconds, MinExtensionSeconds)
	}

	return nil
}

// MsgUpdateFeedConfig replaces the mutable configuration of a personal
// feed. The remaining subscription time is rescaled to the new price.
type MsgUpdateFeedConfig struct {
	Authority        string `json:"authority"`
	FeedName         string `json:"feed_name"`
	MinSignatures    uint32 `json:"min_signatures"`
	FrequencySeconds uint64 `json:"frequency_seconds"`
	IPFSCid          string `json:"ipfs_cid"`
}

// NewMsgUpdateFeedConfig creates a new MsgUpdateFeedConfig instance
func NewMsgUpdateFeedConfig(authority, feedName string, minSignatures uint32, frequencySeconds uint64, ipfsCid string) *MsgUpdateFeedConfig {
	return &MsgUpdateFeedConfig{
		Authority:        authority,
		FeedName:         feedName,
		MinSignatures:    minSignatures,
		FrequencySeconds: frequencySeconds,
		IPFSCid:          ipfsCid,
	}
}

// Route implements sdk.Msg
func (msg *MsgUpdateFeedConfig) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgUpdateFeedConfig) Type() string {
	return TypeMsgUpdateFeedConfig
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgUpdateFeedConfig) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateFeedConfig) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateFeedConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}

	if err := validateFeedName(msg.FeedName); err != nil {
		return err
	}

	return validateFeedConfig(msg.MinSignatures, msg.FrequencySeconds, msg.IPFSCid)
}

// MsgTopUpFeed adds funds to a feed's balance without changing its
// subscription window.
type MsgTopUpFeed struct {
	Authority string `json:"authority"`
	FeedName  string `json:"feed_name"`
	Amount    uint64 `json:"amount"`
}

// NewMsgTopUpFeed creates a new MsgTopUpFeed instance
func NewMsgTopUpFeed(authority, feedName string, amount uint64) *MsgTopUpFeed {
	return &MsgTopUpFeed{
		Authority: authority,
		FeedName:  feedName,
		Amount:    amount,
	}
}

// Route implements sdk.Msg
func (msg *MsgTopUpFeed) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgTopUpFeed) Type() string {
	return TypeMsgTopUpFeed
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgTopUpFeed) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgTopUpFeed) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgTopUpFeed) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrUnauthorized.Wrapf("invalid authority address: %s", err)
	}

	if err := validateFeedName(msg.FeedName); err != nil {
		return err
	}

	if msg.Amount == 0 {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}

	return nil
}

// MsgFundSubscription creates or tops up a consumer's prepaid balance on
// a feed, charged under the flat-fee policy.
type MsgFundSubscription struct {
	Consumer      string `json:"consumer"`
	FeedAuthority string `json:"feed_authority"`
	FeedName      string `json:"feed_name"`
	Amount        uint64 `json:"amount"`
}

// NewMsgFundSubscription creates a new MsgFundSubscription instance
func NewMsgFundSubscription(consumer, feedAuthority, feedName string, amount uint64) *MsgFundSubscription {
	return &MsgFundSubscription{
		Consumer:      consumer,
		FeedAuthority: feedAuthority,
		FeedName:      feedName,
		Amount:        amount,
	}
}

// Route implements sdk.Msg
func (msg *MsgFundSubscription) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg *MsgFundSubscription) Type() string {
	return TypeMsgFundSubscription
}

// GetSigners implements sdk.Msg
// Assumes address is valid (validated in ValidateBasic)
func (msg *MsgFundSubscription) GetSigners() []sdk.AccAddress {
	consumer, _ := sdk.AccAddressFromBech32(msg.Consumer)
	return []sdk.AccAddress{consumer}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgFundSubscription) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg
func (msg *MsgFundSubscription) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Consumer); err != nil {
		return ErrUnauthorized.Wrapf("invalid consumer address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.FeedAuthority); err != nil {
		return ErrFeedNotFound.Wrapf("invalid feed authority address: %s", err)
	}

	if err := validateFeedName(msg.FeedName); err != nil {
		return err
	}

	if msg.Amount == 0 {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}

	return nil
}

func validateFeedName(name string) error {
	if name == "" {
		return ErrInvalidFeedConfig.Wrap("feed name cannot be empty")
	}

	if len(name) > MaxFeedNameLength {
		return ErrInvalidFeedConfig.Wrapf("feed name exceeds %d bytes", MaxFeedNameLength)
	}

	return nil
}

func validateFeedConfig(minSignatures uint32, frequencySeconds uint64, ipfsCid string) error {
	if minSignatures == 0 {
		return ErrInvalidFeedConfig.Wrap("min signatures must be positive")
	}

	if frequencySeconds == 0 {
		return ErrInvalidFeedConfig.Wrap("frequency must be positive")
	}

	if ipfsCid == "" {
		return ErrInvalidFeedConfig.Wrap("ipfs cid cannot be empty")
	}

	if len(ipfsCid) > MaxJobPointerLength {
		return ErrInvalidFeedConfig.Wrapf("ipfs cid exceeds %d bytes", MaxJobPointerLength)
	}

	return nil
}
