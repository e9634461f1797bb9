package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Oracle module sentinel errors
var (
	// Authorization errors
	ErrUnauthorized = sdkerrors.Register(ModuleName, 2, "signer is not the authority")
	ErrNotFeedOwner = sdkerrors.Register(ModuleName, 3, "signer does not own the feed")
	ErrNotSupported = sdkerrors.Register(ModuleName, 4, "operation not supported for this feed type")

	// Registry errors
	ErrRegistryExists      = sdkerrors.Register(ModuleName, 10, "node registry already initialized")
	ErrRegistryNotFound    = sdkerrors.Register(ModuleName, 11, "node registry not initialized")
	ErrZeroIdentity        = sdkerrors.Register(ModuleName, 12, "node identity is zero")
	ErrMaxNodesReached     = sdkerrors.Register(ModuleName, 13, "node registry is full")
	ErrNodeAlreadyAdded    = sdkerrors.Register(ModuleName, 14, "node already registered")
	ErrNodeNotFound        = sdkerrors.Register(ModuleName, 15, "node not registered")

	// Attestation errors
	ErrNotEnoughSignatures  = sdkerrors.Register(ModuleName, 20, "not enough valid signatures")
	ErrMalformedAttestation = sdkerrors.Register(ModuleName, 21, "malformed attestation")

	// Feed errors
	ErrInvalidFeedConfig       = sdkerrors.Register(ModuleName, 30, "invalid feed configuration")
	ErrFeedExists              = sdkerrors.Register(ModuleName, 31, "feed already exists")
	ErrFeedNotFound            = sdkerrors.Register(ModuleName, 32, "feed not found")
	ErrPastTimestamp           = sdkerrors.Register(ModuleName, 33, "answer timestamp is not newer than the latest")
	ErrFutureTimestamp         = sdkerrors.Register(ModuleName, 34, "answer timestamp is in the future")
	ErrZeroValue               = sdkerrors.Register(ModuleName, 35, "answer value is zero")
	ErrSubscriptionExpired     = sdkerrors.Register(ModuleName, 36, "feed subscription expired")
	ErrMinimumSubscriptionTime = sdkerrors.Register(ModuleName, 37, "subscription below minimum duration")
	ErrMinimumExtensionTime    = sdkerrors.Register(ModuleName, 38, "extension below minimum duration")
	ErrSubscriptionNotFound    = sdkerrors.Register(ModuleName, 39, "subscription not found")

	// Fund errors
	ErrInsufficientBalance           = sdkerrors.Register(ModuleName, 40, "insufficient balance")
	ErrInsufficientPriorityFeeBudget = sdkerrors.Register(ModuleName, 41, "priority fee budget exhausted")
	ErrArithmeticOverflow            = sdkerrors.Register(ModuleName, 42, "arithmetic overflow")
	ErrInvalidAmount                 = sdkerrors.Register(ModuleName, 43, "invalid amount")

	// Data source errors
	ErrInvalidDataSource   = sdkerrors.Register(ModuleName, 50, "invalid data source")
	ErrDataSourceExists    = sdkerrors.Register(ModuleName, 51, "data source already exists")
	ErrDataSourceNotFound  = sdkerrors.Register(ModuleName, 52, "data source not found")
	ErrEthLinkExists       = sdkerrors.Register(ModuleName, 53, "link already exists")
	ErrEthLinkNotFound     = sdkerrors.Register(ModuleName, 54, "link not found")

	// Cryptographic errors
	ErrInvalidEthereumAddress         = sdkerrors.Register(ModuleName, 60, "invalid ethereum address")
	ErrInvalidSignature               = sdkerrors.Register(ModuleName, 61, "invalid signature")
	ErrRecoveredAddressMismatch       = sdkerrors.Register(ModuleName, 62, "recovered address does not match owner")
	ErrPermitRecoveredAddressMismatch = sdkerrors.Register(ModuleName, 63, "recovered address does not match link owner")
)
