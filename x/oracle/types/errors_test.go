package types

import (
	"testing"

	sdkerrors "cosmossdk.io/errors"
)

func TestModuleErrorsAreRegistered(t *testing.T) {
	errs := []*sdkerrors.Error{
		ErrUnauthorized,
		ErrNotFeedOwner,
		ErrNotSupported,
		ErrRegistryExists,
		ErrRegistryNotFound,
		ErrZeroIdentity,
		ErrMaxNodesReached,
		ErrNodeAlreadyAdded,
		ErrNodeNotFound,
		ErrNotEnoughSignatures,
		ErrMalformedAttestation,
		ErrInvalidFeedConfig,
		ErrFeedExists,
		ErrFeedNotFound,
		ErrPastTimestamp,
		ErrFutureTimestamp,
		ErrZeroValue,
		ErrSubscriptionExpired,
		ErrMinimumSubscriptionTime,
		ErrMinimumExtensionTime,
		ErrSubscriptionNotFound,
		ErrInsufficientBalance,
		ErrInsufficientPriorityFeeBudget,
		ErrArithmeticOverflow,
		ErrInvalidAmount,
		ErrInvalidDataSource,
		ErrDataSourceExists,
		ErrDataSourceNotFound,
		ErrEthLinkExists,
		ErrEthLinkNotFound,
		ErrInvalidEthereumAddress,
		ErrInvalidSignature,
		ErrRecoveredAddressMismatch,
		ErrPermitRecoveredAddressMismatch,
	}

	seen := make(map[uint32]string, len(errs))
	for _, err := range errs {
		if err == nil {
			t.Fatal("nil registered error")
		}
		if err.Codespace() != ModuleName {
			t.Errorf("error %q registered under %q, want %q", err.Error(), err.Codespace(), ModuleName)
		}
		if err.Error() == "" {
			t.Error("registered error with empty message")
		}
		if prev, ok := seen[err.ABCICode()]; ok {
			t.Errorf("error code %d reused by %q and %q", err.ABCICode(), prev, err.Error())
		}
		seen[err.ABCICode()] = err.Error()
	}
}

func TestErrorWrappingPreservesIdentity(t *testing.T) {
	wrapped := ErrFeedNotFound.Wrapf("feed %s/%s", "cosmos1auth", "gold")

	if !ErrFeedNotFound.Is(wrapped) {
		t.Error("wrapped error lost its identity")
	}
}
