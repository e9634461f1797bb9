package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Faucet module sentinel errors
var (
	ErrUnauthorized   = sdkerrors.Register(ModuleName, 2, "signer is not the authority")
	ErrFaucetInactive = sdkerrors.Register(ModuleName, 3, "faucet is disabled")
	ErrCooldownActive = sdkerrors.Register(ModuleName, 4, "cooldown has not elapsed")
	ErrMintFailed     = sdkerrors.Register(ModuleName, 5, "failed to mint faucet tokens")
)
