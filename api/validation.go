package api

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	oracletypes "github.com/veris-chain/veris/x/oracle/types"
)

// Validation constants
const (
	// Content-addressed ids are keccak-256 digests.
	dataSourceIDLength = 32

	MaxAddressLength = 100
	MaxHexLength     = 128
)

// Regular expressions for validation
var (
	// Bech32 address format (veris1...)
	bech32Regex = regexp.MustCompile(`^[a-z]{3,10}1[a-z0-9]{38,100}$`)

	// Hex string (0x prefix optional)
	hexRegex = regexp.MustCompile(`^(0x)?[0-9a-fA-F]+$`)
)

// parseHexBytes decodes a hex path parameter and enforces its decoded
// byte length. A 0x prefix is accepted.
func parseHexBytes(param string, wantLen int) ([]byte, error) {
	param = strings.TrimSpace(param)

	if param == "" {
		return nil, fmt.Errorf("value is required")
	}

	if len(param) > MaxHexLength {
		return nil, fmt.Errorf("value too long")
	}

	if !hexRegex.MatchString(param) {
		return nil, fmt.Errorf("invalid hex format")
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(param, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex format")
	}

	if len(raw) != wantLen {
		return nil, fmt.Errorf("expected %d bytes, got %d", wantLen, len(raw))
	}

	return raw, nil
}

// ValidateAuthority validates a bech32 account address path parameter
func ValidateAuthority(address string) error {
	if address == "" {
		return fmt.Errorf("address is required")
	}

	address = strings.TrimSpace(address)

	if len(address) > MaxAddressLength {
		return fmt.Errorf("address too long")
	}

	// Accept any bech32-shaped address so the gateway works against nodes
	// running with other prefixes.
	if _, err := sdk.AccAddressFromBech32(address); err != nil {
		if !bech32Regex.MatchString(address) {
			return fmt.Errorf("invalid address format")
		}
	}

	return nil
}

// ValidateFeedName validates a feed name path parameter. The rules mirror
// what the chain accepts, so a name rejected here could never match a
// stored feed.
func ValidateFeedName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}

	if len(name) > oracletypes.MaxFeedNameLength {
		return fmt.Errorf("name must not exceed %d characters", oracletypes.MaxFeedNameLength)
	}

	return nil
}
