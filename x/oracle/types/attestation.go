package types

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// AttestationScheme selects the wire encoding of an attestation.
type AttestationScheme uint8

const (
	// AttestationSchemeEd25519 carries a native 32-byte signer identity.
	AttestationSchemeEd25519 AttestationScheme = 0

	// AttestationSchemeSecp256k1 carries a recovered secp256k1 public key;
	// the signer identity is derived from its keccak hash.
	AttestationSchemeSecp256k1 AttestationScheme = 1
)

// Validate returns an error for unknown schemes.
func (s AttestationScheme) Validate() error {
	switch s {
	case AttestationSchemeEd25519, AttestationSchemeSecp256k1:
		return nil
	default:
		return fmt.Errorf("unknown attestation scheme %d", s)
	}
}

// Attestation is one candidate signature over a report, in the wire
// encoding produced by the signature co-processor. The raw signature
// bytes were verified before this module ever sees them; parsing here
// only extracts the signer identity and the signed message.
//
// Both schemes share a 16-byte little-endian header:
//
//	0:  u8  signature count (must be 1)
//	1:  u8  padding
//	2:  u16 signature offset
//	4:  u16 signature instruction index
//	6:  u16 public key offset
//	8:  u16 public key instruction index
//	10: u16 message offset
//	12: u16 message size
//	14: u16 message instruction index
type Attestation struct {
	Scheme AttestationScheme `json:"scheme"`
	Data   []byte            `json:"data"`
}

// ParsedAttestation is the signer identity and signed message extracted
// from one candidate. The identity is always 32 bytes; secp256k1 signers
// are the trailing 20 bytes of the keccak hash of the recovered public
// key, left-padded to 32.
type ParsedAttestation struct {
	Identity []byte
	Message  []byte
}

const attestationHeaderSize = 16

// Parse extracts the signer identity and signed message. It fails with
// ErrMalformedAttestation for truncated headers, out-of-bounds offsets,
// or an unexpected signature count; callers aggregating candidates skip
// such attestations rather than aborting.
func (a Attestation) Parse() (ParsedAttestation, error) {
	switch a.Scheme {
	case AttestationSchemeEd25519:
		return parseEd25519Attestation(a.Data)
	case AttestationSchemeSecp256k1:
		return parseSecp256k1Attestation(a.Data)
	default:
		return ParsedAttestation{}, ErrMalformedAttestation.Wrapf("unknown scheme %d", a.Scheme)
	}
}

func parseEd25519Attestation(data []byte) (ParsedAttestation, error) {
	if len(data) < attestationHeaderSize {
		return ParsedAttestation{}, ErrMalformedAttestation.Wrap("truncated header")
	}
	if data[0] != 1 {
		return ParsedAttestation{}, ErrMalformedAttestation.Wrapf("signature count %d", data[0])
	}

	pubkeyOffset := int(binary.LittleEndian.Uint16(data[6:8]))
	messageOffset := int(binary.LittleEndian.Uint16(data[10:12]))
	messageSize := int(binary.LittleEndian.Uint16(data[12:14]))

	if pubkeyOffset+NodeIdentityLength > len(data) || messageOffset+messageSize > len(data) {
		return ParsedAttestation{}, ErrMalformedAttestation.Wrap("offset out of bounds")
	}

	return ParsedAttestation{
		Identity: data[pubkeyOffset : pubkeyOffset+NodeIdentityLength],
		Message:  data[messageOffset : messageOffset+messageSize],
	}, nil
}

func parseSecp256k1Attestation(data []byte) (ParsedAttestation, error) {
	if len(data) < attestationHeaderSize {
		return ParsedAttestation{}, ErrMalformedAttestation.Wrap("truncated header")
	}
	if data[0] != 1 {
		return ParsedAttestation{}, ErrMalformedAttestation.Wrapf("signature count %d", data[0])
	}

	signatureOffset := int(binary.LittleEndian.Uint16(data[2:4]))
	pubkeyOffset := int(binary.LittleEndian.Uint16(data[6:8]))
	messageOffset := int(binary.LittleEndian.Uint16(data[10:12]))
	messageSize := int(binary.LittleEndian.Uint16(data[12:14]))

	// The signed message is always a 32-byte digest in this scheme.
	if messageSize != 32 {
		return ParsedAttestation{}, ErrMalformedAttestation.Wrapf("message size %d", messageSize)
	}
	// 64 bytes r,s plus 1 byte recovery id.
	if signatureOffset+65 > len(data) || pubkeyOffset+64 > len(data) || messageOffset+messageSize > len(data) {
		return ParsedAttestation{}, ErrMalformedAttestation.Wrap("offset out of bounds")
	}

	pubkey := data[pubkeyOffset : pubkeyOffset+64]

	return ParsedAttestation{
		Identity: EthAddressToIdentity(crypto.Keccak256(pubkey)[12:]),
		Message:  data[messageOffset : messageOffset+messageSize],
	}, nil
}

// EthAddressToIdentity left-pads a 20-byte foreign-chain address to the
// 32-byte identity width used by the node registry.
func EthAddressToIdentity(addr []byte) []byte {
	identity := make([]byte, NodeIdentityLength)
	copy(identity[NodeIdentityLength-len(addr):], addr)
	return identity
}
