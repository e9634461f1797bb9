package keeper

import (
	"bytes"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/veris-chain/veris/x/oracle/types"
)

// Cross-chain ownership proofs. Data source and permit messages carry
// secp256k1 signatures produced by Ethereum wallets over typed-data digests;
// the byte layout here is shared with the foreign-chain signer and must not
// change.

// domainSeparator is the fixed 32-byte typed-data domain shared with the
// foreign-chain signer:
// 91af22df910089dce34bc41d0790bb4a1beee77dda588667c082bb964143739f
var domainSeparator = []byte{
	0x91, 0xaf, 0x22, 0xdf, 0x91, 0x00, 0x89, 0xdc,
	0xe3, 0x4b, 0xc4, 0x1d, 0x07, 0x90, 0xbb, 0x4a,
	0x1b, 0xee, 0xe7, 0x7d, 0xda, 0x58, 0x86, 0x67,
	0xc0, 0x82, 0xbb, 0x96, 0x41, 0x43, 0x73, 0x9f,
}

var (
	dataSourceTypeHash   = crypto.Keccak256([]byte("DataSource(uint8 type,string source,address owner,string name)"))
	permitTypeHash       = crypto.Keccak256([]byte("Permit(address owner,string grantee)"))
	revokePermitTypeHash = crypto.Keccak256([]byte("RevokePermit(address owner,string grantee)"))
)

// leftPad32 ABI-encodes a value shorter than one word by left-padding it with
// zeroes to 32 bytes.
func leftPad32(b []byte) []byte {
	var word [32]byte
	copy(word[32-len(b):], b)
	return word[:]
}

func typedDataDigest(structHash []byte) []byte {
	return crypto.Keccak256([]byte{0x19, 0x01}, domainSeparator, structHash)
}

// DataSourceDigest builds the typed-data digest an owner signs to authorize a
// data source registration.
func DataSourceDigest(kind types.DataSourceKind, source string, ownerEth []byte, name string) []byte {
	structHash := crypto.Keccak256(
		dataSourceTypeHash,
		leftPad32([]byte{byte(kind)}),
		crypto.Keccak256([]byte(source)),
		leftPad32(ownerEth),
		crypto.Keccak256([]byte(name)),
	)
	return typedDataDigest(structHash)
}

// PermitDigest builds the typed-data digest an owner signs to grant a chain
// account access to their private data sources.
func PermitDigest(ownerEth []byte, grantee string) []byte {
	structHash := crypto.Keccak256(
		permitTypeHash,
		leftPad32(ownerEth),
		crypto.Keccak256([]byte(grantee)),
	)
	return typedDataDigest(structHash)
}

// RevokePermitDigest builds the typed-data digest an owner signs to revoke a
// previously granted permit.
func RevokePermitDigest(ownerEth []byte, grantee string) []byte {
	structHash := crypto.Keccak256(
		revokePermitTypeHash,
		leftPad32(ownerEth),
		crypto.Keccak256([]byte(grantee)),
	)
	return typedDataDigest(structHash)
}

// ComputeDataSourceID derives the content-addressed identifier of a data
// source from the fields the owner's signature commits to.
func ComputeDataSourceID(kind types.DataSourceKind, source string, ownerEth []byte, name string) []byte {
	return crypto.Keccak256(
		[]byte{byte(kind)},
		[]byte(source),
		ownerEth,
		[]byte(name),
	)
}

// RecoverEthAddress recovers the 20-byte Ethereum address that produced a
// 65-byte (r, s, v) signature over digest. Both v in {0, 1} and the legacy
// {27, 28} form are accepted.
func RecoverEthAddress(digest, signature []byte) ([]byte, error) {
	if len(signature) != types.EthSignatureLength {
		return nil, types.ErrInvalidSignature.Wrapf("signature must be %d bytes, got %d", types.EthSignatureLength, len(signature))
	}

	sig := make([]byte, types.EthSignatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return nil, types.ErrInvalidSignature.Wrapf("invalid recovery id %d", signature[64])
	}

	pubkey, err := crypto.Ecrecover(digest, sig)
	if err != nil {
		return nil, types.ErrInvalidSignature.Wrap(err.Error())
	}

	// Skip the uncompressed-point prefix byte before hashing.
	return crypto.Keccak256(pubkey[1:])[12:], nil
}

// VerifyDataSourceSignature checks that ownerEth signed the data source
// registration digest.
func VerifyDataSourceSignature(kind types.DataSourceKind, source string, ownerEth []byte, name string, signature []byte) error {
	recovered, err := RecoverEthAddress(DataSourceDigest(kind, source, ownerEth, name), signature)
	if err != nil {
		return err
	}
	if !bytes.Equal(recovered, ownerEth) {
		return types.ErrRecoveredAddressMismatch.Wrapf("recovered %x, owner %x", recovered, ownerEth)
	}
	return nil
}

// VerifyPermitSignature checks that ownerEth signed the permit digest for
// grantee.
func VerifyPermitSignature(ownerEth []byte, grantee string, signature []byte) error {
	recovered, err := RecoverEthAddress(PermitDigest(ownerEth, grantee), signature)
	if err != nil {
		return err
	}
	if !bytes.Equal(recovered, ownerEth) {
		return types.ErrPermitRecoveredAddressMismatch.Wrapf("recovered %x, owner %x", recovered, ownerEth)
	}
	return nil
}

// VerifyRevokePermitSignature checks that ownerEth signed the revoke digest
// for grantee.
func VerifyRevokePermitSignature(ownerEth []byte, grantee string, signature []byte) error {
	recovered, err := RecoverEthAddress(RevokePermitDigest(ownerEth, grantee), signature)
	if err != nil {
		return err
	}
	if !bytes.Equal(recovered, ownerEth) {
		return types.ErrPermitRecoveredAddressMismatch.Wrapf("recovered %x, owner %x", recovered, ownerEth)
	}
	return nil
}
