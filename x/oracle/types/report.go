package types

import (
	"encoding/hex"
	"encoding/json"

	"github.com/ethereum/go-ethereum/crypto"
)

// SignedReport is the payload oracle nodes sign when attesting to an
// answer. Field order is fixed; encoding/json emits struct fields in
// declaration order, so the wire bytes are deterministic.
type SignedReport struct {
	FeedKey   string `json:"feed_key"`
	Value     string `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

// CanonicalReportMessage renders the report payload ed25519 signers
// commit to: compact JSON with the feed key as "<authority>/<name>" and
// the value hex encoded.
func CanonicalReportMessage(feedAuthority, feedName string, value []byte, timestamp int64) []byte {
	report := SignedReport{
		FeedKey:   feedAuthority + "/" + feedName,
		Value:     hex.EncodeToString(value),
		Timestamp: timestamp,
	}

	// Marshaling two strings and an int cannot fail.
	bz, _ := json.Marshal(report)
	return bz
}

// ReportDigest is the keccak-256 hash of the canonical report message.
// secp256k1 signers commit to this 32-byte digest rather than the raw
// payload.
func ReportDigest(feedAuthority, feedName string, value []byte, timestamp int64) []byte {
	return crypto.Keccak256(CanonicalReportMessage(feedAuthority, feedName, value, timestamp))
}
