package property

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math/rand"
	"testing"
	"testing/quick"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/veris-chain/veris/x/oracle/keeper"
	"github.com/veris-chain/veris/x/oracle/types"
)

// TestAnswerHistoryProperties tests the answer ring buffer state machine
func TestAnswerHistoryProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 100).Draw(t, "count")

		var feed types.Feed
		recorded := make([]types.Answer, 0, count)

		for i := 0; i < count; i++ {
			answer := types.Answer{
				Value:     rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, "value"),
				Timestamp: int64(1_700_000_000 + i),
			}
			feed.RecordAnswer(answer)
			recorded = append(recorded, answer)

			// Property: the ring never exceeds its capacity.
			if len(feed.AnswerHistory) > types.MaxAnswerHistory {
				t.Fatalf("history length %d exceeds capacity %d", len(feed.AnswerHistory), types.MaxAnswerHistory)
			}

			// Property: the latest answer is always the last recorded one.
			if !bytes.Equal(feed.LatestAnswer.Value, answer.Value) {
				t.Fatalf("latest answer not updated at step %d", i)
			}

			// Property: while filling, the cursor tracks the length; the
			// filling write leaves it at capacity, wrapped writes below.
			if len(feed.AnswerHistory) < types.MaxAnswerHistory {
				if feed.HistoryCursor != uint64(len(feed.AnswerHistory)) {
					t.Fatalf("cursor %d does not track partial history length %d", feed.HistoryCursor, len(feed.AnswerHistory))
				}
			} else if i == types.MaxAnswerHistory-1 {
				if feed.HistoryCursor != types.MaxAnswerHistory {
					t.Fatalf("cursor %d after the filling write, want %d", feed.HistoryCursor, types.MaxAnswerHistory)
				}
			} else if feed.HistoryCursor >= types.MaxAnswerHistory {
				t.Fatalf("cursor %d out of ring range after wrapping", feed.HistoryCursor)
			}
		}

		// Property: chronological order returns exactly the most recent
		// answers, oldest first.
		chrono := feed.AnswerHistoryChronological()
		start := 0
		if count > types.MaxAnswerHistory {
			start = count - types.MaxAnswerHistory
		}
		want := recorded[start:]

		if len(chrono) != len(want) {
			t.Fatalf("chronological length %d, want %d", len(chrono), len(want))
		}
		for i := range want {
			if chrono[i].Timestamp != want[i].Timestamp || !bytes.Equal(chrono[i].Value, want[i].Value) {
				t.Fatalf("chronological[%d] = %d, want %d", i, chrono[i].Timestamp, want[i].Timestamp)
			}
		}
	})
}

// TestPricingProperties tests the subscription price curve
func TestPricingProperties(t *testing.T) {
	var k keeper.Keeper
	params := types.DefaultParams()

	rapid.Check(t, func(t *rapid.T) {
		// Bounded so the checked arithmetic never overflows.
		frequency := rapid.Uint64Range(60, types.SecondsPerDay).Draw(t, "frequency")
		sigLo := rapid.Uint32Range(1, 63).Draw(t, "sigLo")
		sigHi := rapid.Uint32Range(sigLo+1, 64).Draw(t, "sigHi")

		priceLo, err := k.CalculatePricePerSecond(params, sigLo, frequency)
		if err != nil {
			t.Fatalf("CalculatePricePerSecond(%d, %d) error: %v", sigLo, frequency, err)
		}
		priceHi, err := k.CalculatePricePerSecond(params, sigHi, frequency)
		if err != nil {
			t.Fatalf("CalculatePricePerSecond(%d, %d) error: %v", sigHi, frequency, err)
		}

		// Property: a stricter signature threshold never gets cheaper.
		if priceHi <= priceLo {
			t.Fatalf("price %d for %d signers not above price %d for %d signers", priceHi, sigHi, priceLo, sigLo)
		}

		// Property: deterministic.
		again, err := k.CalculatePricePerSecond(params, sigLo, frequency)
		if err != nil || again != priceLo {
			t.Fatalf("recomputed price %d (err %v), want %d", again, err, priceLo)
		}

		// Property: a slower feed never costs more per second.
		slower := rapid.Uint64Range(frequency, types.SecondsPerDay).Draw(t, "slower")
		priceSlower, err := k.CalculatePricePerSecond(params, sigLo, slower)
		if err != nil {
			t.Fatalf("CalculatePricePerSecond(%d, %d) error: %v", sigLo, slower, err)
		}
		if priceSlower > priceLo {
			t.Fatalf("price %d at frequency %d above price %d at frequency %d", priceSlower, slower, priceLo, frequency)
		}

		// Property: the priority fee buffer scales the price up.
		buffered := params
		buffered.PriorityFeeBufferPercentage = 150
		priceBuffered, err := k.CalculatePricePerSecond(buffered, sigLo, frequency)
		if err != nil {
			t.Fatalf("buffered price error: %v", err)
		}
		if priceBuffered < priceLo {
			t.Fatalf("buffered price %d below unbuffered %d", priceBuffered, priceLo)
		}
	})
}

// TestSubscriptionCostProperties tests duration charging
func TestSubscriptionCostProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := rapid.Uint64Range(0, 1_000_000_000_000).Draw(t, "price")
		durLo := rapid.Uint64Range(0, 500_000).Draw(t, "durLo")
		durHi := rapid.Uint64Range(durLo, 1_000_000).Draw(t, "durHi")

		costLo, err := keeper.SubscriptionCost(price, durLo)
		if err != nil {
			t.Fatalf("SubscriptionCost(%d, %d) error: %v", price, durLo, err)
		}
		costHi, err := keeper.SubscriptionCost(price, durHi)
		if err != nil {
			t.Fatalf("SubscriptionCost(%d, %d) error: %v", price, durHi, err)
		}

		// Property: longer subscriptions never cost less.
		if costHi < costLo {
			t.Fatalf("cost %d for %ds below cost %d for %ds", costHi, durHi, costLo, durLo)
		}

		// Property: the charge is the floored scaled product.
		product := price * durLo
		if costLo*types.PriceScalar > product {
			t.Fatalf("cost %d overcharges product %d", costLo, product)
		}
		if product-costLo*types.PriceScalar >= types.PriceScalar {
			t.Fatalf("cost %d undercharges product %d by a full unit", costLo, product)
		}

		// Property: zero duration is free.
		zero, err := keeper.SubscriptionCost(price, 0)
		if err != nil || zero != 0 {
			t.Fatalf("zero duration cost %d (err %v)", zero, err)
		}
	})
}

// TestComputeUnitsProperties tests publish work estimation and fee scaling
func TestComputeUnitsProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nodeCount := rapid.IntRange(0, types.MaxNodes).Draw(t, "nodeCount")
		historyLen := rapid.IntRange(0, 2*types.MaxAnswerHistory).Draw(t, "historyLen")

		units := keeper.EstimateComputeUnits(nodeCount, historyLen)

		// Property: the estimate never drops below the flat base.
		if units < types.BaseComputeUnits {
			t.Fatalf("units %d below base %d", units, types.BaseComputeUnits)
		}

		// Property: one more registered node costs exactly its share.
		more := keeper.EstimateComputeUnits(nodeCount+1, historyLen)
		if more-units != types.ComputeUnitsPerNode {
			t.Fatalf("adding a node changed units by %d, want %d", more-units, types.ComputeUnitsPerNode)
		}

		// Property: appending while the ring fills costs more than
		// overwriting once it is full.
		filling := keeper.EstimateComputeUnits(nodeCount, 0)
		full := keeper.EstimateComputeUnits(nodeCount, types.MaxAnswerHistory)
		if filling <= full {
			t.Fatalf("filling units %d not above full units %d", filling, full)
		}

		// Property: the priority fee is the floored scaled bid.
		bid := rapid.Uint64Range(0, 1_000_000_000).Draw(t, "bid")
		fee, err := keeper.ComputePriorityFee(bid, units)
		if err != nil {
			t.Fatalf("ComputePriorityFee(%d, %d) error: %v", bid, units, err)
		}
		if fee*types.FeeBidScale > bid*units {
			t.Fatalf("fee %d overcharges bid %d over %d units", fee, bid, units)
		}
	})
}

// ecdsaKeySeed draws a 32-byte scalar that parses as a secp256k1 key.
var ecdsaKeySeed = rapid.SliceOfN(rapid.Byte(), 32, 32).Filter(func(seed []byte) bool {
	_, err := ethcrypto.ToECDSA(seed)
	return err == nil
})

// TestOwnershipSignatureProperties tests typed-data sign and recover
func TestOwnershipSignatureProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key, err := ethcrypto.ToECDSA(ecdsaKeySeed.Draw(t, "seed"))
		if err != nil {
			t.Fatalf("ToECDSA error: %v", err)
		}
		owner := ethcrypto.PubkeyToAddress(key.PublicKey).Bytes()

		kind := rapid.SampledFrom([]types.DataSourceKind{
			types.DataSourceKindPublic,
			types.DataSourceKindPrivate,
		}).Draw(t, "kind")
		source := rapid.StringMatching(`https://[a-z]{1,16}\.example\.com/[a-z0-9]{0,24}`).Draw(t, "source")
		name := rapid.StringMatching(`[a-z0-9-]{1,32}`).Draw(t, "name")

		digest := keeper.DataSourceDigest(kind, source, owner, name)
		signature, err := ethcrypto.Sign(digest, key)
		if err != nil {
			t.Fatalf("Sign error: %v", err)
		}

		// Property: recovery returns the signing address.
		recovered, err := keeper.RecoverEthAddress(digest, signature)
		if err != nil {
			t.Fatalf("RecoverEthAddress error: %v", err)
		}
		if !bytes.Equal(recovered, owner) {
			t.Fatalf("recovered %x, want %x", recovered, owner)
		}

		// Property: the legacy {27, 28} recovery id form is equivalent.
		legacy := append([]byte(nil), signature...)
		legacy[64] += 27
		recovered, err = keeper.RecoverEthAddress(digest, legacy)
		if err != nil || !bytes.Equal(recovered, owner) {
			t.Fatalf("legacy form recovered %x (err %v), want %x", recovered, err, owner)
		}

		// Property: verification accepts the signed fields and rejects any
		// change to them.
		if err := keeper.VerifyDataSourceSignature(kind, source, owner, name, signature); err != nil {
			t.Fatalf("VerifyDataSourceSignature error: %v", err)
		}
		if err := keeper.VerifyDataSourceSignature(kind, source, owner, name+"x", signature); err == nil {
			t.Fatal("signature accepted for a different name")
		}

		// Property: permit grants and revocations verify independently.
		grantee := rapid.StringMatching(`veris1[a-z0-9]{38}`).Draw(t, "grantee")

		permitSig, err := ethcrypto.Sign(keeper.PermitDigest(owner, grantee), key)
		if err != nil {
			t.Fatalf("Sign permit error: %v", err)
		}
		if err := keeper.VerifyPermitSignature(owner, grantee, permitSig); err != nil {
			t.Fatalf("VerifyPermitSignature error: %v", err)
		}
		if err := keeper.VerifyRevokePermitSignature(owner, grantee, permitSig); err == nil {
			t.Fatal("permit signature accepted as a revocation")
		}
	})
}

// TestDataSourceIDProperties tests content id derivation
func TestDataSourceIDProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		owner := rapid.SliceOfN(rapid.Byte(), types.EthAddressLength, types.EthAddressLength).Draw(t, "owner")
		source := rapid.StringMatching(`https://[a-z]{1,16}\.example\.com`).Draw(t, "source")
		name := rapid.StringMatching(`[a-z0-9-]{1,32}`).Draw(t, "name")

		id := keeper.ComputeDataSourceID(types.DataSourceKindPublic, source, owner, name)

		// Property: the id is a stable 32-byte digest.
		if len(id) != 32 {
			t.Fatalf("id length %d, want 32", len(id))
		}
		if !bytes.Equal(id, keeper.ComputeDataSourceID(types.DataSourceKindPublic, source, owner, name)) {
			t.Fatal("id derivation is not deterministic")
		}

		// Property: every committed field is load-bearing.
		if bytes.Equal(id, keeper.ComputeDataSourceID(types.DataSourceKindPrivate, source, owner, name)) {
			t.Fatal("kind does not affect the id")
		}
		if bytes.Equal(id, keeper.ComputeDataSourceID(types.DataSourceKindPublic, source+"x", owner, name)) {
			t.Fatal("source does not affect the id")
		}
		if bytes.Equal(id, keeper.ComputeDataSourceID(types.DataSourceKindPublic, source, owner, name+"x")) {
			t.Fatal("name does not affect the id")
		}

		otherOwner := append([]byte(nil), owner...)
		otherOwner[0] ^= 0xFF
		if bytes.Equal(id, keeper.ComputeDataSourceID(types.DataSourceKindPublic, source, otherOwner, name)) {
			t.Fatal("owner does not affect the id")
		}
	})
}

// buildEd25519Wire lays out a single-signature ed25519 attestation with
// drawn padding between the header and the payload sections.
func buildEd25519Wire(pad int, pubkey, message []byte) []byte {
	const headerSize = 16
	pubkeyOffset := headerSize + pad
	messageOffset := pubkeyOffset + len(pubkey)

	data := make([]byte, messageOffset+len(message))
	data[0] = 1
	binary.LittleEndian.PutUint16(data[6:8], uint16(pubkeyOffset))
	binary.LittleEndian.PutUint16(data[10:12], uint16(messageOffset))
	binary.LittleEndian.PutUint16(data[12:14], uint16(len(message)))
	copy(data[pubkeyOffset:], pubkey)
	copy(data[messageOffset:], message)
	return data
}

// buildSecp256k1Wire lays out a single-signature secp256k1 attestation.
func buildSecp256k1Wire(signature, pubkey, digest []byte) []byte {
	const headerSize = 16
	sigOffset := headerSize
	pubkeyOffset := sigOffset + len(signature)
	messageOffset := pubkeyOffset + len(pubkey)

	data := make([]byte, messageOffset+len(digest))
	data[0] = 1
	binary.LittleEndian.PutUint16(data[2:4], uint16(sigOffset))
	binary.LittleEndian.PutUint16(data[6:8], uint16(pubkeyOffset))
	binary.LittleEndian.PutUint16(data[10:12], uint16(messageOffset))
	binary.LittleEndian.PutUint16(data[12:14], uint16(len(digest)))
	copy(data[sigOffset:], signature)
	copy(data[pubkeyOffset:], pubkey)
	copy(data[messageOffset:], digest)
	return data
}

// TestAttestationParseProperties tests wire decoding of both schemes
func TestAttestationParseProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		identity := rapid.SliceOfN(rapid.Byte(), types.NodeIdentityLength, types.NodeIdentityLength).Draw(t, "identity")
		message := rapid.SliceOfN(rapid.Byte(), 0, 200).Draw(t, "message")
		pad := rapid.IntRange(0, 64).Draw(t, "pad")

		att := types.Attestation{
			Scheme: types.AttestationSchemeEd25519,
			Data:   buildEd25519Wire(pad, identity, message),
		}

		// Property: offsets are honored wherever the sections land.
		parsed, err := att.Parse()
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if !bytes.Equal(parsed.Identity, identity) {
			t.Fatalf("identity %x, want %x", parsed.Identity, identity)
		}
		if !bytes.Equal(parsed.Message, message) {
			t.Fatalf("message %x, want %x", parsed.Message, message)
		}

		// Property: any signature count other than one is rejected.
		count := rapid.Byte().Draw(t, "count")
		if count != 1 {
			bad := append([]byte(nil), att.Data...)
			bad[0] = count
			if _, err := (types.Attestation{Scheme: types.AttestationSchemeEd25519, Data: bad}).Parse(); err == nil {
				t.Fatalf("signature count %d accepted", count)
			}
		}

		// Property: truncated headers are rejected.
		cut := rapid.IntRange(0, 15).Draw(t, "cut")
		if _, err := (types.Attestation{Scheme: types.AttestationSchemeEd25519, Data: att.Data[:cut]}).Parse(); err == nil {
			t.Fatalf("truncated header of %d bytes accepted", cut)
		}

		// The foreign-chain scheme derives the identity from the embedded
		// public key and insists on a digest-sized message.
		pubkey := rapid.SliceOfN(rapid.Byte(), 64, 64).Draw(t, "pubkey")
		signature := rapid.SliceOfN(rapid.Byte(), 65, 65).Draw(t, "signature")
		digest := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, "digest")

		secp := types.Attestation{
			Scheme: types.AttestationSchemeSecp256k1,
			Data:   buildSecp256k1Wire(signature, pubkey, digest),
		}
		parsed, err = secp.Parse()
		if err != nil {
			t.Fatalf("secp256k1 Parse error: %v", err)
		}
		wantIdentity := types.EthAddressToIdentity(ethcrypto.Keccak256(pubkey)[12:])
		if !bytes.Equal(parsed.Identity, wantIdentity) {
			t.Fatalf("secp256k1 identity %x, want %x", parsed.Identity, wantIdentity)
		}
		if !bytes.Equal(parsed.Message, digest) {
			t.Fatalf("secp256k1 message %x, want %x", parsed.Message, digest)
		}

		shortDigest := rapid.SliceOfN(rapid.Byte(), 0, 31).Draw(t, "shortDigest")
		bad := types.Attestation{
			Scheme: types.AttestationSchemeSecp256k1,
			Data:   buildSecp256k1Wire(signature, pubkey, shortDigest),
		}
		if _, err := bad.Parse(); err == nil {
			t.Fatalf("message size %d accepted", len(shortDigest))
		}
	})
}

// TestReportEncodingProperties tests the canonical report payload
func TestReportEncodingProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		authority := rapid.StringMatching(`veris1[a-z0-9]{38}`).Draw(t, "authority")
		name := rapid.StringMatching(`[a-z0-9-]{1,32}`).Draw(t, "name")
		value := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, "value")
		timestamp := rapid.Int64Range(0, 1<<40).Draw(t, "timestamp")

		message := types.CanonicalReportMessage(authority, name, value, timestamp)

		// Property: the payload decodes back to the committed fields.
		var report types.SignedReport
		if err := json.Unmarshal(message, &report); err != nil {
			t.Fatalf("payload is not valid JSON: %v", err)
		}
		if report.FeedKey != authority+"/"+name {
			t.Fatalf("feed key %q, want %q", report.FeedKey, authority+"/"+name)
		}
		if report.Value != hex.EncodeToString(value) {
			t.Fatalf("value %q, want %q", report.Value, hex.EncodeToString(value))
		}
		if report.Timestamp != timestamp {
			t.Fatalf("timestamp %d, want %d", report.Timestamp, timestamp)
		}

		// Property: the digest commits to the payload.
		digest := types.ReportDigest(authority, name, value, timestamp)
		if !bytes.Equal(digest, ethcrypto.Keccak256(message)) {
			t.Fatal("digest is not the keccak of the canonical message")
		}
		if bytes.Equal(digest, types.ReportDigest(authority, name, value, timestamp+1)) {
			t.Fatal("timestamp does not affect the digest")
		}

		otherValue := append([]byte(nil), value...)
		otherValue[0] ^= 0xFF
		if bytes.Equal(digest, types.ReportDigest(authority, name, otherValue, timestamp)) {
			t.Fatal("value does not affect the digest")
		}
	})
}

// TestRegistryMembershipProperties tests identity lookup
func TestRegistryMembershipProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		identityGen := rapid.SliceOfN(rapid.Byte(), types.NodeIdentityLength, types.NodeIdentityLength)
		members := rapid.SliceOfNDistinct(identityGen, 1, 16, func(b []byte) string {
			return string(b)
		}).Draw(t, "members")

		registry := types.NodeRegistry{Nodes: members}

		// Property: every member is found.
		for i, identity := range members {
			if !registry.Contains(identity) {
				t.Fatalf("member %d not found", i)
			}
		}

		// Property: mutating one byte of a member misses.
		probe := append([]byte(nil), members[0]...)
		probe[rapid.IntRange(0, types.NodeIdentityLength-1).Draw(t, "flip")] ^= 0xFF
		if registry.Contains(probe) {
			found := false
			for _, identity := range members {
				if bytes.Equal(identity, probe) {
					found = true
					break
				}
			}
			if !found {
				t.Fatal("registry reports a non-member as present")
			}
		}
	})
}

// TestPropertySubscriptionCostSuperadditive tests that splitting a duration
// into two charges never pays more than charging it whole
func TestPropertySubscriptionCostSuperadditive(t *testing.T) {
	t.Parallel()
	property := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))

		price := uint64(rng.Int63n(1_000_000_000))
		first := uint64(rng.Int63n(1_000_000))
		second := uint64(rng.Int63n(1_000_000))

		costFirst, err := keeper.SubscriptionCost(price, first)
		if err != nil {
			return false
		}
		costSecond, err := keeper.SubscriptionCost(price, second)
		if err != nil {
			return false
		}
		costWhole, err := keeper.SubscriptionCost(price, first+second)
		if err != nil {
			return false
		}

		split := costFirst + costSecond
		return split <= costWhole && costWhole <= split+1
	}

	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 1000}))
}

// TestPropertyPriorityFeeBelowBid tests that realistic work estimates keep
// the settled priority fee at or below the submitted bid
func TestPropertyPriorityFeeBelowBid(t *testing.T) {
	t.Parallel()
	property := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))

		nodeCount := rng.Intn(types.MaxNodes + 1)
		historyLen := rng.Intn(2 * types.MaxAnswerHistory)
		bid := uint64(rng.Int63n(1_000_000_000_000))

		units := keeper.EstimateComputeUnits(nodeCount, historyLen)
		if units >= types.FeeBidScale {
			return false
		}

		fee, err := keeper.ComputePriorityFee(bid, units)
		if err != nil {
			return false
		}
		return fee <= bid
	}

	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 1000}))
}

// TestPropertyReportDigestSensitivity tests that any single-byte change to
// the reported value, or a timestamp bump, produces a different digest
func TestPropertyReportDigestSensitivity(t *testing.T) {
	t.Parallel()
	property := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))

		value := make([]byte, types.AnswerValueLength)
		rng.Read(value)
		timestamp := rng.Int63n(1 << 40)

		digest := types.ReportDigest("authority", "feed", value, timestamp)

		mutated := append([]byte(nil), value...)
		mutated[rng.Intn(len(mutated))] ^= byte(rng.Intn(255) + 1)
		if bytes.Equal(digest, types.ReportDigest("authority", "feed", mutated, timestamp)) {
			return false
		}

		return !bytes.Equal(digest, types.ReportDigest("authority", "feed", value, timestamp+1))
	}

	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 500}))
}
