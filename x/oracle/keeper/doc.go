// Package keeper implements the oracle module keeper for attested data feeds.
//
// The oracle module settles reports produced off-chain by a registry of
// trusted reporting nodes. A report is accepted when enough distinct
// registered identities attest to the same canonical report bytes, the feed's
// subscription is paid up, and the report's timestamp advances the feed.
// Accepted answers land in a bounded per-feed history ring.
//
// # Core Functionality
//
// Node Registry: A singleton, capacity-bounded set of 32-byte node
// identities managed by a registry authority, with per-node bookkeeping
// records tracking activity.
//
// Signature Aggregation: Candidate attestations arrive in two wire schemes, a
// native one carrying the signer identity directly and a foreign-chain one
// whose identity is recovered from a secp256k1 public key hash. The
// aggregator counts distinct registered signers over the expected report and
// enforces each feed's threshold.
//
// Subscription Billing: Feeds prepay for a time window at a price derived
// from update cadence and signature threshold. Extensions, reconfigurations
// with value-preserving due-time rescaling, top-ups, and a legacy
// per-consumer flat-fee policy are all supported. All pricing arithmetic is
// checked uint64 math.
//
// Cross-Chain Ownership: Data sources and private-source permits are
// authorized by Ethereum wallet signatures over fixed typed-data digests,
// verified by ECDSA public key recovery.
//
// # Key Types
//
// Keeper: Main module keeper managing registry, feed, data source, and
// subscription state.
//
// Feed: The unit of subscription and publication, keyed by (authority, name),
// holding the latest answer and the history ring.
//
// Attestation: One candidate signature over a report in co-processor wire
// encoding; parsing extracts the signer identity and signed message.
package keeper
