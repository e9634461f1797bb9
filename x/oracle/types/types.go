package types

import "fmt"

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

const (
	// MaxNodes caps the registry size. The attestation header indexes
	// accounts with a single byte, so a larger registry could never be
	// referenced anyway.
	MaxNodes = 256

	// MaxAnswerHistory is the ring buffer capacity for per-feed answers.
	MaxAnswerHistory = 20

	// NodeIdentityLength is the byte length of a node identity.
	NodeIdentityLength = 32

	// AnswerValueLength is the byte length of an answer payload.
	AnswerValueLength = 32

	// JobIDLength is the byte length of a feed's job identifier.
	JobIDLength = 32

	// EthAddressLength is the byte length of a foreign-chain address.
	EthAddressLength = 20

	// EthSignatureLength is r || s || v.
	EthSignatureLength = 65

	// MaxFeedNameLength bounds feed names.
	MaxFeedNameLength = 64

	// MaxDataSourceNameLength bounds data source names.
	MaxDataSourceNameLength = 32

	// MaxSourceLength bounds data source descriptors (URL, query, ...).
	MaxSourceLength = 256

	// MaxJobPointerLength bounds the off-chain job pointer (an IPFS CID).
	MaxJobPointerLength = 60
)

const (
	// PriceScalar is the fixed-point scale for per-second prices.
	PriceScalar uint64 = 1_000_000

	// CoefficientScale is the denominator for pricing coefficients, so a
	// coefficient of 10000 means an exponent of exactly 1.
	CoefficientScale uint64 = 10_000

	// SecondsPerDay converts a feed frequency into updates per day.
	SecondsPerDay uint64 = 86_400

	// MinSubscriptionSeconds is the shortest subscription a feed can be
	// created with.
	MinSubscriptionSeconds uint64 = 86_400

	// MinExtensionSeconds is the shortest allowed subscription extension.
	MinExtensionSeconds uint64 = 86_400
)

const (
	// BaseComputeUnits is the flat per-publish compute estimate.
	BaseComputeUnits uint64 = 5_000

	// ComputeUnitsPerNode is the per-registered-node compute estimate.
	ComputeUnitsPerNode uint64 = 1_000

	// ShortHistoryComputeUnits is added while the ring buffer still grows.
	ShortHistoryComputeUnits uint64 = 500

	// FullHistoryComputeUnits is added once the ring buffer is full.
	FullHistoryComputeUnits uint64 = 200

	// FeeBidScale converts a micro-denominated fee bid into a fee:
	// fee = bid * units / FeeBidScale.
	FeeBidScale uint64 = 1_000_000
)

// FeedType discriminates who may publish to and pay for a feed.
type FeedType uint8

const (
	// FeedTypePublic is an open feed, free to publish to under the
	// flat-fee policy.
	FeedTypePublic FeedType = 0

	// FeedTypePersonal is operated and reconfigured by its authority alone.
	FeedTypePersonal FeedType = 1
)

// Validate returns an error for unknown feed types.
func (t FeedType) Validate() error {
	switch t {
	case FeedTypePublic, FeedTypePersonal:
		return nil
	default:
		return fmt.Errorf("unknown feed type %d", t)
	}
}

func (t FeedType) String() string {
	switch t {
	case FeedTypePublic:
		return "public"
	case FeedTypePersonal:
		return "personal"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// DataSourceKind discriminates open data sources from permissioned ones.
type DataSourceKind uint8

const (
	// DataSourceKindPublic may back any feed.
	DataSourceKindPublic DataSourceKind = 0

	// DataSourceKindPrivate may only back feeds whose authority holds a
	// link from the source's foreign-chain owner.
	DataSourceKindPrivate DataSourceKind = 1
)

// Validate returns an error for unknown data source kinds.
func (k DataSourceKind) Validate() error {
	switch k {
	case DataSourceKindPublic, DataSourceKindPrivate:
		return nil
	default:
		return fmt.Errorf("unknown data source kind %d", k)
	}
}

func (k DataSourceKind) String() string {
	switch k {
	case DataSourceKindPublic:
		return "public"
	case DataSourceKindPrivate:
		return "private"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}
