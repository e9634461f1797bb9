package types

import "bytes"

// Answer is a single accepted report for a feed.
type Answer struct {
	Value     []byte `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

// IsZero reports whether the answer payload is absent or all zero bytes.
func (a Answer) IsZero() bool {
	for _, b := range a.Value {
		if b != 0 {
			return false
		}
	}
	return true
}

// NodeRegistry is the singleton set of trusted reporting nodes.
type NodeRegistry struct {
	Authority string   `json:"authority"`
	Nodes     [][]byte `json:"nodes"`
}

// Contains reports whether the identity is registered.
func (r NodeRegistry) Contains(identity []byte) bool {
	for _, n := range r.Nodes {
		if bytes.Equal(n, identity) {
			return true
		}
	}
	return false
}

// NodeAccount is per-node bookkeeping kept alongside the registry.
type NodeAccount struct {
	Identity   []byte `json:"identity"`
	Authority  string `json:"authority"`
	Active     bool   `json:"active"`
	CreatedAt  int64  `json:"created_at"`
	LastActive int64  `json:"last_active,omitempty"`
}

// DataSource describes where a feed's reports originate. Immutable once
// created; the ID is the content hash of (kind, source, owner, name).
type DataSource struct {
	ID        []byte         `json:"id"`
	Owner     string         `json:"owner,omitempty"`
	OwnerEth  []byte         `json:"owner_eth"`
	Kind      DataSourceKind `json:"kind"`
	Name      string         `json:"name"`
	Source    string         `json:"source"`
	CreatedAt int64          `json:"created_at"`
}

// EthLink grants a local account the right to use a foreign owner's
// private data sources.
type EthLink struct {
	OwnerEth  []byte `json:"owner_eth"`
	Grantee   string `json:"grantee"`
	CreatedAt int64  `json:"created_at"`
}

// Feed is the unit of subscription and publication.
type Feed struct {
	Name                 string   `json:"name"`
	Authority            string   `json:"authority"`
	FeedType             FeedType `json:"feed_type"`
	JobID                []byte   `json:"job_id,omitempty"`
	DataSourceID         []byte   `json:"data_source_id"`
	MinSignatures        uint32   `json:"min_signatures"`
	FrequencySeconds     uint64   `json:"frequency_seconds"`
	IPFSCid              string   `json:"ipfs_cid"`
	LatestAnswer         Answer   `json:"latest_answer"`
	AnswerHistory        []Answer `json:"answer_history"`
	HistoryCursor        uint64   `json:"history_cursor"`
	Balance              uint64   `json:"balance"`
	SubscriptionDueTime  int64    `json:"subscription_due_time"`
	PricePerSecondScaled uint64   `json:"price_per_second_scaled"`
	PriorityFeeAllowance uint64   `json:"priority_fee_allowance"`
	ConsumedPriorityFees uint64   `json:"consumed_priority_fees"`
	CreatedAt            int64    `json:"created_at"`
}

// Key returns the feed's store key.
func (f Feed) Key() []byte {
	return GetFeedKey(f.Authority, f.Name)
}

// IsActive reports whether the subscription has not yet lapsed.
func (f Feed) IsActive(now int64) bool {
	return now < f.SubscriptionDueTime
}

// RecordAnswer sets the latest answer and writes it into the bounded
// history ring buffer. While the buffer grows the cursor tracks its
// length; once full, writes wrap and the cursor always points at the
// oldest entry.
func (f *Feed) RecordAnswer(a Answer) {
	f.LatestAnswer = a
	if len(f.AnswerHistory) < MaxAnswerHistory {
		f.AnswerHistory = append(f.AnswerHistory, a)
		f.HistoryCursor = uint64(len(f.AnswerHistory))
		return
	}
	idx := f.HistoryCursor % MaxAnswerHistory
	f.AnswerHistory[idx] = a
	f.HistoryCursor = (idx + 1) % MaxAnswerHistory
}

// AnswerHistoryChronological returns the recorded answers oldest first.
// While the buffer is still filling it is already in order; once full,
// the cursor marks the oldest entry.
func (f Feed) AnswerHistoryChronological() []Answer {
	if len(f.AnswerHistory) < MaxAnswerHistory {
		return append([]Answer(nil), f.AnswerHistory...)
	}
	cursor := int(f.HistoryCursor) % MaxAnswerHistory
	out := make([]Answer, 0, len(f.AnswerHistory))
	out = append(out, f.AnswerHistory[cursor:]...)
	out = append(out, f.AnswerHistory[:cursor]...)
	return out
}

// Subscription is a per-consumer prepaid balance charged under the
// flat-fee policy.
type Subscription struct {
	Consumer      string `json:"consumer"`
	FeedAuthority string `json:"feed_authority"`
	FeedName      string `json:"feed_name"`
	Balance       uint64 `json:"balance"`
	CreatedAt     int64  `json:"created_at"`
}

// Key returns the subscription's store key.
func (s Subscription) Key() []byte {
	return GetSubscriptionKey(s.Consumer, s.FeedAuthority, s.FeedName)
}
