package types

import (
	"bytes"
	"testing"
)

func answerWithSeq(seq byte, ts int64) Answer {
	value := make([]byte, AnswerValueLength)
	value[0] = seq
	return Answer{Value: value, Timestamp: ts}
}

// ============================================================================
// Answer Tests
// ============================================================================

func TestAnswerIsZero(t *testing.T) {
	var empty Answer
	if !empty.IsZero() {
		t.Error("zero-value answer should be zero")
	}

	recorded := answerWithSeq(1, 100)
	if recorded.IsZero() {
		t.Error("recorded answer should not be zero")
	}
}

// ============================================================================
// Ring Buffer Tests
// ============================================================================

func TestRecordAnswerGrowsUntilFull(t *testing.T) {
	feed := Feed{}

	for i := 0; i < MaxAnswerHistory; i++ {
		feed.RecordAnswer(answerWithSeq(byte(i), int64(i+1)))

		if len(feed.AnswerHistory) != i+1 {
			t.Fatalf("after %d writes: history length %d, want %d", i+1, len(feed.AnswerHistory), i+1)
		}
		if feed.HistoryCursor != uint64(i+1) {
			t.Fatalf("after %d writes: cursor %d, want %d", i+1, feed.HistoryCursor, i+1)
		}
	}
}

func TestRecordAnswerWrapsWhenFull(t *testing.T) {
	feed := Feed{}

	const writes = 53
	for i := 0; i < writes; i++ {
		feed.RecordAnswer(answerWithSeq(byte(i), int64(i+1)))
	}

	if len(feed.AnswerHistory) != MaxAnswerHistory {
		t.Fatalf("history length %d, want %d", len(feed.AnswerHistory), MaxAnswerHistory)
	}
	if feed.HistoryCursor != writes%MaxAnswerHistory {
		t.Fatalf("cursor %d, want %d", feed.HistoryCursor, writes%MaxAnswerHistory)
	}
	if feed.LatestAnswer.Timestamp != writes {
		t.Fatalf("latest timestamp %d, want %d", feed.LatestAnswer.Timestamp, writes)
	}

	// The buffer must hold exactly the last MaxAnswerHistory answers.
	held := make(map[int64]bool, MaxAnswerHistory)
	for _, a := range feed.AnswerHistory {
		held[a.Timestamp] = true
	}
	for ts := int64(writes - MaxAnswerHistory + 1); ts <= writes; ts++ {
		if !held[ts] {
			t.Errorf("answer with timestamp %d evicted too early", ts)
		}
	}
}

func TestRecordAnswerCursorPointsAtOldest(t *testing.T) {
	feed := Feed{}

	for i := 0; i < MaxAnswerHistory+7; i++ {
		feed.RecordAnswer(answerWithSeq(byte(i), int64(i+1)))
	}

	oldest := feed.AnswerHistory[feed.HistoryCursor]
	for _, a := range feed.AnswerHistory {
		if a.Timestamp < oldest.Timestamp {
			t.Fatalf("cursor points at timestamp %d but %d is older", oldest.Timestamp, a.Timestamp)
		}
	}
}

func TestAnswerHistoryChronological(t *testing.T) {
	feed := Feed{}

	// While filling: already chronological.
	for i := 0; i < 5; i++ {
		feed.RecordAnswer(answerWithSeq(byte(i), int64(i+1)))
	}
	got := feed.AnswerHistoryChronological()
	if len(got) != 5 {
		t.Fatalf("length %d, want 5", len(got))
	}
	for i, a := range got {
		if a.Timestamp != int64(i+1) {
			t.Fatalf("position %d: timestamp %d, want %d", i, a.Timestamp, i+1)
		}
	}

	// After wrapping: oldest first, strictly increasing.
	for i := 5; i < MaxAnswerHistory+11; i++ {
		feed.RecordAnswer(answerWithSeq(byte(i), int64(i+1)))
	}
	got = feed.AnswerHistoryChronological()
	if len(got) != MaxAnswerHistory {
		t.Fatalf("length %d, want %d", len(got), MaxAnswerHistory)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp != got[i-1].Timestamp+1 {
			t.Fatalf("position %d: timestamp %d does not follow %d", i, got[i].Timestamp, got[i-1].Timestamp)
		}
	}
	if got[len(got)-1].Timestamp != int64(MaxAnswerHistory+11) {
		t.Fatalf("newest timestamp %d, want %d", got[len(got)-1].Timestamp, MaxAnswerHistory+11)
	}
}

// ============================================================================
// Feed Tests
// ============================================================================

func TestFeedIsActive(t *testing.T) {
	feed := Feed{SubscriptionDueTime: 1000}

	if !feed.IsActive(999) {
		t.Error("feed should be active before the due time")
	}
	if feed.IsActive(1000) {
		t.Error("feed should lapse exactly at the due time")
	}
	if feed.IsActive(1001) {
		t.Error("feed should be inactive after the due time")
	}
}

func TestFeedKeyRoundTrip(t *testing.T) {
	feed := Feed{Authority: "cosmos1authority", Name: "btc-usd"}

	key := feed.Key()
	if !bytes.Equal(key, GetFeedKey("cosmos1authority", "btc-usd")) {
		t.Error("feed key does not match GetFeedKey")
	}
}

// ============================================================================
// NodeRegistry Tests
// ============================================================================

func TestNodeRegistryContains(t *testing.T) {
	identityA := bytes.Repeat([]byte{0xAA}, NodeIdentityLength)
	identityB := bytes.Repeat([]byte{0xBB}, NodeIdentityLength)

	registry := NodeRegistry{Nodes: [][]byte{identityA}}

	if !registry.Contains(identityA) {
		t.Error("registry should contain an added identity")
	}
	if registry.Contains(identityB) {
		t.Error("registry should not contain a foreign identity")
	}
	if registry.Contains(identityA[:16]) {
		t.Error("registry should not match identity prefixes")
	}
}
