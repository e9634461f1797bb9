package types

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanonicalReportMessageExactEncoding(t *testing.T) {
	value := bytes.Repeat([]byte{0x11}, AnswerValueLength)

	got := CanonicalReportMessage("cosmos1auth", "gold", value, 42)
	want := `{"feed_key":"cosmos1auth/gold","value":"` + strings.Repeat("11", AnswerValueLength) + `","timestamp":42}`
	if string(got) != want {
		t.Errorf("canonical message\n got %s\nwant %s", got, want)
	}
}

func TestCanonicalReportMessageDeterministic(t *testing.T) {
	value := bytes.Repeat([]byte{0xAB}, AnswerValueLength)

	a := CanonicalReportMessage("cosmos1auth", "gold", value, 1000)
	b := CanonicalReportMessage("cosmos1auth", "gold", value, 1000)
	if !bytes.Equal(a, b) {
		t.Error("canonical message must be deterministic")
	}
}

func TestReportDigest(t *testing.T) {
	value := bytes.Repeat([]byte{0xAB}, AnswerValueLength)

	digest := ReportDigest("cosmos1auth", "gold", value, 1000)
	if len(digest) != 32 {
		t.Fatalf("digest length %d, want 32", len(digest))
	}

	other := ReportDigest("cosmos1auth", "gold", value, 1001)
	if bytes.Equal(digest, other) {
		t.Error("digests for different timestamps must differ")
	}

	otherFeed := ReportDigest("cosmos1auth", "silver", value, 1000)
	if bytes.Equal(digest, otherFeed) {
		t.Error("digests for different feeds must differ")
	}
}
