package types

import (
	"testing"
)

// ============================================================================
// Module Constants Tests
// ============================================================================

func TestModuleConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"ModuleName", ModuleName, "oracle"},
		{"StoreKey", StoreKey, "oracle"},
		{"RouterKey", RouterKey, "oracle"},
		{"QuerierRoute", QuerierRoute, "oracle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

func TestProtocolConstants(t *testing.T) {
	if MaxNodes != 256 {
		t.Errorf("MaxNodes = %d, want 256", MaxNodes)
	}
	if MaxAnswerHistory != 20 {
		t.Errorf("MaxAnswerHistory = %d, want 20", MaxAnswerHistory)
	}
	if PriceScalar != 1_000_000 {
		t.Errorf("PriceScalar = %d, want 1000000", PriceScalar)
	}
	if CoefficientScale != 10_000 {
		t.Errorf("CoefficientScale = %d, want 10000", CoefficientScale)
	}
	if SecondsPerDay != 86_400 {
		t.Errorf("SecondsPerDay = %d, want 86400", SecondsPerDay)
	}
	if MinSubscriptionSeconds != SecondsPerDay {
		t.Errorf("MinSubscriptionSeconds = %d, want %d", MinSubscriptionSeconds, SecondsPerDay)
	}
	if MinExtensionSeconds != SecondsPerDay {
		t.Errorf("MinExtensionSeconds = %d, want %d", MinExtensionSeconds, SecondsPerDay)
	}
}

// ============================================================================
// FeedType Tests
// ============================================================================

func TestFeedTypeDiscriminants(t *testing.T) {
	if FeedTypePublic != 0 {
		t.Errorf("FeedTypePublic = %d, want 0", FeedTypePublic)
	}
	if FeedTypePersonal != 1 {
		t.Errorf("FeedTypePersonal = %d, want 1", FeedTypePersonal)
	}
}

func TestFeedTypeValidate(t *testing.T) {
	if err := FeedTypePublic.Validate(); err != nil {
		t.Errorf("FeedTypePublic.Validate() = %v, want nil", err)
	}
	if err := FeedTypePersonal.Validate(); err != nil {
		t.Errorf("FeedTypePersonal.Validate() = %v, want nil", err)
	}
	if err := FeedType(2).Validate(); err == nil {
		t.Error("FeedType(2).Validate() = nil, want error")
	}
}

func TestFeedTypeString(t *testing.T) {
	if got := FeedTypePublic.String(); got != "public" {
		t.Errorf("FeedTypePublic.String() = %q, want %q", got, "public")
	}
	if got := FeedTypePersonal.String(); got != "personal" {
		t.Errorf("FeedTypePersonal.String() = %q, want %q", got, "personal")
	}
}

// ============================================================================
// DataSourceKind Tests
// ============================================================================

func TestDataSourceKindDiscriminants(t *testing.T) {
	if DataSourceKindPublic != 0 {
		t.Errorf("DataSourceKindPublic = %d, want 0", DataSourceKindPublic)
	}
	if DataSourceKindPrivate != 1 {
		t.Errorf("DataSourceKindPrivate = %d, want 1", DataSourceKindPrivate)
	}
}

func TestDataSourceKindValidate(t *testing.T) {
	if err := DataSourceKindPublic.Validate(); err != nil {
		t.Errorf("DataSourceKindPublic.Validate() = %v, want nil", err)
	}
	if err := DataSourceKindPrivate.Validate(); err != nil {
		t.Errorf("DataSourceKindPrivate.Validate() = %v, want nil", err)
	}
	if err := DataSourceKind(7).Validate(); err == nil {
		t.Error("DataSourceKind(7).Validate() = nil, want error")
	}
}
