package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledProvider(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)

	require.NoError(t, provider.HealthCheck())
	require.NotNil(t, provider.Tracer())
	require.NotNil(t, provider.Meter())
	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Enabled: true, OTLPEndpoint: "localhost:4318", SampleRate: 0.5},
		},
		{
			name:    "missing endpoint",
			cfg:     Config{Enabled: true, SampleRate: 0.5},
			wantErr: true,
		},
		{
			name:    "negative sample rate",
			cfg:     Config{Enabled: true, OTLPEndpoint: "localhost:4318", SampleRate: -0.1},
			wantErr: true,
		},
		{
			name:    "sample rate above one",
			cfg:     Config{Enabled: true, OTLPEndpoint: "localhost:4318", SampleRate: 1.5},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateConfig(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStartRequestSpan(t *testing.T) {
	ctx, span := StartRequestSpan(context.Background(), "GET", "/api/params")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()
}

func TestStartStoreQuerySpan(t *testing.T) {
	ctx, span := StartStoreQuerySpan(context.Background(), "store/oracle/key")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()
}

func TestSpanHelpersNilSafe(t *testing.T) {
	RecordError(nil, nil)
	SetSpanStatus(nil, true, "ok")
	AddSpanAttributes(nil)
	AddSpanEvent(nil, "event")
}
