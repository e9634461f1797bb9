package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OracleMetrics holds all Prometheus metrics for the oracle module
type OracleMetrics struct {
	// Publication metrics
	AnswersPublished     *prometheus.CounterVec
	PublishRejections    *prometheus.CounterVec
	AttestationsAccepted prometheus.Counter
	FeesCharged          *prometheus.CounterVec

	// Registry metrics
	RegistrySize prometheus.Gauge

	// Lifecycle metrics
	FeedsCreated           *prometheus.CounterVec
	SubscriptionExtensions prometheus.Counter
	DataSourcesCreated     *prometheus.CounterVec
	PermitsActive          prometheus.Gauge
}

var (
	oracleMetricsOnce sync.Once
	oracleMetrics     *OracleMetrics
)

// NewOracleMetrics creates and registers oracle metrics (singleton pattern)
func NewOracleMetrics() *OracleMetrics {
	oracleMetricsOnce.Do(func() {
		oracleMetrics = &OracleMetrics{
			// Publication metrics
			AnswersPublished: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veris",
					Subsystem: "oracle",
					Name:      "answers_published_total",
					Help:      "Accepted answer publications by feed type",
				},
				[]string{"feed_type"},
			),
			PublishRejections: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veris",
					Subsystem: "oracle",
					Name:      "publish_rejections_total",
					Help:      "Rejected answer publications by reason",
				},
				[]string{"reason"},
			),
			AttestationsAccepted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veris",
					Subsystem: "oracle",
					Name:      "attestations_accepted_total",
					Help:      "Distinct attestations counted into published answers",
				},
			),
			FeesCharged: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veris",
					Subsystem: "oracle",
					Name:      "fees_charged_total",
					Help:      "Publication fees charged by policy",
				},
				[]string{"policy"},
			),

			// Registry metrics
			RegistrySize: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "veris",
					Subsystem: "oracle",
					Name:      "registry_size",
					Help:      "Registered node identities",
				},
			),

			// Lifecycle metrics
			FeedsCreated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veris",
					Subsystem: "oracle",
					Name:      "feeds_created_total",
					Help:      "Feeds created by feed type",
				},
				[]string{"feed_type"},
			),
			SubscriptionExtensions: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veris",
					Subsystem: "oracle",
					Name:      "subscription_extensions_total",
					Help:      "Subscription extension operations",
				},
			),
			DataSourcesCreated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veris",
					Subsystem: "oracle",
					Name:      "data_sources_created_total",
					Help:      "Data sources created by kind",
				},
				[]string{"kind"},
			),
			PermitsActive: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "veris",
					Subsystem: "oracle",
					Name:      "permits_active",
					Help:      "Active owner permits",
				},
			),
		}
	})
	return oracleMetrics
}

// GetOracleMetrics returns the singleton oracle metrics instance
func GetOracleMetrics() *OracleMetrics {
	if oracleMetrics == nil {
		return NewOracleMetrics()
	}
	return oracleMetrics
}
