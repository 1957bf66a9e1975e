package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CatalogSourceLive     = "live"
	CatalogSourceFallback = "fallback"

	OutcomeSuccess     = "success"
	OutcomeIdentity    = "identity"
	OutcomeTransport   = "transport_error"
	OutcomeUnavailable = "rate_unavailable"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CatalogLoadsTotal *prometheus.CounterVec
	ConversionsTotal  *prometheus.CounterVec
	StorageErrors     prometheus.Counter
}

// NewMetrics registers the collectors on reg. A nil *Metrics is valid and
// records nothing.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		CatalogLoadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_loads_total",
				Help: "Total number of currency catalog loads by source",
			},
			[]string{"source"},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Total number of conversions by outcome",
			},
			[]string{"outcome"},
		),

		StorageErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "preference_storage_errors_total",
				Help: "Total number of failed preference reads and writes",
			},
		),
	}
}

func (m *Metrics) CatalogLoaded(source string) {
	if m == nil {
		return
	}
	m.CatalogLoadsTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) Converted(outcome string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) StorageFailed() {
	if m == nil {
		return
	}
	m.StorageErrors.Inc()
}
