// Package metrics holds the Prometheus instruments for the wordfreq boundary layers.
//
// Each Metrics value owns its own registry so servers built in tests never
// collide on the global default registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wordfreq"

// Metrics holds counters and histograms for analysis requests.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts requests by transport (http, ipc), operation and status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures request latency by transport and operation.
	RequestDurationSeconds *prometheus.HistogramVec

	// ErrorsTotal counts failed requests by transport and kind
	// (invalid_input, invalid_word, validation, internal).
	ErrorsTotal *prometheus.CounterVec

	// TextBytes observes the size of analyzed texts.
	TextBytes prometheus.Histogram
}

// New registers all instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total analysis requests by transport, operation and status code.",
		}, []string{"transport", "operation", "code"}),
		RequestDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Analysis request latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"transport", "operation"}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failed analysis requests by transport and error kind.",
		}, []string{"transport", "kind"}),
		TextBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "text_bytes",
			Help:      "Size of analyzed texts in bytes.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished request. A nil Metrics is a no-op.
func (m *Metrics) ObserveRequest(transport, operation, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(transport, operation, code).Inc()
	m.RequestDurationSeconds.WithLabelValues(transport, operation).Observe(elapsed.Seconds())
}

// ObserveError records a failed request of the given kind.
func (m *Metrics) ObserveError(transport, kind string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(transport, kind).Inc()
}

// ObserveText records the size of an analyzed text.
func (m *Metrics) ObserveText(size int) {
	if m == nil {
		return
	}
	m.TextBytes.Observe(float64(size))
}
