// Package metrics exposes Prometheus instrumentation for calls to remote platforms.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics owns a private registry so tests can create independent instances.
type Metrics struct {
	registry      *prometheus.Registry
	remoteCalls   *prometheus.CounterVec
	remoteLatency *prometheus.HistogramVec
	staleResponse prometheus.Counter
}

// New creates the registry with Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_requests_total",
			Help:      "Requests sent to remote platforms.",
		}, []string{"service", "operation", "outcome"}),
		remoteLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_request_duration_seconds",
			Help:      "Latency of requests sent to remote platforms.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		staleResponse: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_stale_responses_total",
			Help:      "Cart mutation responses discarded because a newer operation had already been applied.",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.remoteCalls,
		m.remoteLatency,
		m.staleResponse,
	)

	return m
}

// ObserveRemoteCall records one remote request. A nil receiver is a no-op.
func (m *Metrics) ObserveRemoteCall(service, operation string, start time.Time, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	m.remoteCalls.WithLabelValues(service, operation, outcome).Inc()
	m.remoteLatency.WithLabelValues(service, operation).Observe(time.Since(start).Seconds())
}

// IncStaleCartResponse counts a discarded cart mutation response.
func (m *Metrics) IncStaleCartResponse() {
	if m == nil {
		return
	}

	m.staleResponse.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
