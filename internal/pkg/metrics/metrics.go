// Package metrics exposes the service's Prometheus instruments on a private
// registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dashboard/internal/core/domain/model/summary"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
)

const namespace = "dashboard"

// Metrics holds every instrument the service records.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AggregationDuration *prometheus.HistogramVec
	SummaryOrders       *prometheus.GaugeVec
	SkippedRecords      prometheus.Gauge
	DelayedOrders       prometheus.Gauge
	StaleSummaries      prometheus.Counter

	ImportedOrders *prometheus.CounterVec
	ImportBatches  *prometheus.CounterVec

	CircuitBreakerState *prometheus.GaugeVec
	SettingsReloads     *prometheus.CounterVec
}

// New registers all instruments plus the Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	m.AggregationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Time spent aggregating one order snapshot",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"trigger"},
	)
	m.SummaryOrders = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "summary_orders",
			Help:      "Orders per bucket in the latest published summary",
		},
		[]string{"bucket"},
	)
	m.SkippedRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "summary_skipped_records",
		Help:      "Records excluded from the latest published summary",
	})
	m.DelayedOrders = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "summary_delayed_orders",
		Help:      "Delayed orders in the latest published summary",
	})
	m.StaleSummaries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_stale_discarded_total",
		Help:      "Completed summaries discarded because a newer one was already published",
	})

	m.ImportedOrders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imported_orders_total",
			Help:      "Orders written by imports",
		},
		[]string{"source"},
	)
	m.ImportBatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_batches_total",
			Help:      "Import batches by outcome",
		},
		[]string{"status"},
	)

	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
	m.SettingsReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_reloads_total",
			Help:      "Engine settings reloads by outcome",
		},
		[]string{"status"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AggregationDuration,
		m.SummaryOrders,
		m.SkippedRecords,
		m.DelayedOrders,
		m.StaleSummaries,
		m.ImportedOrders,
		m.ImportBatches,
		m.CircuitBreakerState,
		m.SettingsReloads,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordAggregation(trigger string, duration time.Duration) {
	m.AggregationDuration.WithLabelValues(trigger).Observe(duration.Seconds())
}

// RecordSummary mirrors the headline counts of a published summary.
func (m *Metrics) RecordSummary(s *summary.Summary) {
	if s == nil {
		return
	}
	m.SummaryOrders.WithLabelValues("new").Set(float64(s.NewOrdersTotal))
	m.SummaryOrders.WithLabelValues("inProgress").Set(float64(s.InProgressTotal))
	m.SummaryOrders.WithLabelValues("done").Set(float64(s.DoneTotal))
	m.SummaryOrders.WithLabelValues("unknown").Set(float64(s.UnknownTotal))
	m.SkippedRecords.Set(float64(s.Diagnostics.SkippedRecords))
	m.DelayedOrders.Set(float64(len(s.DelayedOrders)))
}

func (m *Metrics) RecordStaleSummary() {
	m.StaleSummaries.Inc()
}

func (m *Metrics) RecordImport(source string, accepted int, success bool) {
	if !success {
		m.ImportBatches.WithLabelValues("failure").Inc()
		return
	}
	m.ImportBatches.WithLabelValues("success").Inc()
	m.ImportedOrders.WithLabelValues(source).Add(float64(accepted))
}

func (m *Metrics) RecordSettingsReload(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.SettingsReloads.WithLabelValues(status).Inc()
}

// ObserveBreaker has the signature of resilience.StateObserver.
func (m *Metrics) ObserveBreaker(name string, _, to gobreaker.State) {
	m.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
}
