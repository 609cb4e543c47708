// Package metrics defines the Prometheus collectors the lipi services share
// and exposes a scrape handler. Collectors hang off a per-instance registry
// so tests can build as many Metrics values as they like
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the services report to
type Metrics struct {
	reg *prometheus.Registry

	// classification pipeline
	ClassifyTotal    *prometheus.CounterVec
	ClassifyDuration prometheus.Histogram
	LexiconSize      *prometheus.GaugeVec

	// result cache
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	// http surface
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// kafka stream
	StreamMessagesTotal *prometheus.CounterVec

	// storage
	EntriesWrittenTotal prometheus.Counter
	ResultsWrittenTotal prometheus.Counter
}

// New builds and registers all collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		ClassifyTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lipi_classify_total",
				Help: "Classifications performed, by language label and script verdict.",
			},
			[]string{"language", "script"},
		),
		ClassifyDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lipi_classify_duration_seconds",
				Help:    "Single-text classification latency in seconds.",
				Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
			},
		),
		LexiconSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lipi_lexicon_entries",
				Help: "Entries in the loaded lexicon pack, by set (english, hindi, patterns).",
			},
			[]string{"set"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lipi_cache_hits_total",
				Help: "Classification result cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lipi_cache_misses_total",
				Help: "Classification result cache misses.",
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lipi_http_requests_total",
				Help: "HTTP requests by method, route pattern, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lipi_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		StreamMessagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lipi_stream_messages_total",
				Help: "Kafka messages by topic and outcome (ok, error, skipped).",
			},
			[]string{"topic", "outcome"},
		),
		EntriesWrittenTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lipi_entries_written_total",
				Help: "Journal entries persisted.",
			},
		),
		ResultsWrittenTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lipi_results_written_total",
				Help: "Classification results persisted.",
			},
		),
	}

	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ClassifyTotal,
		m.ClassifyDuration,
		m.LexiconSize,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.StreamMessagesTotal,
		m.EntriesWrittenTotal,
		m.ResultsWrittenTotal,
	)
	return m
}

// SetLexiconSizes records the loaded pack sizes on the lexicon gauge
func (m *Metrics) SetLexiconSizes(english, hindi, patterns int) {
	m.LexiconSize.WithLabelValues("english").Set(float64(english))
	m.LexiconSize.WithLabelValues("hindi").Set(float64(hindi))
	m.LexiconSize.WithLabelValues("patterns").Set(float64(patterns))
}

// ObserveClassify records one classification outcome
func (m *Metrics) ObserveClassify(language, script string, seconds float64) {
	m.ClassifyTotal.WithLabelValues(language, script).Inc()
	m.ClassifyDuration.Observe(seconds)
}

// Handler returns the scrape handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for custom registrations
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }
