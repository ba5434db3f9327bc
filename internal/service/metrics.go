package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics names as constants for consistency.
const (
	MetricCandidatesScored = "scoring_candidates_total"
	MetricRankDuration     = "scoring_rank_duration_seconds"
	MetricPageItems        = "scoring_page_items"
	MetricStoreErrors      = "scoring_store_errors_total"
)

// Metrics contains Prometheus metrics for candidate ranking.
// All operations are thread-safe.
type Metrics struct {
	candidatesScored *prometheus.CounterVec
	rankDuration     *prometheus.HistogramVec
	pageItems        *prometheus.HistogramVec
	storeErrors      *prometheus.CounterVec
}

// NewMetrics creates and returns a new Metrics instance with all collectors initialized.
// The metrics are not registered; call Register to register them with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		candidatesScored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCandidatesScored,
				Help: "Total number of candidate listings scored, by mode",
			},
			[]string{"mode"},
		),
		rankDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricRankDuration,
				Help:    "Histogram of fetch, score and rank duration in seconds, by mode",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"mode"},
		),
		pageItems: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricPageItems,
				Help:    "Histogram of items returned per page, by mode",
				Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
			},
			[]string{"mode"},
		),
		storeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricStoreErrors,
				Help: "Total number of candidate store failures, by mode",
			},
			[]string{"mode"},
		),
	}
}

// Register registers all metrics with the given registry.
// Returns an error if registration fails.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors returns all Prometheus collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.candidatesScored,
		m.rankDuration,
		m.pageItems,
		m.storeErrors,
	}
}

// ObserveRank records one ranking pass. Safe to call on a nil receiver.
func (m *Metrics) ObserveRank(mode Mode, candidates, pageItems int, seconds float64) {
	if m == nil {
		return
	}
	m.candidatesScored.WithLabelValues(string(mode)).Add(float64(candidates))
	m.rankDuration.WithLabelValues(string(mode)).Observe(seconds)
	m.pageItems.WithLabelValues(string(mode)).Observe(float64(pageItems))
}

// IncStoreErrors increments the store error counter. Safe to call on a nil receiver.
func (m *Metrics) IncStoreErrors(mode Mode) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(string(mode)).Inc()
}
