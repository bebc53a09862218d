package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search outcomes reported on the searches counter.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

type metrics struct {
	registry *prometheus.Registry
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics builds a per-server registry so tests can create servers freely.
func newMetrics() *metrics {
	registry := prometheus.NewRegistry()

	m := &metrics{
		registry: registry,
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lyrics_explorer_searches_total",
			Help: "Lyrics searches by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lyrics_explorer_request_duration_seconds",
			Help:    "HTTP request duration by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
	}

	registry.MustRegister(m.searches, m.duration)
	return m
}

func (m *metrics) observeSearch(outcome string) {
	m.searches.WithLabelValues(outcome).Inc()
}

func (m *metrics) observeRequest(path string, elapsed time.Duration) {
	m.duration.WithLabelValues(path).Observe(elapsed.Seconds())
}
