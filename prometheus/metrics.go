// Package prometheus records campusguide search and asset metrics using the
// Prometheus client library.
package prometheus

import (
	"net/http"
	"time"

	"github.com/fwojciec/campusguide"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ensure Metrics implements campusguide.SearchObserver at compile time.
var _ campusguide.SearchObserver = (*Metrics)(nil)

// Search outcome label values.
const (
	OutcomeMatched = "matched"
	OutcomeEmpty   = "empty"
	OutcomeNoMatch = "no_match"
	OutcomeError   = "error"
)

// Metrics holds the collectors for one registry.
type Metrics struct {
	registry *prometheus.Registry

	searches       *prometheus.CounterVec
	searchDuration prometheus.Histogram
	assets         *prometheus.CounterVec
}

// NewMetrics creates collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campusguide",
			Name:      "searches_total",
			Help:      "Location searches by outcome and matching pass.",
		}, []string{"outcome", "pass"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "campusguide",
			Name:      "search_duration_seconds",
			Help:      "Time spent matching a query against the catalog.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
		}),
		assets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campusguide",
			Name:      "asset_requests_total",
			Help:      "Image requests by result code.",
		}, []string{"code"}),
	}

	m.registry.MustRegister(
		m.searches,
		m.searchDuration,
		m.assets,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSearch records a search outcome.
func (m *Metrics) ObserveSearch(pass campusguide.MatchPass, err error, duration time.Duration) {
	m.searches.WithLabelValues(SearchOutcome(err), pass.String()).Inc()
	m.searchDuration.Observe(duration.Seconds())
}

// ObserveAsset records an image request result.
func (m *Metrics) ObserveAsset(err error) {
	code := campusguide.ErrorCode(err)
	if code == "" {
		code = "ok"
	}
	m.assets.WithLabelValues(code).Inc()
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SearchOutcome maps a Match error to an outcome label value.
func SearchOutcome(err error) string {
	switch campusguide.ErrorCode(err) {
	case "":
		return OutcomeMatched
	case campusguide.EINVALID:
		return OutcomeEmpty
	case campusguide.ENOTFOUND:
		return OutcomeNoMatch
	default:
		return OutcomeError
	}
}
