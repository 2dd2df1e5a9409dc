// Package metrics holds the Prometheus collectors of the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets are latency buckets in seconds. Conversions are pure
// arithmetic, so the range starts well below a millisecond.
var DefaultBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}

// Outcome labels
const (
	OutcomeSuccess     = "success"
	OutcomeUnknownUnit = "unknown_unit"
	OutcomeError       = "error"
)

// Metrics groups the collectors
type Metrics struct {
	// Conversions counts engine calls by domain and outcome
	Conversions *prometheus.CounterVec

	// RequestDuration observes HTTP handler latency by route and status code
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitconv",
			Name:      "conversions_total",
			Help:      "Number of conversions by domain and outcome.",
		}, []string{"domain", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "unitconv",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status code.",
			Buckets:   DefaultBuckets,
		}, []string{"route", "code"}),
	}

	for _, c := range []prometheus.Collector{m.Conversions, m.RequestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveConversion counts one conversion
func (m *Metrics) ObserveConversion(domain, outcome string) {
	m.Conversions.WithLabelValues(domain, outcome).Inc()
}
