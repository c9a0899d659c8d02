// Package metrics exposes Prometheus instrumentation for precomputation and
// term-set aggregation. *Metrics satisfies lowerbound.Observer and
// termset.Recorder, so it can be passed straight to WithObserver and
// WithRecorder.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gosemsim"

// Result label values of ComparisonsTotal.
const (
	ResultDefined = "defined"
	ResultAbsent  = "absent"
)

// Metrics contains all gosemsim metrics.
type Metrics struct {
	// Precompute metrics
	PrecomputeDuration prometheus.Histogram
	PrecomputeTerms    prometheus.Gauge

	// Aggregation metrics
	ComparisonsTotal    *prometheus.CounterVec
	AggregationDuration *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		PrecomputeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "precompute_duration_seconds",
				Help:      "Lower bound precomputation duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
		),

		PrecomputeTerms: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "precompute_terms",
				Help:      "Number of terms covered by the last precomputation",
			},
		),

		ComparisonsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "comparisons_total",
				Help:      "Total number of pairwise term comparisons by result (defined, absent)",
			},
			[]string{"result"},
		),

		AggregationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "aggregation_duration_seconds",
				Help:      "Term-set aggregation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.PrecomputeDuration,
		m.PrecomputeTerms,
		m.ComparisonsTotal,
		m.AggregationDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return m, nil
}

// ObservePrecompute records one lower bound precomputation.
func (m *Metrics) ObservePrecompute(_ string, terms int, elapsed time.Duration) {
	m.PrecomputeDuration.Observe(elapsed.Seconds())
	m.PrecomputeTerms.Set(float64(terms))
}

// ObserveComparison counts one pairwise comparison.
func (m *Metrics) ObserveComparison(defined bool) {
	result := ResultAbsent
	if defined {
		result = ResultDefined
	}
	m.ComparisonsTotal.WithLabelValues(result).Inc()
}

// ObserveAggregation records one term-set aggregation.
func (m *Metrics) ObserveAggregation(strategy string, elapsed time.Duration) {
	m.AggregationDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}
