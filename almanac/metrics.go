// Public domain.

package almanac

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/soniakeys/nova/riseset"
)

// Metrics bundles Prometheus metrics for almanac runs.  A nil *Metrics
// records nothing.
type Metrics struct {
	Results  *prometheus.CounterVec
	Skipped  prometheus.Counter
	Duration prometheus.Histogram
}

// NewMetrics registers almanac metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	results, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "almanac_results_total",
		Help: "Rise/set computations by outcome.",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}
	skipped, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "almanac_bodies_skipped_total",
		Help: "Bodies left out of a run because they could not be set up.",
	}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "almanac_solve_duration_seconds",
		Help:    "Time to compute the next rise, transit and set of one body.",
		Buckets: []float64{1e-5, 1e-4, 1e-3, .01, .1, 1},
	}))
	if err != nil {
		return nil, err
	}
	return &Metrics{Results: results, Skipped: skipped, Duration: duration}, nil
}

// register registers c, returning an already registered collector of the
// same type in its place.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
			return c, fmt.Errorf("collector already registered with incompatible type: %w", err)
		}
		return c, err
	}
	return c, nil
}

// outcome labels
const (
	outcomeNormal     = "normal"
	outcomeAbove      = "always_above"
	outcomeNeverRises = "never_rises"
	outcomeError      = "error"
)

func outcome(s riseset.Status, err error) string {
	switch {
	case err != nil:
		return outcomeError
	case s == riseset.AlwaysAbove:
		return outcomeAbove
	case s == riseset.NeverRises:
		return outcomeNeverRises
	}
	return outcomeNormal
}

func (m *Metrics) observe(s riseset.Status, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.Results.WithLabelValues(outcome(s, err)).Inc()
	m.Duration.Observe(d.Seconds())
}

func (m *Metrics) skip() {
	if m != nil {
		m.Skipped.Inc()
	}
}
