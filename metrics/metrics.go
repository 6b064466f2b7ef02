// Package metrics records solver runs as Prometheus metrics.
//
// Every Recorder owns a private registry, so several recorders (one per test,
// one per CLI invocation) never collide on metric names.
package metrics

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/roundplan/schedule"
)

// Solve outcomes used as the "outcome" label.
const (
	OutcomeFeasible   = "feasible"
	OutcomeInfeasible = "infeasible"
	OutcomeError      = "error"
)

// Recorder aggregates solver statistics. It is safe for concurrent use.
type Recorder struct {
	reg        *prometheus.Registry
	solves     *prometheus.CounterVec
	trials     prometheus.Counter
	backtracks prometheus.Counter
	duration   *prometheus.HistogramVec
}

// NewRecorder registers the solver metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "roundplan_solves_total",
			Help: "Total solver runs by outcome",
		}, []string{"outcome"}),
		trials: f.NewCounter(prometheus.CounterOpts{
			Name: "roundplan_trials_total",
			Help: "Total (fixture, round) pairs tested",
		}),
		backtracks: f.NewCounter(prometheus.CounterOpts{
			Name: "roundplan_backtracks_total",
			Help: "Total undone placements",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roundplan_solve_duration_seconds",
			Help:    "Solver wall time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"outcome"}),
	}
}

// Outcome maps a solver error onto an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFeasible
	case errors.Is(err, schedule.ErrInfeasible):
		return OutcomeInfeasible
	default:
		return OutcomeError
	}
}

// Observe records one solver run.
func (r *Recorder) Observe(outcome string, st schedule.Stats) {
	r.solves.WithLabelValues(outcome).Inc()
	r.trials.Add(float64(st.Trials))
	r.backtracks.Add(float64(st.Backtracks))
	r.duration.WithLabelValues(outcome).Observe(st.Duration.Seconds())
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteText dumps every metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	mfs, err := r.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
