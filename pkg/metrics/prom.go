package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder records scheduling runs in Prometheus metrics
type PromRecorder struct {
	runs      prometheus.Counter
	sessions  *prometheus.CounterVec
	conflicts *prometheus.CounterVec
	score     prometheus.Gauge
	batches   prometheus.Gauge
	required  prometheus.Gauge
	duration  prometheus.Histogram
}

// NewPromRecorder registers the run metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_runs_total",
		Help: "Total number of scheduling runs",
	}))
	if err != nil {
		return nil, err
	}
	sessions, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_sessions_total",
		Help: "Sessions handled by the scheduling engine, by outcome",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}
	conflicts, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_conflicts_observed_total",
		Help: "Hard-rule violations observed while searching for placements",
	}, []string{"type"}))
	if err != nil {
		return nil, err
	}
	score, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_last_score",
		Help: "Score of the most recent generated timetable",
	}))
	if err != nil {
		return nil, err
	}
	batches, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_batches",
		Help: "Student batches in the catalog of the most recent run",
	}))
	if err != nil {
		return nil, err
	}
	required, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timetable_required_sessions",
		Help: "Weekly sessions owed by every batch in the most recent run",
	}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_run_duration_seconds",
		Help:    "Wall-clock duration of a scheduling run",
		Buckets: prometheus.DefBuckets,
	}))
	if err != nil {
		return nil, err
	}

	return &PromRecorder{
		runs:      runs,
		sessions:  sessions,
		conflicts: conflicts,
		score:     score,
		batches:   batches,
		required:  required,
		duration:  duration,
	}, nil
}

// RecordRun updates every run metric from the result
func (r *PromRecorder) RecordRun(result RunResult) error {
	r.runs.Inc()
	r.sessions.WithLabelValues("placed").Add(float64(result.Placed))
	r.sessions.WithLabelValues("unscheduled").Add(float64(result.Unscheduled))
	for conflictType, count := range result.Conflicts {
		r.conflicts.WithLabelValues(conflictType).Add(float64(count))
	}
	r.score.Set(float64(result.Score))
	r.batches.Set(float64(result.Batches))
	r.required.Set(float64(result.RequiredSessions))
	r.duration.Observe(result.Duration.Seconds())
	return nil
}

// register returns the already registered collector when an identical one exists
func register[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return collector, nil
}
