package metrics

import "time"

// RunResult summarizes a single scheduling run
type RunResult struct {
	Batches          int
	RequiredSessions int
	Placed           int
	Unscheduled      int
	Conflicts        map[string]int // Observed conflicts per conflict type
	Score            int
	Duration         time.Duration
}

// Recorder records scheduling runs for observability purposes
type Recorder interface {
	RecordRun(result RunResult) error
}

// NopRecorder discards every run
type NopRecorder struct{}

func (NopRecorder) RecordRun(RunResult) error { return nil }
