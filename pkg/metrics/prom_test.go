package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromRecorderRecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := NewPromRecorder(reg)
	require.NoError(t, err)

	err = recorder.RecordRun(RunResult{
		Batches:          1,
		RequiredSessions: 4,
		Placed:           3,
		Unscheduled:      1,
		Conflicts:        map[string]int{"Faculty Clash": 2, "Constraint Violation": 1},
		Score:            75,
		Duration:         20 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.runs))
	assert.Equal(t, 3.0, testutil.ToFloat64(recorder.sessions.WithLabelValues("placed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.sessions.WithLabelValues("unscheduled")))
	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.conflicts.WithLabelValues("Faculty Clash")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.conflicts.WithLabelValues("Constraint Violation")))
	assert.Equal(t, 75.0, testutil.ToFloat64(recorder.score))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.batches))
	assert.Equal(t, 4.0, testutil.ToFloat64(recorder.required))
	assert.Equal(t, 1, testutil.CollectAndCount(recorder.duration))
}

func TestPromRecorderReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorder(reg)
	require.NoError(t, err)
	second, err := NewPromRecorder(reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordRun(RunResult{Batches: 1, RequiredSessions: 2, Placed: 1, Score: 50}))
	require.NoError(t, second.RecordRun(RunResult{Batches: 2, RequiredSessions: 2, Placed: 2, Score: 100}))

	assert.Equal(t, 2.0, testutil.ToFloat64(first.runs))
	assert.Equal(t, 3.0, testutil.ToFloat64(second.sessions.WithLabelValues("placed")))
	assert.Equal(t, 100.0, testutil.ToFloat64(first.score))
	assert.Equal(t, 2.0, testutil.ToFloat64(first.batches))
	assert.Equal(t, 2.0, testutil.ToFloat64(first.required))
}

func TestNopRecorder(t *testing.T) {
	assert.NoError(t, NopRecorder{}.RecordRun(RunResult{}))
}
