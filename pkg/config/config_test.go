package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, LogConfig{Level: "info", Format: "console"}, cfg.Log)
	assert.Equal(t, model.DefaultOptimizationSettings(), cfg.Optimization)
	assert.Equal(t, "pdf", cfg.Export.Format)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "timetabler.yaml", `
env: production
log:
  level: debug
  format: json
optimization:
  maxIterations: 250
  priorityWeights:
    facultyLoad: 0.5
export:
  format: CSV
  title: Semester 1
metrics:
  textfile: /var/lib/node_exporter/timetabler.prom
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, 250, cfg.Optimization.MaxIterations)
	assert.Equal(t, 30, cfg.Optimization.TimeLimit)
	assert.Equal(t, 0.5, cfg.Optimization.PriorityWeights.FacultyLoad)
	assert.Equal(t, 0.2, cfg.Optimization.PriorityWeights.RoomUtilization)
	assert.Equal(t, ExportConfig{Format: "csv", Title: "Semester 1"}, cfg.Export)
	assert.Equal(t, "/var/lib/node_exporter/timetabler.prom", cfg.Metrics.Textfile)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "timetabler.json", `{"optimization": {"maxIterations": 250}}`)
	t.Setenv("TIMETABLER_OPTIMIZATION_MAXITERATIONS", "10")
	t.Setenv("TIMETABLER_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Optimization.MaxIterations)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("Unknown log format", func(t *testing.T) {
		_, err := Load(writeConfig(t, "timetabler.yaml", "log:\n  format: xml\n"))
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("Weight out of range", func(t *testing.T) {
		_, err := Load(writeConfig(t, "timetabler.yaml", "optimization:\n  priorityWeights:\n    constraints: 2\n"))
		assert.ErrorContains(t, err, "invalid config")
	})
}
