package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	envPrefix = "TIMETABLER"
)

type Config struct {
	Env          string `validate:"oneof=development production"`
	Log          LogConfig
	Optimization model.OptimizationSettings
	Export       ExportConfig
	Metrics      MetricsConfig
}

type LogConfig struct {
	Level  string
	Format string `validate:"oneof=json console"`
}

// ExportConfig sets the defaults of the export command
type ExportConfig struct {
	Format string `validate:"oneof=csv pdf"`
	Title  string
}

// MetricsConfig points to the node-exporter textfile a generate run writes its metrics to. An empty path disables it
type MetricsConfig struct {
	Textfile string
}

// Load reads the optional configuration file (YAML or JSON) at path and applies TIMETABLER_* environment
// overrides on top, e.g. TIMETABLER_OPTIMIZATION_MAXITERATIONS or TIMETABLER_LOG_LEVEL
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("env")

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	cfg.Optimization = model.OptimizationSettings{
		MaxIterations: v.GetInt("optimization.maxIterations"),
		TimeLimit:     v.GetInt("optimization.timeLimit"),
		PriorityWeights: model.PriorityWeights{
			FacultyLoad:     v.GetFloat64("optimization.priorityWeights.facultyLoad"),
			RoomUtilization: v.GetFloat64("optimization.priorityWeights.roomUtilization"),
			StudentSchedule: v.GetFloat64("optimization.priorityWeights.studentSchedule"),
			Constraints:     v.GetFloat64("optimization.priorityWeights.constraints"),
		},
	}

	cfg.Export = ExportConfig{
		Format: strings.ToLower(v.GetString("export.format")),
		Title:  v.GetString("export.title"),
	}

	cfg.Metrics = MetricsConfig{
		Textfile: v.GetString("metrics.textfile"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", EnvDevelopment)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	defaults := model.DefaultOptimizationSettings()
	v.SetDefault("optimization.maxIterations", defaults.MaxIterations)
	v.SetDefault("optimization.timeLimit", defaults.TimeLimit)
	v.SetDefault("optimization.priorityWeights.facultyLoad", defaults.PriorityWeights.FacultyLoad)
	v.SetDefault("optimization.priorityWeights.roomUtilization", defaults.PriorityWeights.RoomUtilization)
	v.SetDefault("optimization.priorityWeights.studentSchedule", defaults.PriorityWeights.StudentSchedule)
	v.SetDefault("optimization.priorityWeights.constraints", defaults.PriorityWeights.Constraints)

	v.SetDefault("export.format", "pdf")
	v.SetDefault("export.title", "")

	v.SetDefault("metrics.textfile", "")
}
