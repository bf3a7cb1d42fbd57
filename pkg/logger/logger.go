package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/limaJavier/timetable-engine/pkg/config"
)

const name = "timetabler"

// New builds the named process logger for the environment. Production gets zap's sampled production preset, any
// other environment the development one. Levels zap cannot parse fall back to info
func New(env string, logConfig config.LogConfig) (*zap.Logger, error) {
	zapConfig := zap.NewDevelopmentConfig()
	if env == config.EnvProduction {
		zapConfig = zap.NewProductionConfig()
	}

	zapConfig.Encoding = "json"
	if logConfig.Format == "console" {
		zapConfig.Encoding = "console"
	}
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if logConfig.Level != "" {
		level, err := zapcore.ParseLevel(logConfig.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		zapConfig.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named(name), nil
}
