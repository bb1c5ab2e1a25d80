package logger

import (
	"go.uber.org/zap"
)

type LoggerConfig struct {
	Debug bool
}

// NewLogger builds the process logger. Debug switches to the development
// config with DebugLevel enabled.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	if cfg != nil && cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewNopLogger returns a logger that discards everything, for tests that do
// not care about output
func NewNopLogger() *zap.Logger {
	return zap.NewNop()
}
