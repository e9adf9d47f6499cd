package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tradejournal/internal/ports"
)

// New builds the ports.Logger selected by the configured log format:
// "std" (or empty) for the plain leveled logger, "json" for zap-backed
// structured output.
func New(format string, level LogLevel) (ports.Logger, error) {
	switch format {
	case "", "std":
		return NewStdLogger(level), nil
	case "json":
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
		zl, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build zap logger: %w", err)
		}
		return NewZapLogger(zl)
	default:
		return nil, fmt.Errorf("unknown log format %q: %w", format, ports.ErrConfigurationError)
	}
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
