package logger

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger implements the ports.Logger interface on top of zap, for
// hosts that want structured JSON logs instead of the plain std logger.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps an existing zap logger. Passing nil builds a
// production logger with zap's defaults.
func NewZapLogger(l *zap.Logger) (*ZapLogger, error) {
	if l == nil {
		var err error
		l, err = zap.NewProduction()
		if err != nil {
			return nil, err
		}
	}
	return &ZapLogger{logger: l}, nil
}

func zapFields(fields []map[string]interface{}) []zap.Field {
	if len(fields) == 0 || fields[0] == nil {
		return nil
	}
	out := make([]zap.Field, 0, len(fields[0]))
	for k, v := range fields[0] {
		out = append(out, zap.Any(k, v))
	}
	return out
}

// Debug logs a message at Debug level.
func (l *ZapLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {
	l.logger.Debug(msg, zapFields(fields)...)
}

// Info logs a message at Info level.
func (l *ZapLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {
	l.logger.Info(msg, zapFields(fields)...)
}

// Warn logs a message at Warning level.
func (l *ZapLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {
	l.logger.Warn(msg, zapFields(fields)...)
}

// Error logs an error message at Error level.
func (l *ZapLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
	l.logger.Error(msg, append(zapFields(fields), zap.Error(err))...)
}
