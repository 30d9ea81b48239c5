// Package telemetry wraps go.uber.org/zap so the rest of the module
// never imports zap directly. It gives pokelinks a structured logger
// for search tracing without dragging zap's construction options
// (config, sinks, sampling) into every package that wants to log.
package telemetry

import "go.uber.org/zap"

// Logger is a thin façade over zap.SugaredLogger. The zero value, like
// a nil *Logger, silently discards everything; construct one with New
// for real output.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a Logger backed by a production zap configuration
// (JSON encoding, info level, sampling). Callers should defer
// Sync after construction.
func New() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{s: z.Sugar()}, nil
}

// Nop returns a Logger that discards everything, used as the default
// when a caller never supplies WithLogger.
func Nop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

// Sync flushes any buffered log entries. Safe to call on a Nop logger.
func (l *Logger) Sync() error {
	if l == nil || l.s == nil {
		return nil
	}
	return l.s.Sync()
}

// Debugw logs a debug-level message with structured key/value pairs.
func (l *Logger) Debugw(msg string, keysAndValues ...any) {
	if l == nil || l.s == nil {
		return
	}
	l.s.Debugw(msg, keysAndValues...)
}

// Infow logs an info-level message with structured key/value pairs.
func (l *Logger) Infow(msg string, keysAndValues ...any) {
	if l == nil || l.s == nil {
		return
	}
	l.s.Infow(msg, keysAndValues...)
}

// Warnw logs a warn-level message with structured key/value pairs.
func (l *Logger) Warnw(msg string, keysAndValues ...any) {
	if l == nil || l.s == nil {
		return
	}
	l.s.Warnw(msg, keysAndValues...)
}
