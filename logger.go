package linesimp

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with linesimp-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithLine adds the length of the line being processed to the logger.
func (l *Logger) WithLine(length int) *Logger {
	return &Logger{
		Logger: l.Logger.With("line_length", length),
	}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NoopLogger())
}

// SetDefaultLogger replaces the package-wide logger used for debug events
// such as early decimation stops. Passing nil restores the noop logger.
// Safe for concurrent use.
func SetDefaultLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	defaultLogger.Store(l)
}

// DefaultLogger returns the package-wide logger. The default discards all
// output.
func DefaultLogger() *Logger {
	return defaultLogger.Load()
}
