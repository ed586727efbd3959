package neogo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with neogo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDesignation adds a designation field to the logger.
func (l *Logger) WithDesignation(designation string) *Logger {
	return &Logger{
		Logger: l.Logger.With("designation", designation),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogLink logs the outcome of the linking pass.
func (l *Logger) LogLink(bodies, approaches int, err error) {
	if err != nil {
		l.Error("link failed",
			"bodies", bodies,
			"approaches", approaches,
			"error", err,
		)
	} else {
		l.Debug("link completed",
			"bodies", bodies,
			"approaches", approaches,
		)
	}
}

// LogLookup logs a lookup operation.
func (l *Logger) LogLookup(kind, key string, found bool) {
	l.Debug("lookup completed",
		"kind", kind,
		"key", key,
		"found", found,
	)
}

// LogQuery logs a completed (or abandoned) query traversal.
func (l *Logger) LogQuery(filters, yielded int, duration time.Duration) {
	l.Debug("query completed",
		"filters", filters,
		"yielded", yielded,
		"duration", duration,
	)
}
