package ffind

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with ffind-specific context.
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

// WithPattern adds a pattern field to the logger.
func (l *Logger) WithPattern(pattern string) *Logger {
	return &Logger{
		Logger: l.Logger.With("pattern", pattern),
	}
}

// WithRoots adds a roots field to the logger.
func (l *Logger) WithRoots(roots []string) *Logger {
	return &Logger{
		Logger: l.Logger.With("roots", roots),
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, pattern string, matched int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"pattern", pattern,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"pattern", pattern,
			"matched", matched,
			"duration", duration,
		)
	}
}

// LogTraversalError logs a soft, per-entry traversal error.
func (l *Logger) LogTraversalError(ctx context.Context, err error) {
	l.DebugContext(ctx, "entry skipped",
		"error", err,
	)
}
