package allocmadvise

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with allocmadvise-specific context.
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

// WithSize adds a num_bytes field to the logger.
func (l *Logger) WithSize(numBytes int) *Logger {
	return &Logger{
		Logger: l.Logger.With("num_bytes", numBytes),
	}
}

// LogAllocate logs an allocation.
func (l *Logger) LogAllocate(ctx context.Context, numBytes int, flags Flags, err error) {
	if err != nil {
		l.WarnContext(ctx, "allocation failed",
			"num_bytes", numBytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "allocation completed",
			"num_bytes", numBytes,
			"flags", flags.String(),
		)
	}
}

// LogRelease logs a release.
func (l *Logger) LogRelease(ctx context.Context, numBytes int, flags Flags) {
	l.DebugContext(ctx, "release completed",
		"num_bytes", numBytes,
		"flags", flags.String(),
	)
}

// LogAdvise logs a rejected kernel hint. Hints are advisory, so this never
// escalates beyond debug level.
func (l *Logger) LogAdvise(ctx context.Context, advice string, numBytes int, err error) {
	if err == nil {
		return
	}
	l.DebugContext(ctx, "madvise rejected",
		"advice", advice,
		"num_bytes", numBytes,
		"error", err,
	)
}
