package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// StructuredLogger writes one JSON object per log entry.
// Safe for concurrent use by multiple goroutines.
type StructuredLogger struct {
	logger *slog.Logger
}

// NewStructuredLogger creates a StructuredLogger writing to w.
// If verbose is true, Verbose() calls are emitted at debug level.
// If verbose is false, Verbose() calls are no-ops.
func NewStructuredLogger(w io.Writer, verbose bool) *StructuredLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &StructuredLogger{logger: slog.New(handler)}
}

// With returns a logger that adds the given key/value pairs to every entry.
func (l *StructuredLogger) With(args ...any) *StructuredLogger {
	return &StructuredLogger{logger: l.logger.With(args...)}
}

// ForRun returns a logger scoped to a single run over root.
// Every entry carries a fresh run_id so interleaved runs can be told apart.
func (l *StructuredLogger) ForRun(root string) *StructuredLogger {
	return l.With("run_id", uuid.NewString(), "root", root)
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *StructuredLogger) Verbose(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs informational messages about normal operations.
func (l *StructuredLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Error logs error messages.
func (l *StructuredLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
