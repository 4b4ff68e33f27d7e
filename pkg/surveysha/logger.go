package surveysha

// Logger provides a pluggable structured logging interface for surveysha operations.
// Arguments after msg are alternating key/value pairs, as accepted by log/slog.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(msg string, args ...any)

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(msg string, args ...any)

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(msg string, args ...any)
}
