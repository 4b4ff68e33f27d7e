// Package logging provides concrete implementations of the surveysha.Logger interface.
//
// Available implementations:
//   - StructuredLogger: Writes JSON log lines through log/slog
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
