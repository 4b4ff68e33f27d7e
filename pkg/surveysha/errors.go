package surveysha

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := fingerprinter.Run(ctx, root)
//	if errors.Is(report.Err(), surveysha.ErrReadFailure) {
//	    // At least one survey file was missing or unreadable
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRootNotFound indicates the surveys root directory does not exist or is not a directory.
	ErrRootNotFound = errors.New("surveys root not found")

	// ErrReadFailure indicates a survey definition or score file is missing or unreadable.
	ErrReadFailure = errors.New("read failure")

	// ErrWriteFailure indicates a fingerprint file could not be written.
	ErrWriteFailure = errors.New("write failure")

	// ErrFingerprintFailed indicates one or more surveys could not be fingerprinted.
	ErrFingerprintFailed = errors.New("fingerprint failed")

	// ErrOutputCollision indicates a survey's fingerprint file has the same path as one of its sources.
	ErrOutputCollision = errors.New("fingerprint file would overwrite a source file")

	// ErrStaleFingerprint indicates a stored fingerprint no longer matches its sources.
	ErrStaleFingerprint = errors.New("stale fingerprint")
)

// usageErrorPatterns are the message prefixes cobra and pflag produce for
// command line misuse. They carry no sentinel, so the message is matched.
var usageErrorPatterns = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrRootNotFound):
		return ExitRootNotFound
	case errors.Is(err, ErrStaleFingerprint):
		return ExitStaleFingerprint
	case errors.Is(err, ErrFingerprintFailed),
		errors.Is(err, ErrReadFailure),
		errors.Is(err, ErrWriteFailure):
		return ExitFingerprintFailed
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
