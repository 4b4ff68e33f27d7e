package checksum

import (
	"crypto/sha1" //nolint:gosec // fingerprints detect content changes, not tampering
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/surveykit/surveysha/pkg/surveysha"
)

// Calculator is an interface for computing file checksums.
// This abstraction allows for different digest algorithms.
type Calculator interface {
	// Algorithm returns the canonical algorithm name, e.g. "sha1".
	Algorithm() string

	// Calculate computes the lowercase hex digest of the raw, unmodified content.
	Calculate(content []byte) string
}

// SHA1 implements checksum calculation using SHA-1.
// SHA1 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA1 struct{}

// Algorithm implements Calculator.
func (SHA1) Algorithm() string { return "sha1" }

// Calculate computes SHA-1 of raw content.
func (SHA1) Calculate(content []byte) string {
	hash := sha1.Sum(content) //nolint:gosec
	return hex.EncodeToString(hash[:])
}

// SHA256 implements checksum calculation using SHA-256.
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// Algorithm implements Calculator.
func (SHA256) Algorithm() string { return "sha256" }

// Calculate computes SHA-256 of raw content.
func (SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

var calculators = map[string]Calculator{
	"sha1":   SHA1{},
	"sha256": SHA256{},
}

// New returns the default calculator (SHA-1).
// Returns by value to avoid heap allocation (SHA1 is a zero-size type).
func New() SHA1 {
	return SHA1{}
}

// ForAlgorithm returns the calculator registered for name.
// Names are matched case-insensitively; "sha-1" and "sha-256" are accepted as aliases.
func ForAlgorithm(name string) (Calculator, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	if c, ok := calculators[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unsupported algorithm %q (supported: %s): %w",
		name, strings.Join(Algorithms(), ", "), surveysha.ErrInvalidConfig)
}

// Algorithms returns the supported algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(calculators))
	for name := range calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
