package scanner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/surveykit/surveysha/internal/files/filesystem"
	"github.com/surveykit/surveysha/pkg/surveysha"
)

// Scanner discovers survey directories below a root.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	layout     surveysha.Layout
	pattern    string
}

// NewScanner creates a scanner for the given layout and directory pattern.
// Uses OS filesystem by default.
func NewScanner(layout surveysha.Layout, pattern string) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), layout, pattern)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// An empty pattern selects every directory.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, layout surveysha.Layout, pattern string) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if pattern == "" {
		pattern = surveysha.DefaultPattern
	}
	return &Scanner{
		fsProvider: fsProvider,
		layout:     layout,
		pattern:    pattern,
	}
}

// ValidatePattern reports whether pattern is a well-formed directory glob.
func ValidatePattern(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid survey pattern %q: %w", pattern, surveysha.ErrInvalidConfig)
	}
	if strings.Contains(pattern, "/") {
		return fmt.Errorf("survey pattern %q must match a single directory name: %w", pattern, surveysha.ErrInvalidConfig)
	}
	return nil
}

// Discover lists the immediate subdirectories of root and returns one survey per
// directory whose name matches the scanner's pattern, sorted by name.
// Plain files and hidden entries (leading ".") are ignored.
//
// Returns an error wrapping surveysha.ErrRootNotFound when root is missing or is
// not a directory.
func (s *Scanner) Discover(root string) ([]surveysha.Survey, error) {
	if err := ValidatePattern(s.pattern); err != nil {
		return nil, err
	}

	info, err := s.fsProvider.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", root, surveysha.ErrRootNotFound, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", root, surveysha.ErrRootNotFound)
	}

	entries, err := s.fsProvider.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys in %s: %w", root, err)
	}

	var surveys []surveysha.Survey
	for _, entry := range entries {
		name := entry.Name()

		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		matched, err := doublestar.Match(s.pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid survey pattern %q: %w: %w", s.pattern, surveysha.ErrInvalidConfig, err)
		}
		if !matched {
			continue
		}

		surveys = append(surveys, s.layout.SurveyAt(root, name))
	}

	sort.Slice(surveys, func(i, j int) bool {
		return surveys[i].Name < surveys[j].Name
	})

	return surveys, nil
}

// Verify Scanner implements the interface at compile time
var _ surveysha.SurveyScanner = (*Scanner)(nil)
