package surveysha

// SurveyScanner discovers survey directories below a root.
// Implementations must be safe for concurrent use by multiple goroutines.
type SurveyScanner interface {
	// Discover returns the surveys found in the immediate subdirectories of root,
	// sorted by name. Plain files directly inside root are ignored.
	Discover(root string) ([]Survey, error)
}
