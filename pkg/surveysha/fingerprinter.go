package surveysha

import "context"

// Fingerprinter computes and persists fingerprints for every survey under a root.
type Fingerprinter interface {
	// Run discovers the surveys under root and writes a fingerprint file for each.
	// The returned error is reserved for run-level failures; per-survey failures
	// are recorded in the report.
	Run(ctx context.Context, root string) (Report, error)
}

// Verifier checks stored fingerprints against the current survey files without writing.
type Verifier interface {
	// Verify discovers the surveys under root and compares each stored fingerprint
	// with freshly computed digests.
	Verify(ctx context.Context, root string) (VerifyReport, error)
}
