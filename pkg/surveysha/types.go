package surveysha

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Layout describes how the files of a survey are named inside its directory.
// For a survey named N the definition file is N+DefinitionSuffix, the scoring
// file is N+ScoreSuffix and the fingerprint is written to OutputFile.
type Layout struct {
	DefinitionSuffix string
	ScoreSuffix      string
	OutputFile       string
}

// DefaultLayout returns the layout used by survey repositories:
// N.json, N.score.js and sha.json.
func DefaultLayout() Layout {
	return Layout{
		DefinitionSuffix: DefaultDefinitionSuffix,
		ScoreSuffix:      DefaultScoreSuffix,
		OutputFile:       DefaultOutputFile,
	}
}

// Validate checks that every file name in the layout is usable.
// Whether the output file collides with a source depends on the survey name,
// so that check is made per survey by Survey.OutputCollides.
func (l Layout) Validate() error {
	var errs []error

	if l.DefinitionSuffix == "" {
		errs = append(errs, fmt.Errorf("definition suffix is required: %w", ErrInvalidConfig))
	}
	if l.ScoreSuffix == "" {
		errs = append(errs, fmt.Errorf("score suffix is required: %w", ErrInvalidConfig))
	}
	if l.DefinitionSuffix != "" && l.DefinitionSuffix == l.ScoreSuffix {
		errs = append(errs, fmt.Errorf("definition and score suffix must differ: %w", ErrInvalidConfig))
	}
	if l.OutputFile == "" {
		errs = append(errs, fmt.Errorf("output file is required: %w", ErrInvalidConfig))
	} else if filepath.Base(l.OutputFile) != l.OutputFile {
		errs = append(errs, fmt.Errorf("output file %q must be a plain file name: %w", l.OutputFile, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// SurveyAt returns the survey named name located in root.
func (l Layout) SurveyAt(root, name string) Survey {
	dir := filepath.Join(root, name)
	return Survey{
		Name:           name,
		Dir:            dir,
		DefinitionPath: filepath.Join(dir, name+l.DefinitionSuffix),
		ScorePath:      filepath.Join(dir, name+l.ScoreSuffix),
		OutputPath:     filepath.Join(dir, l.OutputFile),
	}
}

// Survey is a named survey directory and the paths of the files it holds.
type Survey struct {
	// Name is the survey name, equal to the directory name
	Name string

	// Dir is the survey directory
	Dir string

	// DefinitionPath is the survey definition file (N.json)
	DefinitionPath string

	// ScorePath is the scoring logic file (N.score.js)
	ScorePath string

	// OutputPath is the fingerprint file (sha.json)
	OutputPath string
}

// OutputCollides reports whether writing the fingerprint would replace one of
// the survey's own source files, as for a survey named "sha" with the default layout.
func (s Survey) OutputCollides() bool {
	return s.OutputPath == s.DefinitionPath || s.OutputPath == s.ScorePath
}

// Fingerprint is the record persisted next to a survey.
// Each field holds the lowercase hex digest of the raw bytes of the matching file.
// Field order determines the serialized key order.
type Fingerprint struct {
	Survey string `json:"survey"`
	Score  string `json:"score"`
}

// Changed returns the names of the fields whose digests differ between f and other,
// using the serialized key names.
func (f Fingerprint) Changed(other Fingerprint) []string {
	var changed []string
	if f.Survey != other.Survey {
		changed = append(changed, "survey")
	}
	if f.Score != other.Score {
		changed = append(changed, "score")
	}
	return changed
}

// Result is the outcome of fingerprinting a single survey.
type Result struct {
	Survey      Survey
	Fingerprint Fingerprint
	Err         error
}

// OK reports whether the fingerprint was computed and written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report summarizes a fingerprinting run.
type Report struct {
	Root      string
	Algorithm string
	Results   []Result
}

// Succeeded returns the number of surveys fingerprinted successfully.
func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of surveys that could not be fingerprinted.
func (r Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// Err joins the errors of every failed survey. It returns nil when all succeeded.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

// VerifyStatus classifies a stored fingerprint against the current survey files.
type VerifyStatus string

const (
	VerifyOK      VerifyStatus = "ok"
	VerifyStale   VerifyStatus = "stale"
	VerifyMissing VerifyStatus = "missing"
	VerifyInvalid VerifyStatus = "invalid"
	VerifyError   VerifyStatus = "error"
)

// VerifyResult is the outcome of verifying a single survey.
type VerifyResult struct {
	Survey  Survey
	Status  VerifyStatus
	Stored  Fingerprint
	Current Fingerprint

	// Changed lists the fingerprint fields that no longer match (stale only)
	Changed []string

	// Err holds the underlying failure for missing, invalid and error results
	Err error
}

// VerifyReport summarizes a verification run.
type VerifyReport struct {
	Root      string
	Algorithm string
	Results   []VerifyResult
}

// Count returns how many results have the given status.
func (r VerifyReport) Count(status VerifyStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Err returns nil when every fingerprint is up to date. Otherwise it joins one
// error per survey. Stale, missing and invalid fingerprints wrap ErrStaleFingerprint;
// unreadable sources wrap the underlying read error.
func (r VerifyReport) Err() error {
	var errs []error
	for _, res := range r.Results {
		switch res.Status {
		case VerifyOK:
			continue
		case VerifyStale:
			errs = append(errs, fmt.Errorf("survey %s: %v changed: %w", res.Survey.Name, res.Changed, ErrStaleFingerprint))
		case VerifyMissing, VerifyInvalid:
			errs = append(errs, fmt.Errorf("survey %s: fingerprint %s: %w", res.Survey.Name, res.Status, ErrStaleFingerprint))
		default:
			errs = append(errs, fmt.Errorf("survey %s: %w", res.Survey.Name, res.Err))
		}
	}
	return errors.Join(errs...)
}
