package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/surveykit/surveysha/internal/checksum"
	"github.com/surveykit/surveysha/internal/files/filesystem"
	"github.com/surveykit/surveysha/pkg/surveysha"
)

// VerifyService implements the Verifier interface. It never writes.
type VerifyService struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	scanner    surveysha.SurveyScanner
	logger     surveysha.Logger
}

// NewVerifyService creates a VerifyService with all dependencies injected.
// Panics on nil dependencies.
func NewVerifyService(
	calculator checksum.Calculator,
	fsProvider filesystem.FileSystemProvider,
	scanner surveysha.SurveyScanner,
	logger surveysha.Logger,
) *VerifyService {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &VerifyService{
		calculator: calculator,
		fsProvider: fsProvider,
		scanner:    scanner,
		logger:     logger,
	}
}

// Verify compares the stored fingerprint of every survey under root with
// digests computed from the current files. Every survey is checked; problems
// with individual surveys are reported in the result rather than returned.
func (s *VerifyService) Verify(ctx context.Context, root string) (surveysha.VerifyReport, error) {
	report := surveysha.VerifyReport{
		Root:      root,
		Algorithm: s.calculator.Algorithm(),
	}

	surveys, err := s.scanner.Discover(root)
	if err != nil {
		return report, err
	}
	s.logger.Verbose("discovered surveys", "count", len(surveys), "algorithm", report.Algorithm)

	for _, survey := range surveys {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("verification interrupted after %d of %d surveys: %w",
				len(report.Results), len(surveys), err)
		}

		result := s.VerifySurvey(survey)
		report.Results = append(report.Results, result)

		switch result.Status {
		case surveysha.VerifyOK:
			s.logger.Info("fingerprint up to date", "survey", survey.Name)
		case surveysha.VerifyStale:
			s.logger.Error("fingerprint stale", "survey", survey.Name, "changed", result.Changed)
		default:
			s.logger.Error("fingerprint unverifiable", "survey", survey.Name, "status", string(result.Status), "error", result.Err)
		}
	}

	s.logger.Info("verify run complete",
		"surveys", len(report.Results),
		"ok", report.Count(surveysha.VerifyOK),
		"stale", report.Count(surveysha.VerifyStale),
		"missing", report.Count(surveysha.VerifyMissing),
		"invalid", report.Count(surveysha.VerifyInvalid),
		"errors", report.Count(surveysha.VerifyError),
	)
	return report, nil
}

// VerifySurvey checks a single survey.
func (s *VerifyService) VerifySurvey(survey surveysha.Survey) surveysha.VerifyResult {
	result := surveysha.VerifyResult{Survey: survey}

	if survey.OutputCollides() {
		result.Status = surveysha.VerifyInvalid
		result.Err = fmt.Errorf("survey %s: %s: %w", survey.Name, survey.OutputPath, surveysha.ErrOutputCollision)
		return result
	}

	current, err := computeFingerprint(s.fsProvider, s.calculator, survey)
	if err != nil {
		result.Status = surveysha.VerifyError
		result.Err = err
		return result
	}
	result.Current = current

	data, err := s.fsProvider.ReadFile(survey.OutputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = surveysha.VerifyMissing
			result.Err = err
			return result
		}
		result.Status = surveysha.VerifyError
		result.Err = fmt.Errorf("survey %s: %w: %w", survey.Name, surveysha.ErrReadFailure, err)
		return result
	}

	stored, err := DecodeFingerprint(data)
	if err != nil {
		result.Status = surveysha.VerifyInvalid
		result.Err = err
		return result
	}
	result.Stored = stored

	if changed := stored.Changed(current); len(changed) > 0 {
		result.Status = surveysha.VerifyStale
		result.Changed = changed
		return result
	}

	result.Status = surveysha.VerifyOK
	return result
}

// Verify VerifyService implements the interface at compile time
var _ surveysha.Verifier = (*VerifyService)(nil)
