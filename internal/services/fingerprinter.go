package services

import (
	"context"
	"fmt"

	"github.com/surveykit/surveysha/internal/checksum"
	"github.com/surveykit/surveysha/internal/files/filesystem"
	"github.com/surveykit/surveysha/pkg/surveysha"
)

// FingerprintService implements the Fingerprinter interface.
// Surveys are processed one at a time: each survey is read, digested and
// written before the next one starts.
// Thread-Safety: safe for concurrent Run() calls as long as the injected
// dependencies are; concurrent runs over the same root race on the output files.
type FingerprintService struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	scanner    surveysha.SurveyScanner
	logger     surveysha.Logger
	failFast   bool
}

// Option configures a FingerprintService.
type Option func(*FingerprintService)

// WithFailFast stops a run at the first survey that cannot be fingerprinted.
// Surveys after it are neither read nor written.
func WithFailFast(failFast bool) Option {
	return func(s *FingerprintService) {
		s.failFast = failFast
	}
}

// NewFingerprintService creates a FingerprintService with all dependencies injected.
// Panics on nil dependencies.
func NewFingerprintService(
	calculator checksum.Calculator,
	fsProvider filesystem.FileSystemProvider,
	scanner surveysha.SurveyScanner,
	logger surveysha.Logger,
	opts ...Option,
) *FingerprintService {
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

	svc := &FingerprintService{
		calculator: calculator,
		fsProvider: fsProvider,
		scanner:    scanner,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Run discovers the surveys under root and writes a fingerprint file for each.
//
// A survey whose files cannot be read, or whose fingerprint cannot be written,
// is recorded as failed in the report and logged; the remaining surveys are
// still processed unless fail-fast is enabled.
//
// The returned error is reserved for failures of the run itself: a missing
// root, an invalid pattern or a cancelled context. The report is valid in
// every case and holds the surveys processed so far.
func (s *FingerprintService) Run(ctx context.Context, root string) (surveysha.Report, error) {
	report := surveysha.Report{
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
			return report, fmt.Errorf("fingerprinting interrupted after %d of %d surveys: %w",
				len(report.Results), len(surveys), err)
		}

		fp, err := s.FingerprintSurvey(survey)
		report.Results = append(report.Results, surveysha.Result{
			Survey:      survey,
			Fingerprint: fp,
			Err:         err,
		})

		if err != nil {
			s.logger.Error("fingerprint failed", "survey", survey.Name, "error", err)
			if s.failFast {
				s.logger.Verbose("stopping at first failure",
					"processed", len(report.Results), "skipped", len(surveys)-len(report.Results))
				break
			}
			continue
		}

		s.logger.Info("fingerprint written",
			"survey", survey.Name,
			"output", survey.OutputPath,
			"survey_digest", fp.Survey,
			"score_digest", fp.Score,
		)
	}

	s.logger.Info("fingerprint run complete",
		"surveys", len(report.Results),
		"succeeded", report.Succeeded(),
		"failed", report.Failed(),
	)
	return report, nil
}

// FingerprintSurvey computes the fingerprint of one survey and writes it to the
// survey's output file, replacing any previous content. A survey whose output
// path is one of its source files fails without reading or writing.
func (s *FingerprintService) FingerprintSurvey(survey surveysha.Survey) (surveysha.Fingerprint, error) {
	if survey.OutputCollides() {
		return surveysha.Fingerprint{}, fmt.Errorf("survey %s: %w: %s: %w",
			survey.Name, surveysha.ErrWriteFailure, survey.OutputPath, surveysha.ErrOutputCollision)
	}

	fp, err := s.Compute(survey)
	if err != nil {
		return surveysha.Fingerprint{}, err
	}

	data, err := EncodeFingerprint(fp)
	if err != nil {
		return fp, fmt.Errorf("survey %s: %w: %w", survey.Name, surveysha.ErrWriteFailure, err)
	}

	if err := s.fsProvider.WriteFile(survey.OutputPath, data, surveysha.OutputFileMode); err != nil {
		return fp, fmt.Errorf("survey %s: %w: %w", survey.Name, surveysha.ErrWriteFailure, err)
	}
	return fp, nil
}

// Compute reads both survey files and digests them without writing anything.
func (s *FingerprintService) Compute(survey surveysha.Survey) (surveysha.Fingerprint, error) {
	return computeFingerprint(s.fsProvider, s.calculator, survey)
}

func computeFingerprint(
	fsProvider filesystem.FileSystemProvider,
	calculator checksum.Calculator,
	survey surveysha.Survey,
) (surveysha.Fingerprint, error) {
	definition, err := fsProvider.ReadFile(survey.DefinitionPath)
	if err != nil {
		return surveysha.Fingerprint{}, fmt.Errorf("survey %s: %w: %w", survey.Name, surveysha.ErrReadFailure, err)
	}

	score, err := fsProvider.ReadFile(survey.ScorePath)
	if err != nil {
		return surveysha.Fingerprint{}, fmt.Errorf("survey %s: %w: %w", survey.Name, surveysha.ErrReadFailure, err)
	}

	return surveysha.Fingerprint{
		Survey: calculator.Calculate(definition),
		Score:  calculator.Calculate(score),
	}, nil
}

// Verify FingerprintService implements the interface at compile time
var _ surveysha.Fingerprinter = (*FingerprintService)(nil)
