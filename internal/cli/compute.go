package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surveykit/surveysha/internal/services"
	"github.com/surveykit/surveysha/internal/tui"
	"github.com/surveykit/surveysha/pkg/surveysha"
)

func newComputeCmd(opts *runOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Write a fingerprint file into every survey directory",
		Long: `Compute hashes each survey's definition and scoring script and writes
the two digests to the survey's fingerprint file, replacing any previous one.

A survey whose files cannot be read or whose fingerprint cannot be written is
reported and skipped; the remaining surveys are still processed. Use
--fail-fast to stop at the first failure instead.

Examples:
  # Fingerprint every survey under ./surveys
  surveysha compute

  # Fingerprint only the PHQ surveys with SHA-256
  surveysha compute --pattern 'phq*' --algorithm sha256

  # Use a different survey root
  surveysha compute --root ./content/surveys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, opts)
		},
	}
	bindFailFastFlag(cmd, opts)
	return cmd
}

func runCompute(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	deps, err := buildDependencies(cmd, cfg)
	if err != nil {
		return err
	}

	svc := services.NewFingerprintService(
		deps.calculator,
		deps.fsProvider,
		deps.scanner,
		deps.logger,
		services.WithFailFast(cfg.FailFast),
	)

	ctx, stop := signalContext(cmd)
	defer stop()

	report, err := svc.Run(ctx, cfg.Root)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.ErrOrStderr(), tui.RenderRunSummary(report, summaryMode(cmd.ErrOrStderr())))

	if report.Failed() > 0 {
		return fmt.Errorf("%w: %w", surveysha.ErrFingerprintFailed, report.Err())
	}
	return nil
}
