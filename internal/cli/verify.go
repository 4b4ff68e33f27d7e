package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surveykit/surveysha/internal/services"
	"github.com/surveykit/surveysha/internal/tui"
)

func newVerifyCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check stored fingerprints against the current survey files",
		Long: `Verify recomputes the digests of every survey and compares them with the
stored fingerprint file. Nothing is written.

Each survey is reported as one of:
  ok       stored digests match the current files
  stale    at least one digest differs (the changed fields are listed)
  missing  no fingerprint file exists
  invalid  the fingerprint file cannot be parsed
  error    the survey files cannot be read

Exits with code 16 unless every survey is ok, which makes verify suitable as a
CI check that fingerprints were regenerated after editing a survey.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts)
		},
	}
}

func runVerify(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	deps, err := buildDependencies(cmd, cfg)
	if err != nil {
		return err
	}

	svc := services.NewVerifyService(deps.calculator, deps.fsProvider, deps.scanner, deps.logger)

	ctx, stop := signalContext(cmd)
	defer stop()

	report, err := svc.Verify(ctx, cfg.Root)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.ErrOrStderr(), tui.RenderVerifySummary(report, summaryMode(cmd.ErrOrStderr())))
	return report.Err()
}
