package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/surveykit/surveysha/internal/checksum"
	"github.com/surveykit/surveysha/internal/config"
	"github.com/surveykit/surveysha/internal/files/filesystem"
	"github.com/surveykit/surveysha/internal/files/scanner"
	"github.com/surveykit/surveysha/internal/logging"
	"github.com/surveykit/surveysha/internal/tui"
)

// dependencies are the collaborators shared by compute and verify.
type dependencies struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	scanner    *scanner.Scanner
	logger     *logging.StructuredLogger
}

func buildDependencies(cmd *cobra.Command, cfg config.Config) (dependencies, error) {
	calculator, err := checksum.ForAlgorithm(cfg.Algorithm)
	if err != nil {
		return dependencies{}, err
	}

	fsProvider := filesystem.NewOSFileSystem()
	return dependencies{
		calculator: calculator,
		fsProvider: fsProvider,
		scanner:    scanner.NewScannerWithFS(fsProvider, cfg.Layout(), cfg.Pattern),
		logger:     logging.NewStructuredLogger(cmd.OutOrStdout(), getVerboseFlag(cmd)).ForRun(cfg.Root),
	}, nil
}

// signalContext derives a context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// summaryMode styles the summary only when w is an interactive terminal.
func summaryMode(w io.Writer) tui.Mode {
	f, ok := w.(*os.File)
	if !ok {
		return tui.ModePlain
	}
	return tui.DetectMode(f)
}
