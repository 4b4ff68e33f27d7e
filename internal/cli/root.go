package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const rootLong = `surveysha records a fingerprint of every survey under a root directory.

For each survey directory <name>/ it hashes <name>.json and <name>.score.js
and writes {"survey":"<digest>","score":"<digest>"} to <name>/sha.json.
Downstream consumers compare these digests to detect changed surveys.

Running surveysha without a subcommand is the same as "surveysha compute".

Configuration precedence (highest first):
  command-line flags > SURVEYSHA_* environment (.env) > surveysha.yaml > defaults

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  14 - Survey root not found
  15 - One or more surveys could not be fingerprinted
  16 - One or more stored fingerprints are stale, missing or invalid`

// newRootCmd builds the command tree. Every call returns independent flag state.
func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:          "surveysha",
		Short:        "Fingerprint survey definitions and scoring scripts",
		Long:         rootLong,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	bindSelectionFlags(rootCmd, opts)
	bindFailFastFlag(rootCmd, opts)

	rootCmd.AddCommand(newComputeCmd(opts))
	rootCmd.AddCommand(newVerifyCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}

	return newRootCmd().Execute()
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
