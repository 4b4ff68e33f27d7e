package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surveykit/surveysha/internal/checksum"
	"github.com/surveykit/surveysha/internal/config"
	"github.com/surveykit/surveysha/pkg/surveysha"
)

// runOptions holds the flag values shared by compute and verify.
type runOptions struct {
	root       string
	pattern    string
	algorithm  string
	outputFile string
	failFast   bool
	configFile string
	envFile    string
}

// bindSelectionFlags registers the flags that select surveys and the output
// naming. They are persistent so subcommands inherit them from the root.
func bindSelectionFlags(cmd *cobra.Command, opts *runOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.root, "root", "",
		"Directory containing one sub-directory per survey\n"+
			"Precedence: --root > $SURVEYSHA_ROOT > surveysha.yaml > "+surveysha.DefaultRoot)
	flags.StringVar(&opts.pattern, "pattern", "",
		"Glob restricting which survey directories are processed (default \""+surveysha.DefaultPattern+"\")")
	flags.StringVar(&opts.algorithm, "algorithm", "",
		fmt.Sprintf("Digest algorithm: %v (default %q)", checksum.Algorithms(), surveysha.DefaultAlgorithm))
	flags.StringVar(&opts.outputFile, "output-file", "",
		"Name of the fingerprint file written into each survey directory (default \""+surveysha.DefaultOutputFile+"\")")
	flags.StringVar(&opts.configFile, "config", "",
		"Path to a YAML configuration file (default ./"+config.ConfigFileName+" if present)")
	flags.StringVar(&opts.envFile, "env-file", "",
		"Path to a .env file with SURVEYSHA_* overrides (default ./"+config.EnvFileName+" if present)")
}

func bindFailFastFlag(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false,
		"Stop at the first survey that cannot be fingerprinted")
}

// resolveConfig merges flags, environment, the YAML file and defaults,
// in that order of precedence, and validates the result.
func resolveConfig(cmd *cobra.Command, opts *runOptions) (config.Config, error) {
	cfg, err := loadConfigFile(opts.configFile)
	if err != nil {
		return config.Config{}, err
	}

	lookup, err := config.EnvLookup(opts.envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", surveysha.ErrInvalidConfig, err)
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = opts.root
	}
	if flags.Changed("pattern") {
		cfg.Pattern = opts.pattern
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = opts.algorithm
	}
	if flags.Changed("output-file") {
		cfg.OutputFile = opts.outputFile
	}
	if flags.Lookup("fail-fast") != nil && flags.Changed("fail-fast") {
		cfg.FailFast = opts.failFast
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadConfigFile reads an explicit config file, or ./surveysha.yaml when
// present. Only an explicitly requested file must exist.
func loadConfigFile(path string) (config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}

	if errors.Is(err, config.ErrConfigNotFound) {
		if path != "" {
			return config.Config{}, fmt.Errorf("%s: %w: %w", path, surveysha.ErrInvalidConfig, err)
		}
		return config.Config{}, nil
	}
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}
