package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/surveykit/surveysha/internal/checksum"
	"github.com/surveykit/surveysha/internal/files/scanner"
	"github.com/surveykit/surveysha/pkg/surveysha"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	ConfigFileName = "surveysha.yaml"
	EnvFileName    = ".env"
	EnvPrefix      = "SURVEYSHA_"
)

// Config selects which surveys are fingerprinted and how.
// Zero values are replaced by defaults in ApplyDefaults.
type Config struct {
	Root             string `yaml:"root"`
	Pattern          string `yaml:"pattern"`
	Algorithm        string `yaml:"algorithm"`
	OutputFile       string `yaml:"output_file"`
	DefinitionSuffix string `yaml:"definition_suffix"`
	ScoreSuffix      string `yaml:"score_suffix"`
	FailFast         bool   `yaml:"fail_fast"`
}

// Default returns the configuration matching the historical behaviour:
// every directory under ./surveys, SHA-1 digests written to sha.json.
func Default() Config {
	layout := surveysha.DefaultLayout()
	return Config{
		Root:             surveysha.DefaultRoot,
		Pattern:          surveysha.DefaultPattern,
		Algorithm:        surveysha.DefaultAlgorithm,
		OutputFile:       layout.OutputFile,
		DefinitionSuffix: layout.DefinitionSuffix,
		ScoreSuffix:      layout.ScoreSuffix,
	}
}

// Load reads surveysha.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a YAML configuration file. Unknown keys are rejected.
// An empty file yields an empty configuration.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w: %w", path, surveysha.ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// ApplyDefaults fills every unset field with its default.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Root == "" {
		c.Root = def.Root
	}
	if c.Pattern == "" {
		c.Pattern = def.Pattern
	}
	if c.Algorithm == "" {
		c.Algorithm = def.Algorithm
	}
	if c.OutputFile == "" {
		c.OutputFile = def.OutputFile
	}
	if c.DefinitionSuffix == "" {
		c.DefinitionSuffix = def.DefinitionSuffix
	}
	if c.ScoreSuffix == "" {
		c.ScoreSuffix = def.ScoreSuffix
	}
}

// LookupFunc returns the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a LookupFunc that consults the process environment first
// and falls back to the variables declared in envFile. A process variable that
// is set but empty does not shadow the file.
// When envFile is empty, ./.env is used if present.
func EnvLookup(envFile string) (LookupFunc, error) {
	path := envFile
	if path == "" {
		path = EnvFileName
	}

	fileVars, err := godotenv.Read(path)
	if err != nil {
		if envFile == "" && os.IsNotExist(err) {
			return os.LookupEnv, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides fields from SURVEYSHA_* variables. Empty values are ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	fields := map[string]*string{
		"ROOT":              &c.Root,
		"PATTERN":           &c.Pattern,
		"ALGORITHM":         &c.Algorithm,
		"OUTPUT_FILE":       &c.OutputFile,
		"DEFINITION_SUFFIX": &c.DefinitionSuffix,
		"SCORE_SUFFIX":      &c.ScoreSuffix,
	}
	for name, field := range fields {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*field = v
		}
	}

	if v, ok := lookup(EnvPrefix + "FAIL_FAST"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sFAIL_FAST=%q is not a boolean: %w", EnvPrefix, v, surveysha.ErrInvalidConfig)
		}
		c.FailFast = b
	}
	return nil
}

// Layout returns the file naming scheme described by the configuration.
func (c Config) Layout() surveysha.Layout {
	return surveysha.Layout{
		DefinitionSuffix: c.DefinitionSuffix,
		ScoreSuffix:      c.ScoreSuffix,
		OutputFile:       c.OutputFile,
	}
}

// Validate checks a configuration after defaults have been applied.
// It returns a multi-error if multiple validation failures occur.
func (c Config) Validate() error {
	var errs []error

	if c.Root == "" {
		errs = append(errs, fmt.Errorf("root is required: %w", surveysha.ErrInvalidConfig))
	}
	if _, err := checksum.ForAlgorithm(c.Algorithm); err != nil {
		errs = append(errs, err)
	}
	if err := scanner.ValidatePattern(c.Pattern); err != nil {
		errs = append(errs, err)
	}
	if err := c.Layout().Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
