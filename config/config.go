// Package config loads the runner configuration: where puzzle inputs live,
// how many workers parallel solvers may use, and how to log.
//
// Values are resolved in order: defaults, then the YAML file, then
// AOC_* environment variables. Command line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the on-disk and environment configuration.
type Config struct {
	// InputDir is the directory holding dayNN.txt files.
	InputDir string `yaml:"input_dir" env:"AOC_INPUT_DIR"`
	// InputPattern is a fmt pattern taking the day number.
	InputPattern string `yaml:"input_pattern" env:"AOC_INPUT_PATTERN"`
	// Inputs overrides the input path of individual days.
	Inputs map[int]string `yaml:"inputs"`
	// Workers bounds parallel solvers; 0 means one per CPU.
	Workers int `yaml:"workers" env:"AOC_WORKERS"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"AOC_LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"AOC_LOG_FORMAT"` // console or json
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:     "data",
		InputPattern: "day%02d.txt",
		Workers:      0,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and the input pattern.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.InputPattern == "" || strings.Count(c.InputPattern, "%") != 1 {
		return fmt.Errorf("%w: input_pattern %q needs exactly one day verb", ErrInvalidConfig, c.InputPattern)
	}
	for day := range c.Inputs {
		if day < 1 || day > 25 {
			return fmt.Errorf("%w: inputs: day %d out of range", ErrInvalidConfig, day)
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// InputPath returns the input file for day: its entry in Inputs if set,
// otherwise InputDir joined with InputPattern formatted for day.
func (c *Config) InputPath(day int) string {
	if p, ok := c.Inputs[day]; ok && p != "" {
		return p
	}
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}
