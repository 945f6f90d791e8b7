// Package config loads solver run settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/amphipod/search"
)

// Sentinel errors for configuration loading.
var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")

	// ErrInvalidFormat indicates the file is not valid YAML for Config.
	ErrInvalidFormat = errors.New("config: invalid format")

	// ErrInvalid indicates a decoded value is out of range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds every setting of a solve run.
type Config struct {
	Strategy       string        `yaml:"strategy"`
	Extended       bool          `yaml:"extended"`
	BranchAndBound bool          `yaml:"branch_and_bound"`
	DeadEndPruning bool          `yaml:"dead_end_pruning"`
	TimeLimit      time.Duration `yaml:"time_limit"`
	Log            Log           `yaml:"log"`
}

// Log configures diagnostics.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Strategy:       search.AStar.String(),
		DeadEndPruning: true,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load decodes YAML from r on top of Default. Keys absent from the document
// keep their default values; unknown keys are rejected.
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	if _, err := search.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy: %v", ErrInvalid, err)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: time_limit must be >= 0, got %s", ErrInvalid, c.TimeLimit)
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// SearchOptions translates the search-related settings into solver options.
func (c Config) SearchOptions() ([]search.Option, error) {
	strategy, err := search.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: strategy: %v", ErrInvalid, err)
	}
	if c.TimeLimit < 0 {
		return nil, fmt.Errorf("%w: time_limit must be >= 0, got %s", ErrInvalid, c.TimeLimit)
	}

	opts := []search.Option{
		search.WithStrategy(strategy),
		search.WithDeadEndPruning(c.DeadEndPruning),
	}
	if c.BranchAndBound {
		opts = append(opts, search.WithBranchAndBound())
	}
	if c.TimeLimit > 0 {
		opts = append(opts, search.WithTimeLimit(c.TimeLimit))
	}

	return opts, nil
}
