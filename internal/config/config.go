package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all maxsub configuration.
type Config struct {
	// Input parsing
	Input InputConfig `yaml:"input"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig configures how the element sequence is read.
type InputConfig struct {
	// Upper bound on the declared element count. Counts above math.MaxInt32
	// are rejected by Validate so int64 sums of int32 elements cannot overflow.
	MaxCount int `yaml:"max_count"`

	// Reject tokens after the last declared element
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			MaxCount: 10_000_000,
			Strict:   false,
		},

		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
			File:   "",
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/maxsub/config.yaml, falling back to
// ~/.config/maxsub/config.yaml.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "maxsub", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "maxsub", "config.yaml")
	}
	return filepath.Join(home, ".config", "maxsub", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// A missing file still gets environment overrides
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Values that fail to parse are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MAXSUB_MAX_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Input.MaxCount = n
		}
	}
	if v := os.Getenv("MAXSUB_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Input.Strict = b
		}
	}

	if v := os.Getenv("MAXSUB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MAXSUB_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("MAXSUB_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging encodings.
var ValidLogFormats = []string{"json", "console"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.MaxCount < 1 || c.Input.MaxCount > math.MaxInt32 {
		return fmt.Errorf("input.max_count must be between 1 and %d, got %d", math.MaxInt32, c.Input.MaxCount)
	}
	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	return nil
}
