package config

import (
	"fmt"
	"os"

	"github.com/harrison/permgen/internal/models"
	"github.com/harrison/permgen/internal/output"
	"gopkg.in/yaml.v3"
)

// Config represents permgen configuration options
type Config struct {
	// Algorithm selects the generator (recursive, iterative)
	Algorithm string `yaml:"algorithm"`

	// ExcludeDuplicates drops repeated arrangements (recursive generator only)
	ExcludeDuplicates bool `yaml:"exclude_duplicates"`

	// Format is the output format (text, json, yaml)
	Format string `yaml:"format"`

	// MaxLength is the longest input the CLI will expand (0 = unlimited)
	MaxLength int `yaml:"max_length"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Algorithm:         string(models.AlgorithmRecursive),
		ExcludeDuplicates: true,
		Format:            output.FormatText,
		MaxLength:         10, // 10! = 3,628,800 entries
		LogLevel:          "info",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.Algorithm != "" {
		cfg.Algorithm = fileCfg.Algorithm
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	// Booleans and zero limits are only applied when the key is present,
	// so "exclude_duplicates: false" and "max_length: 0" can override defaults
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["exclude_duplicates"]; exists {
			cfg.ExcludeDuplicates = fileCfg.ExcludeDuplicates
		}
		if _, exists := rawMap["max_length"]; exists {
			cfg.MaxLength = fileCfg.MaxLength
		}
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(algorithm *string, excludeDuplicates *bool, format *string, maxLength *int, logLevel *string) {
	if algorithm != nil {
		c.Algorithm = *algorithm
	}
	if excludeDuplicates != nil {
		c.ExcludeDuplicates = *excludeDuplicates
	}
	if format != nil {
		c.Format = *format
	}
	if maxLength != nil {
		c.MaxLength = *maxLength
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if _, err := models.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}

	switch c.Format {
	case output.FormatText, output.FormatJSON, output.FormatYAML:
	default:
		return fmt.Errorf("invalid format %q, must be one of: text, json, yaml", c.Format)
	}

	if c.MaxLength < 0 {
		return fmt.Errorf("max_length must be >= 0, got %d", c.MaxLength)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}
