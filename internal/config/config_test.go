package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/permgen/internal/output"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "recursive" {
		t.Errorf("Algorithm = %q, want %q", cfg.Algorithm, "recursive")
	}
	if !cfg.ExcludeDuplicates {
		t.Errorf("ExcludeDuplicates = %v, want true", cfg.ExcludeDuplicates)
	}
	if cfg.Format != output.FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, output.FormatText)
	}
	if cfg.MaxLength != 10 {
		t.Errorf("MaxLength = %d, want 10", cfg.MaxLength)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `algorithm: iterative
exclude_duplicates: false
format: json
max_length: 6
log_level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Algorithm != "iterative" {
		t.Errorf("Algorithm = %q, want %q", cfg.Algorithm, "iterative")
	}
	if cfg.ExcludeDuplicates {
		t.Errorf("ExcludeDuplicates = %v, want false", cfg.ExcludeDuplicates)
	}
	if cfg.Format != output.FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, output.FormatJSON)
	}
	if cfg.MaxLength != 6 {
		t.Errorf("MaxLength = %d, want 6", cfg.MaxLength)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

// TestLoadConfigPartialFile verifies missing keys keep their defaults
func TestLoadConfigPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("format: yaml\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Format != output.FormatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, output.FormatYAML)
	}
	if !cfg.ExcludeDuplicates {
		t.Error("ExcludeDuplicates should keep default true when key is absent")
	}
	if cfg.MaxLength != 10 {
		t.Errorf("MaxLength = %d, want default 10", cfg.MaxLength)
	}
}

// TestLoadConfigZeroMaxLength verifies an explicit zero disables the limit
func TestLoadConfigZeroMaxLength(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("max_length: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.MaxLength != 0 {
		t.Errorf("MaxLength = %d, want 0", cfg.MaxLength)
	}
}

// TestLoadConfigMissingFile verifies defaults are returned when file is absent
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

// TestLoadConfigMalformedFile verifies malformed YAML is reported
func TestLoadConfigMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("algorithm: [unterminated\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("LoadConfig() expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestMergeWithFlags verifies non-nil flags override config values
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()

	algorithm := "iterative"
	exclude := false
	format := output.FormatYAML

	cfg.MergeWithFlags(&algorithm, &exclude, &format, nil, nil)

	if cfg.Algorithm != "iterative" {
		t.Errorf("Algorithm = %q, want %q", cfg.Algorithm, "iterative")
	}
	if cfg.ExcludeDuplicates {
		t.Error("ExcludeDuplicates should be overridden to false")
	}
	if cfg.Format != output.FormatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, output.FormatYAML)
	}
	if cfg.MaxLength != 10 {
		t.Errorf("MaxLength = %d, nil flag should keep 10", cfg.MaxLength)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, nil flag should keep info", cfg.LogLevel)
	}
}

// TestValidate covers each rejected field
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "iterative", mutate: func(c *Config) { c.Algorithm = "iterative" }},
		{name: "unknown algorithm", mutate: func(c *Config) { c.Algorithm = "bogo" }, wantErr: "unknown algorithm"},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, wantErr: "invalid format"},
		{name: "negative max length", mutate: func(c *Config) { c.MaxLength = -1 }, wantErr: "max_length"},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestGetPermgenHome verifies the environment override and cwd fallback
func TestGetPermgenHome(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(HomeEnv, dir)

		home, err := GetPermgenHome()
		if err != nil {
			t.Fatalf("GetPermgenHome() error = %v", err)
		}
		if home != dir {
			t.Errorf("GetPermgenHome() = %q, want %q", home, dir)
		}

		path, err := DefaultConfigPath()
		if err != nil {
			t.Fatalf("DefaultConfigPath() error = %v", err)
		}
		if path != filepath.Join(dir, "config.yaml") {
			t.Errorf("DefaultConfigPath() = %q", path)
		}
	})

	t.Run("cwd fallback", func(t *testing.T) {
		t.Setenv(HomeEnv, "")

		home, err := GetPermgenHome()
		if err != nil {
			t.Fatalf("GetPermgenHome() error = %v", err)
		}
		if filepath.Base(home) != ".permgen" {
			t.Errorf("GetPermgenHome() = %q, want .permgen suffix", home)
		}
	})
}
