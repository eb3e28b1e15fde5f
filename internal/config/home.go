package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the directory holding config.yaml
const HomeEnv = "PERMGEN_HOME"

// GetPermgenHome returns the directory searched for config.yaml
// Priority order:
//  1. PERMGEN_HOME environment variable (if set)
//  2. .permgen under the current working directory
func GetPermgenHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, ".permgen"), nil
}

// DefaultConfigPath returns config.yaml inside the permgen home directory
func DefaultConfigPath() (string, error) {
	home, err := GetPermgenHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}
