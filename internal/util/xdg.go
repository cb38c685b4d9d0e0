package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the XDG data directory for claude-tooling.
// It respects XDG_DATA_HOME if set, otherwise falls back to
// ~/.local/share/claude-tooling.
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "claude-tooling"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "claude-tooling"), nil
}

// ConfigDir returns the XDG config directory for claude-tooling.
// It respects XDG_CONFIG_HOME if set, otherwise falls back to
// ~/.config/claude-tooling.
func ConfigDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "claude-tooling"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "claude-tooling"), nil
}
