package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SettingsFileName is the per-project settings file the installer updates.
const SettingsFileName = "settings.local.json"

// Install merges the given hooks into <target>/.claude/settings.local.json,
// creating the directory and file as needed. It returns the settings
// file path.
func Install(target string, hooks []Hook) (string, error) {
	settingsDir := filepath.Join(target, ".claude")
	if err := os.MkdirAll(settingsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", settingsDir, err)
	}

	settingsFile := filepath.Join(settingsDir, SettingsFileName)

	existing, err := os.ReadFile(settingsFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to read %s: %w", settingsFile, err)
	}

	merged, err := MergeSettings(existing, hooks)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(settingsFile, merged, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", settingsFile, err)
	}

	return settingsFile, nil
}
