// Package config resolves runtime settings for the hook commands.
//
// Settings are layered: built-in defaults, then the optional per-user
// config file (~/.config/claude-tooling/config.toml), then
// CLAUDE_TOOLING_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/charlesmsiegel/claude-tooling/internal/util"
)

// Tools holds the external binaries the hooks invoke.
type Tools struct {
	PreCommit string `toml:"pre_commit"`
	Black     string `toml:"black"`
	Ruff      string `toml:"ruff"`
}

// Format holds formatter settings.
type Format struct {
	LineLength int      `toml:"line_length"`
	ExtraArgs  []string `toml:"extra_args"`
}

// Lint holds linter settings.
type Lint struct {
	ExtraArgs []string `toml:"extra_args"`
}

// Audit holds settings for the local invocation log.
type Audit struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// OTel holds settings for the optional metrics exporter.
type OTel struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
	Insecure bool   `toml:"insecure"`
}

// Config holds all claude-tooling settings.
type Config struct {
	Tools    Tools    `toml:"tools"`
	Format   Format   `toml:"format"`
	Lint     Lint     `toml:"lint"`
	Disabled []string `toml:"disabled"`
	Audit    Audit    `toml:"audit"`
	OTel     OTel     `toml:"otel"`
}

// HookDisabled reports whether the named hook has been switched off.
func (c *Config) HookDisabled(hook string) bool {
	return slices.Contains(c.Disabled, hook)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tools: Tools{
			PreCommit: "pre-commit",
			Black:     "black",
			Ruff:      "ruff",
		},
		Format: Format{LineLength: 100},
		Audit:  Audit{Enabled: true},
	}
}

// envOverrides maps CLAUDE_TOOLING_* environment variables onto Config.
// Pointer fields distinguish "unset" from explicit false.
type envOverrides struct {
	PreCommitBin string   `envconfig:"PRE_COMMIT_BIN"`
	BlackBin     string   `envconfig:"BLACK_BIN"`
	RuffBin      string   `envconfig:"RUFF_BIN"`
	LineLength   int      `envconfig:"LINE_LENGTH"`
	Disabled     []string `envconfig:"DISABLED"`
	AuditEnabled *bool    `envconfig:"AUDIT_ENABLED"`
	AuditPath    string   `envconfig:"AUDIT_PATH"`
	OTelEnabled  *bool    `envconfig:"OTEL_ENABLED"`
	OTelEndpoint string   `envconfig:"OTEL_ENDPOINT"`
	OTelInsecure *bool    `envconfig:"OTEL_INSECURE"`
}

// Load resolves the effective configuration.
func Load() (*Config, error) {
	cfg := Default()

	file, err := configFile()
	if err == nil {
		if _, statErr := os.Stat(file); statErr == nil {
			if _, decodeErr := toml.DecodeFile(file, &cfg); decodeErr != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", file, decodeErr)
			}
		}
	}

	var env envOverrides
	if err := envconfig.Process("claude_tooling", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	applyEnv(&cfg, env)

	if cfg.Audit.Enabled && cfg.Audit.Path == "" {
		dataDir, err := util.DataDir()
		if err != nil {
			// No home directory means nowhere to put the log.
			cfg.Audit.Enabled = false
		} else {
			cfg.Audit.Path = filepath.Join(dataDir, "hooks.db")
		}
	}

	return &cfg, nil
}

func configFile() (string, error) {
	dir, err := util.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func applyEnv(cfg *Config, env envOverrides) {
	if env.PreCommitBin != "" {
		cfg.Tools.PreCommit = env.PreCommitBin
	}
	if env.BlackBin != "" {
		cfg.Tools.Black = env.BlackBin
	}
	if env.RuffBin != "" {
		cfg.Tools.Ruff = env.RuffBin
	}
	if env.LineLength > 0 {
		cfg.Format.LineLength = env.LineLength
	}
	if len(env.Disabled) > 0 {
		cfg.Disabled = env.Disabled
	}
	if env.AuditEnabled != nil {
		cfg.Audit.Enabled = *env.AuditEnabled
	}
	if env.AuditPath != "" {
		cfg.Audit.Path = env.AuditPath
	}
	if env.OTelEnabled != nil {
		cfg.OTel.Enabled = *env.OTelEnabled
	}
	if env.OTelEndpoint != "" {
		cfg.OTel.Endpoint = env.OTelEndpoint
	}
	if env.OTelInsecure != nil {
		cfg.OTel.Insecure = *env.OTelInsecure
	}
}
