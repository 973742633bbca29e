// Package config loads the gitex settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up when --config is not given.
const DefaultPath = ".gitex.yaml"

// Config holds the settings shared by every command.
type Config struct {
	// Repo is the git directory commands run in.
	Repo string `yaml:"repo"`
	// GitBinary is the git executable.
	GitBinary string `yaml:"git"`
	// HintsDir overrides the embedded hint texts when set.
	HintsDir string `yaml:"hints_dir"`
	// Parallel bounds the number of refs verified at once by the hook.
	Parallel int `yaml:"parallel"`
	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Repo:      ".",
		GitBinary: "git",
		Parallel:  runtime.NumCPU(),
		LogLevel:  "warn",
	}
}

// Load reads path on top of Default. A missing file yields the defaults
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			cfg.applyEnvOverrides()
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if repo := os.Getenv("GITEX_REPO"); repo != "" {
		c.Repo = repo
	}

	if git := os.Getenv("GITEX_GIT"); git != "" {
		c.GitBinary = git
	}

	if level := os.Getenv("GITEX_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}

	if c.GitBinary == "" {
		return errors.New("git binary must not be empty")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return nil
}
