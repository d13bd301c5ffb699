package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configFileName = "config.toml"

// Loader loads configuration from TOML files.
type Loader struct {
	configDir string
}

// NewLoader creates a Loader rooted at the default config directory.
func NewLoader() *Loader {
	return &Loader{configDir: DefaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{configDir: dir}
}

// DefaultConfigDir returns the per-user config directory.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskdeck")
}

// Dir returns the config directory this loader reads from.
func (l *Loader) Dir() string {
	return l.configDir
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return filepath.Join(l.configDir, configFileName)
}

// Load reads the config file, falling back to defaults when it does not
// exist. Unknown keys are ignored.
func (l *Loader) Load() (*Config, error) {
	content, err := os.ReadFile(l.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config file, creating the directory as needed.
func (l *Loader) Save(cfg *Config) error {
	if err := os.MkdirAll(l.configDir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	content, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(l.Path(), content, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
