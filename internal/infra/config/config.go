// Package config provides configuration loading functionality.
package config

// Config is the application configuration read from config.toml.
type Config struct {
	API APIConfig `toml:"api"`
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// APIConfig holds settings for the [api] section.
type APIConfig struct {
	BaseURL string `toml:"base_url"` // Override for the service base URL
}

// UIConfig holds settings for the [ui] section. LastWorkspaceID and
// LastSpaceID are written back on navigation so the next session starts
// where the previous one left off.
type UIConfig struct {
	DateFormat      string `toml:"date_format"`       // Go reference layout for timestamps
	LastWorkspaceID string `toml:"last_workspace_id"` // Most recently opened workspace
	LastSpaceID     string `toml:"last_space_id"`     // Most recently opened space
	IncludeClosed   bool   `toml:"include_closed"`    // Show closed tasks in task lists
}

// LogConfig holds settings for the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Override for the log file path
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		UI:  UIConfig{DateFormat: "Jan 02, 2006 15:04"},
		Log: LogConfig{Level: "info"},
	}
}
