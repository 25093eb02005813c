package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path
	EnvConfigPath = "PASSIVES_CONFIG"
	// ConfigFileName is the config file looked up in the working directory
	ConfigFileName = "passives.yaml"
	// ConfigDirName is the config directory name under ~/.config
	ConfigDirName = "passives"
)

// FindConfigPath searches for a config file in priority order:
// 1. $PASSIVES_CONFIG (explicit path)
// 2. ./passives.yaml (working directory)
// 3. ~/.config/passives/config.yaml
//
// Returns empty string if no config file found
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// DefaultConfigPath returns the preferred location for a new config file
// Prefers ~/.config, falls back to working directory
func DefaultConfigPath() string {
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", ConfigDirName, "config.yaml")
	}
	return ConfigFileName
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
