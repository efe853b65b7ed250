package config

import (
	"os"
	"path/filepath"
)

// GetGittreeHome returns GITTREE_HOME or ~/.gittree default
func GetGittreeHome() string {
	home := os.Getenv("GITTREE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".gittree"
		}
		return filepath.Join(homeDir, ".gittree")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $GITTREE_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetGittreeHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
