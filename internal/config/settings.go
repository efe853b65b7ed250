package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Color modes accepted by --color and the "color" setting
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Settings represents the structure of $GITTREE_HOME/settings.json.
// Unset fields leave the corresponding flag default untouched.
type Settings struct {
	All             *bool  `json:"all,omitempty"`
	Color           string `json:"color,omitempty"`
	Debug           *bool  `json:"debug,omitempty"`
	Depth           *int   `json:"depth,omitempty"`
	Jobs            *int   `json:"jobs,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
	OnlyShowChanges *bool  `json:"only_show_changes,omitempty"`
	Summary         *bool  `json:"summary,omitempty"`
}

// Validate checks values that the JSON decoder cannot
func (s *Settings) Validate() error {
	switch s.Color {
	case "", ColorAlways, ColorAuto, ColorNever:
	default:
		return fmt.Errorf("invalid color '%s' (expected always, auto or never)", s.Color)
	}
	if s.Depth != nil && *s.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", *s.Depth)
	}
	if s.Jobs != nil && *s.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", *s.Jobs)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative, got %d", *s.MaxLogFiles)
	}
	return nil
}

// LoadSettings loads settings from $GITTREE_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}
