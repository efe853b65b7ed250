package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gittree/internal/config"
)

// printSettingsExample shows where settings are read from and what they may contain
func printSettingsExample(w io.Writer) error {
	output := map[string]any{
		"settings_file": config.GetSettingsPath(),
		"format":        config.GetSettingsExample(),
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
