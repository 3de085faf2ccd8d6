package controllers

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// loadSettings reads the file named by --config, or the auto-detected one.
func loadSettings(cmd *cobra.Command, load entities.SettingsLoader) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	settings, err := load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// printJSON writes value as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
