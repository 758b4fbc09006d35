package cli

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/settings"
	"github.com/spf13/cobra"
)

// ConfigEnvVar names the environment variable that points at a settings file.
const ConfigEnvVar = "WORDFREQ_CONFIG"

// loadSettings resolves the settings file and reads it over the built-in defaults.
// A file named by --config or the environment must exist; a discovered one is optional.
func loadSettings(cmd *cobra.Command, deps Dependencies) (settings.Settings, string, error) {
	path, _ := cmd.Flags().GetString("config")
	required := true
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path == "" {
		required = false
		if deps.SettingsFinder != nil {
			if found, err := deps.SettingsFinder.Find(); err == nil {
				path = found
			}
		}
	}

	provider := deps.NewSettings(path, required)
	s, err := provider.GetSettings()
	if err != nil {
		return settings.Settings{}, "", fmt.Errorf("could not load settings: %w", err)
	}
	return s, provider.GetSourceIdentifier(), nil
}
