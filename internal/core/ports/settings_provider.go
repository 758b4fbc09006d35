package ports

import "github.com/AntonioJCosta/wordfreq/internal/core/domain/settings"

// SettingsProvider loads persistent defaults, like a configuration file.
type SettingsProvider interface {
	// GetSettings returns validated settings. Missing sources yield the built-in defaults.
	GetSettings() (settings.Settings, error)
	// GetSourceIdentifier describes where the settings came from, for diagnostics.
	GetSourceIdentifier() string
}
