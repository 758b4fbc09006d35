package settingsfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/settings"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
	required bool
}

// NewYAMLProvider creates a new YAMLProvider.
// An empty filePath means no settings file; the built-in defaults are used.
// When required is set, a missing file is an error instead of meaning defaults.
func NewYAMLProvider(filePath string, required bool) ports.SettingsProvider {
	return &YAMLProvider{filePath: filePath, required: required}
}

// GetSettings reads the configured YAML file over the built-in defaults.
// If the file does not exist (and is not required) or is empty, the defaults are returned.
func (p *YAMLProvider) GetSettings() (settings.Settings, error) {
	s := settings.Defaults()
	if p.filePath == "" {
		return s, nil
	}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) && !p.required {
			return s, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", toUserFriendlyPath(p.filePath), err)
	}
	if len(yamlFile) == 0 {
		return s, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&s); err != nil {
		// A file with only comments or "---" has no documents.
		if errors.Is(err, io.EOF) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", toUserFriendlyPath(p.filePath), err)
	}

	validated, err := s.Validate()
	if err != nil {
		return settings.Settings{}, fmt.Errorf("invalid settings in %s: %w", toUserFriendlyPath(p.filePath), err)
	}
	return validated, nil
}

// GetSourceIdentifier describes where the settings came from.
func (p *YAMLProvider) GetSourceIdentifier() string {
	if p.filePath == "" {
		return "built-in defaults"
	}
	return fmt.Sprintf("File: %s", toUserFriendlyPath(p.filePath))
}
