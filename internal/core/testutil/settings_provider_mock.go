package testutil

import (
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/settings"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// MockSettingsProvider is a mock implementation of the ports.SettingsProvider interface.
type MockSettingsProvider struct {
	GetSettingsFunc         func() (settings.Settings, error)
	GetSourceIdentifierFunc func() string
}

// GetSettings mocks the GetSettings method.
func (m *MockSettingsProvider) GetSettings() (settings.Settings, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc()
	}
	// Default behavior: built-in defaults.
	return settings.Defaults(), nil
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockSettingsProvider) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return "built-in defaults"
}

var _ ports.SettingsProvider = (*MockSettingsProvider)(nil)
