package testutil

import "github.com/AntonioJCosta/wordfreq/internal/core/ports"

// MockFileFinder is a mock implementation of ports.FileFinder.
type MockFileFinder struct {
	FindFunc func() (string, error)
}

// Find mocks the Find method.
func (m *MockFileFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "", nil // Default behavior
}

var _ ports.FileFinder = (*MockFileFinder)(nil)
