package testutil

import (
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// MockInputSource is a mock implementation of the ports.InputSource interface.
type MockInputSource struct {
	ReadTextFunc func(path string, kind document.Kind) (string, error)
}

// ReadText mocks the ReadText method.
func (m *MockInputSource) ReadText(path string, kind document.Kind) (string, error) {
	if m.ReadTextFunc != nil {
		return m.ReadTextFunc(path, kind)
	}
	return "", nil
}

var _ ports.InputSource = (*MockInputSource)(nil)
