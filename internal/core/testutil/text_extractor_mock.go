package testutil

import (
	"io"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// MockTextExtractor is a mock implementation of the ports.TextExtractor interface.
type MockTextExtractor struct {
	ExtractFunc func(r io.Reader) (string, error)
}

// Extract mocks the Extract method.
func (m *MockTextExtractor) Extract(r io.Reader) (string, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(r)
	}
	// Default behavior: pass the bytes through untouched.
	data, err := io.ReadAll(r)
	return string(data), err
}

// MockTextExtractorProvider is a mock implementation of the ports.TextExtractorProvider interface.
type MockTextExtractorProvider struct {
	ExtractorForFunc func(kind document.Kind) (ports.TextExtractor, error)
}

// ExtractorFor mocks the ExtractorFor method.
func (m *MockTextExtractorProvider) ExtractorFor(kind document.Kind) (ports.TextExtractor, error) {
	if m.ExtractorForFunc != nil {
		return m.ExtractorForFunc(kind)
	}
	return &MockTextExtractor{}, nil
}

var (
	_ ports.TextExtractor         = (*MockTextExtractor)(nil)
	_ ports.TextExtractorProvider = (*MockTextExtractorProvider)(nil)
)
