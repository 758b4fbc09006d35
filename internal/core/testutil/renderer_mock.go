package testutil

import (
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// MockRenderer is a mock implementation of the ports.Renderer interface.
type MockRenderer struct {
	RenderFunc      func(entries []frequency.Entry) ([]byte, error)
	ContentTypeFunc func() string
}

// Render mocks the Render method.
func (m *MockRenderer) Render(entries []frequency.Entry) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(entries)
	}
	return []byte{}, nil
}

// ContentType mocks the ContentType method.
func (m *MockRenderer) ContentType() string {
	if m.ContentTypeFunc != nil {
		return m.ContentTypeFunc()
	}
	return "text/plain; charset=utf-8"
}

// MockRendererProvider is a mock implementation of the ports.RendererProvider interface.
type MockRendererProvider struct {
	RendererForFunc func(format report.Format, pretty bool) (ports.Renderer, error)
}

// RendererFor mocks the RendererFor method.
func (m *MockRendererProvider) RendererFor(format report.Format, pretty bool) (ports.Renderer, error) {
	if m.RendererForFunc != nil {
		return m.RendererForFunc(format, pretty)
	}
	// Default behavior: a renderer that produces no output.
	return &MockRenderer{}, nil
}

var (
	_ ports.Renderer         = (*MockRenderer)(nil)
	_ ports.RendererProvider = (*MockRendererProvider)(nil)
)
