package testutil

import (
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// MockFrequencyService is a mock implementation of the ports.FrequencyService interface.
type MockFrequencyService struct {
	AnalyzeFunc     func(text string, opts report.Options) []frequency.Entry
	RenderFunc      func(entries []frequency.Entry, opts report.Options) ([]byte, error)
	ReportFunc      func(text string, opts report.Options) ([]byte, error)
	ContentTypeFunc func(opts report.Options) (string, error)
}

// Analyze mocks the Analyze method.
func (m *MockFrequencyService) Analyze(text string, opts report.Options) []frequency.Entry {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(text, opts)
	}
	return nil
}

// Render mocks the Render method.
func (m *MockFrequencyService) Render(entries []frequency.Entry, opts report.Options) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(entries, opts)
	}
	return nil, nil
}

// Report mocks the Report method.
func (m *MockFrequencyService) Report(text string, opts report.Options) ([]byte, error) {
	if m.ReportFunc != nil {
		return m.ReportFunc(text, opts)
	}
	return nil, nil
}

// ContentType mocks the ContentType method.
func (m *MockFrequencyService) ContentType(opts report.Options) (string, error) {
	if m.ContentTypeFunc != nil {
		return m.ContentTypeFunc(opts)
	}
	return "text/plain; charset=utf-8", nil
}

var _ ports.FrequencyService = (*MockFrequencyService)(nil)
