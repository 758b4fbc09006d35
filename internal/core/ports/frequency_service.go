package ports

import (
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
)

// FrequencyService defines the contract for the tokenize, count, sort and render pipeline.
type FrequencyService interface {
	// Analyze runs tokenize, count, filter, sort and limit. It never fails.
	Analyze(text string, opts report.Options) []frequency.Entry
	// Render serializes entries in the format selected by opts.
	Render(entries []frequency.Entry, opts report.Options) ([]byte, error)
	// Report runs Analyze followed by Render.
	Report(text string, opts report.Options) ([]byte, error)
	// ContentType returns the media type produced for the format selected by opts.
	ContentType(opts report.Options) (string, error)
}
