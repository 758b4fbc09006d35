package wordfrequency

import (
	"fmt"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

type service struct {
	tokenizer ports.Tokenizer
	renderers ports.RendererProvider
}

// NewService creates a new word frequency service.
// It panics if tokenizer or renderers are nil.
func NewService(tokenizer ports.Tokenizer, renderers ports.RendererProvider) ports.FrequencyService {
	if tokenizer == nil {
		panic("tokenizer cannot be nil")
	}
	if renderers == nil {
		panic("renderers cannot be nil")
	}
	return &service{
		tokenizer: tokenizer,
		renderers: renderers,
	}
}

// Analyze runs the counting pipeline: tokenize, count, filter, sort and limit.
// The frequency table lives only for the duration of this call.
func (s *service) Analyze(text string, opts report.Options) []frequency.Entry {
	table := count(s.tokenizer.Tokenize(text, opts.IgnoreCase))
	filterMinLength(table, opts.MinLength)
	entries := table.Entries()
	sortEntries(entries, opts.SortBy)
	return limit(entries, opts.Top)
}

// Render serializes entries with the renderer selected by opts.
func (s *service) Render(entries []frequency.Entry, opts report.Options) ([]byte, error) {
	renderer, err := s.renderers.RendererFor(opts.Format, opts.Pretty)
	if err != nil {
		return nil, fmt.Errorf("failed to select renderer: %w", err)
	}
	out, err := renderer.Render(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s output: %w", opts.Format, err)
	}
	return out, nil
}

// Report runs Analyze followed by Render.
func (s *service) Report(text string, opts report.Options) ([]byte, error) {
	return s.Render(s.Analyze(text, opts), opts)
}

// ContentType returns the media type of the output format selected by opts.
func (s *service) ContentType(opts report.Options) (string, error) {
	renderer, err := s.renderers.RendererFor(opts.Format, opts.Pretty)
	if err != nil {
		return "", fmt.Errorf("failed to select renderer: %w", err)
	}
	return renderer.ContentType(), nil
}
