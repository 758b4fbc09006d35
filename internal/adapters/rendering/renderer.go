package rendering

import (
	"fmt"
	"unicode/utf8"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// EmptyPlaceholder is the table output for a report with no entries.
const EmptyPlaceholder = "No entries found."

// Registry implements ports.RendererProvider for every supported format.
type Registry struct{}

// NewRegistry creates a new renderer Registry.
func NewRegistry() ports.RendererProvider {
	return &Registry{}
}

// RendererFor returns the renderer for format. pretty only affects JSON.
func (r *Registry) RendererFor(format report.Format, pretty bool) (ports.Renderer, error) {
	switch format {
	case report.FormatTable:
		return &TableRenderer{}, nil
	case report.FormatJSON:
		return &JSONRenderer{Pretty: pretty}, nil
	case report.FormatCSV:
		return &CSVRenderer{}, nil
	case report.FormatGrid:
		return &GridRenderer{}, nil
	case report.FormatYAML:
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported output format %q", report.ErrInvalidOption, format)
	}
}

// validateWords rejects entries whose word is not valid UTF-8.
func validateWords(entries []frequency.Entry) error {
	for i, e := range entries {
		if !utf8.ValidString(e.Word) {
			return fmt.Errorf("%w: entry %d word %q is not valid UTF-8", report.ErrSerialization, i, e.Word)
		}
	}
	return nil
}
