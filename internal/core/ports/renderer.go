package ports

import (
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
)

// Renderer serializes an ordered sequence of entries into one external representation.
type Renderer interface {
	// Render returns the complete output, or an error wrapping report.ErrSerialization.
	// No partial output is returned on failure.
	Render(entries []frequency.Entry) ([]byte, error)
	// ContentType is the media type of the rendered output.
	ContentType() string
}

// RendererProvider looks up the renderer for an output format.
type RendererProvider interface {
	RendererFor(format report.Format, pretty bool) (Renderer, error)
}
