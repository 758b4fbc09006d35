package ports

import (
	"io"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
)

// TextExtractor converts raw document bytes into plain UTF-8 text.
type TextExtractor interface {
	Extract(r io.Reader) (string, error)
}

// TextExtractorProvider looks up the extractor for a concrete document kind.
type TextExtractorProvider interface {
	ExtractorFor(kind document.Kind) (TextExtractor, error)
}
