package textextraction

import (
	"fmt"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// Registry implements ports.TextExtractorProvider for every supported document kind.
type Registry struct {
	cmdExecutor       ports.CommandExecutor
	pdftotextFallback bool
}

// NewRegistry creates a new extractor Registry.
// cmdExecutor runs pdftotext when the PDF library fails and the fallback is enabled;
// it may be nil, which disables the fallback.
func NewRegistry(cmdExecutor ports.CommandExecutor, pdftotextFallback bool) ports.TextExtractorProvider {
	return &Registry{
		cmdExecutor:       cmdExecutor,
		pdftotextFallback: pdftotextFallback && cmdExecutor != nil,
	}
}

// ExtractorFor returns the extractor for kind. KindAuto is treated as plain text.
func (r *Registry) ExtractorFor(kind document.Kind) (ports.TextExtractor, error) {
	switch kind {
	case document.KindText, document.KindAuto, "":
		return &PlainTextExtractor{}, nil
	case document.KindMarkdown:
		return &MarkdownExtractor{}, nil
	case document.KindHTML:
		return &HTMLExtractor{}, nil
	case document.KindPDF:
		return &PDFExtractor{cmdExecutor: r.cmdExecutor, FallbackPdftotext: r.pdftotextFallback}, nil
	case document.KindDOCX:
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", kind)
	}
}
