package textextraction

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor handles PDF files. It tries the Go library first,
// then falls back to pdftotext if enabled.
type PDFExtractor struct {
	FallbackPdftotext bool
	cmdExecutor       ports.CommandExecutor
}

func (e *PDFExtractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	text, err := extractPDFText(data)
	if err != nil && e.FallbackPdftotext && e.cmdExecutor != nil {
		text, err = e.extractPdftotext(data)
	}
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return text, nil
}

func extractPDFText(data []byte) (text string, err error) {
	// The library panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		buf.WriteString(pageText)
	}
	return buf.String(), nil
}

// extractPdftotext writes data to a temp file because pdftotext only reads paths.
func (e *PDFExtractor) extractPdftotext(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "wordfreq-pdf-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	stdout, _, err := e.cmdExecutor.Execute("pdftotext", "-layout", tmpPath, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return stdout, nil
}
