package rendering

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
)

// JSONRenderer renders an array of {"word", "count"} objects.
type JSONRenderer struct {
	Pretty bool
}

// Render returns compact JSON, or two-space indented JSON when Pretty is set.
func (r *JSONRenderer) Render(entries []frequency.Entry) ([]byte, error) {
	if err := validateWords(entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []frequency.Entry{} // Always an array, never null.
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// ContentType implements ports.Renderer.
func (r *JSONRenderer) ContentType() string {
	return "application/json"
}
