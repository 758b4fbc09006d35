package rendering

import (
	"bytes"
	"fmt"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer renders a sequence of word/count mappings.
type YAMLRenderer struct{}

// Render implements ports.Renderer. An empty sequence renders as "[]".
func (r *YAMLRenderer) Render(entries []frequency.Entry) ([]byte, error) {
	if err := validateWords(entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []frequency.Entry{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrSerialization, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// ContentType implements ports.Renderer.
func (r *YAMLRenderer) ContentType() string {
	return "application/yaml"
}
