package rendering

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
)

// CSVRenderer renders a "word,count" header followed by one record per entry.
// Words containing commas, quotes or newlines are quoted.
type CSVRenderer struct{}

// Render implements ports.Renderer.
func (r *CSVRenderer) Render(entries []frequency.Entry) ([]byte, error) {
	if err := validateWords(entries); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"word", "count"}); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrSerialization, err)
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Word, strconv.FormatUint(e.Count, 10)}); err != nil {
			return nil, fmt.Errorf("%w: %v", report.ErrSerialization, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// ContentType implements ports.Renderer.
func (r *CSVRenderer) ContentType() string {
	return "text/csv; charset=utf-8"
}
