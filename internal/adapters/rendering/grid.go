package rendering

import (
	"bytes"
	"strconv"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/olekukonko/tablewriter"
)

// GridRenderer renders a bordered table for terminals.
type GridRenderer struct{}

// Render implements ports.Renderer. An empty sequence renders as EmptyPlaceholder.
func (r *GridRenderer) Render(entries []frequency.Entry) ([]byte, error) {
	if err := validateWords(entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []byte(EmptyPlaceholder + "\n"), nil
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Word", "Count"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, e := range entries {
		table.Append([]string{e.Word, strconv.FormatUint(e.Count, 10)})
	}
	table.Render()
	return buf.Bytes(), nil
}

// ContentType implements ports.Renderer.
func (r *GridRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}
