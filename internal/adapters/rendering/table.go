package rendering

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/mattn/go-runewidth"
)

const minWordWidth = len("WORD")

// cellWidth treats East Asian ambiguous characters as narrow, whatever the locale.
var cellWidth = &runewidth.Condition{EastAsianWidth: false}

// TableRenderer renders a plain left-aligned two-column table.
type TableRenderer struct{}

/*
Render produces

	WORD  COUNT
	----- -----
	hello 3

where the word column is as wide as the widest word in terminal cells (at least 4).
Wide characters such as CJK count as two cells.
An empty sequence renders as EmptyPlaceholder with no header.
*/
func (r *TableRenderer) Render(entries []frequency.Entry) ([]byte, error) {
	if err := validateWords(entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []byte(EmptyPlaceholder + "\n"), nil
	}

	width := minWordWidth
	for _, e := range entries {
		width = max(width, cellWidth.StringWidth(e.Word))
	}

	var buf bytes.Buffer
	writePadded(&buf, "WORD", width)
	buf.WriteString(" COUNT\n")
	buf.WriteString(strings.Repeat("-", width))
	buf.WriteString(" -----\n")
	for _, e := range entries {
		writePadded(&buf, e.Word, width)
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatUint(e.Count, 10))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// ContentType implements ports.Renderer.
func (r *TableRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// writePadded writes s followed by spaces up to width display cells.
func writePadded(buf *bytes.Buffer, s string, width int) {
	buf.WriteString(s)
	if n := width - cellWidth.StringWidth(s); n > 0 {
		buf.WriteString(strings.Repeat(" ", n))
	}
}
