package cli

import (
	"fmt"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"github.com/AntonioJCosta/wordfreq/internal/handlers/ui"
	"github.com/spf13/cobra"
)

var formatDescriptions = map[report.Format]string{
	report.FormatTable: "aligned plain-text columns",
	report.FormatJSON:  "array of {\"word\", \"count\"} objects",
	report.FormatCSV:   "header word,count then one row per entry",
	report.FormatGrid:  "bordered table",
	report.FormatYAML:  "sequence of word/count mappings",
}

var kindDescriptions = map[document.Kind]string{
	document.KindAuto:     "pick by file extension, text for stdin",
	document.KindText:     "UTF-8 text as-is",
	document.KindMarkdown: "rendered text without markup",
	document.KindHTML:     "visible text, scripts and styles skipped",
	document.KindPDF:      "page text, pdftotext as fallback",
	document.KindDOCX:     "paragraph text",
}

// NewFormatsCommand creates the 'formats' subcommand.
func NewFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output and input formats.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.HeaderColor("Output formats (--format):"))
			for _, f := range report.Formats {
				fmt.Fprintf(out, "  %s  %s\n", ui.FormatNameColor(fmt.Sprintf("%-8s", f)), ui.DetailColor(formatDescriptions[f]))
			}
			fmt.Fprintln(out, ui.HeaderColor("Input formats (--input-format):"))
			for _, k := range document.Kinds {
				fmt.Fprintf(out, "  %s  %s\n", ui.FormatNameColor(fmt.Sprintf("%-8s", k)), ui.DetailColor(kindDescriptions[k]))
			}
			return nil
		},
	}
}
