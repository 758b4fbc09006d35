package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"github.com/AntonioJCosta/wordfreq/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewCountCommand creates the 'count' subcommand.
func NewCountCommand(deps Dependencies) *cobra.Command {
	defaults := report.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count word frequencies in a file or standard input.",
		Long: `Reads the whole input, splits it into words (maximal runs of letters),
counts them and prints the report. Without a file, or with "-", standard input is read.
Flags that are not given fall back to the settings file, then to the built-in defaults.`,
		Example: `  wordfreq count book.txt --top 10
  cat notes.md | wordfreq count --input-format markdown --json --pretty
  wordfreq count -f report.pdf --format csv --min-len 4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountCmd(cmd, args, deps)
		},
	}

	cmd.Flags().StringP("file", "f", "", "Input file to read (default: standard input).")
	cmd.Flags().Bool("ignore-case", defaults.IgnoreCase, "Lowercase words before counting. Use --ignore-case=false to count case-sensitively.")
	cmd.Flags().Int("min-len", defaults.MinLength, "Drop words shorter than this many characters.")
	cmd.Flags().Int("top", defaults.Top, "Show only the first N entries (0 means all).")
	cmd.Flags().String("sort-by", string(defaults.SortBy), "Sort order: count or alpha.")
	cmd.Flags().String("format", string(defaults.Format), "Output format: table, json, csv, grid or yaml.")
	cmd.Flags().Bool("json", false, "Shorthand for --format json.")
	cmd.Flags().Bool("pretty", defaults.Pretty, "Indent JSON output.")
	cmd.Flags().String("input-format", string(document.KindAuto), "Input format: auto, text, markdown, html, pdf or docx.")
	cmd.Flags().Bool("progress", false, "Show a progress bar on stderr while reading a file.")

	return cmd
}

func runCountCmd(cmd *cobra.Command, args []string, deps Dependencies) error {
	s, _, err := loadSettings(cmd, deps)
	if err != nil {
		return err
	}

	flags, err := parseCountFlags(cmd, args, s)
	if err != nil {
		return err
	}

	var progress io.Writer
	if flags.progress {
		progress = cmd.ErrOrStderr()
		if flags.path == "" || flags.path == "-" {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor("--progress has no effect when reading standard input."))
		}
	}
	source := deps.NewInput(deps.NewExtractors(s), progress)

	text, err := source.ReadText(flags.path, flags.kind)
	if err != nil {
		return err
	}

	out, err := deps.Service.Report(text, flags.opts)
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
