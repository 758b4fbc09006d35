package cli

import (
	"fmt"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/settings"
	"github.com/spf13/cobra"
)

type countCommandFlags struct {
	path     string
	kind     document.Kind
	opts     report.Options
	progress bool
}

// parseCountFlags layers explicitly set flags over the loaded settings.
func parseCountFlags(cmd *cobra.Command, args []string, s settings.Settings) (countCommandFlags, error) {
	flags := countCommandFlags{
		opts: s.Report,
		kind: s.InputFormat,
	}
	fs := cmd.Flags()

	file, _ := fs.GetString("file")
	switch {
	case len(args) == 1 && file != "":
		return flags, fmt.Errorf("%w: give the input file either as an argument or with --file, not both", report.ErrInvalidOption)
	case len(args) == 1:
		flags.path = args[0]
	default:
		flags.path = file
	}

	if fs.Changed("ignore-case") {
		flags.opts.IgnoreCase, _ = fs.GetBool("ignore-case")
	}
	if fs.Changed("min-len") {
		flags.opts.MinLength, _ = fs.GetInt("min-len")
	}
	if fs.Changed("top") {
		flags.opts.Top, _ = fs.GetInt("top")
	}
	if fs.Changed("sort-by") {
		v, _ := fs.GetString("sort-by")
		flags.opts.SortBy = report.SortMode(v)
	}
	if fs.Changed("format") {
		v, _ := fs.GetString("format")
		flags.opts.Format = report.Format(v)
	}
	if asJSON, _ := fs.GetBool("json"); asJSON {
		if fs.Changed("format") && flags.opts.Format != report.FormatJSON {
			return flags, fmt.Errorf("%w: --json conflicts with --format %s", report.ErrInvalidOption, flags.opts.Format)
		}
		flags.opts.Format = report.FormatJSON
	}
	if fs.Changed("pretty") {
		flags.opts.Pretty, _ = fs.GetBool("pretty")
	}
	if fs.Changed("input-format") {
		v, _ := fs.GetString("input-format")
		kind, err := document.ParseKind(v)
		if err != nil {
			return flags, fmt.Errorf("%w: %v", report.ErrInvalidOption, err)
		}
		flags.kind = kind
	}
	flags.progress, _ = fs.GetBool("progress")

	opts, err := flags.opts.Validate()
	if err != nil {
		return flags, err
	}
	flags.opts = opts
	return flags, nil
}
