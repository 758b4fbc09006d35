package cli

import (
	"io"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/settings"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"github.com/spf13/cobra"
)

// Dependencies are the collaborators the commands are built from.
// The factories receive the loaded settings so adapters follow the configuration.
type Dependencies struct {
	Service        ports.FrequencyService
	SettingsFinder ports.FileFinder
	NewSettings    func(path string, required bool) ports.SettingsProvider
	NewExtractors  func(s settings.Settings) ports.TextExtractorProvider
	NewInput       func(extractors ports.TextExtractorProvider, progress io.Writer) ports.InputSource
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	if deps.Service == nil {
		panic("frequency service cannot be nil")
	}
	if deps.NewSettings == nil || deps.NewExtractors == nil || deps.NewInput == nil {
		panic("dependency factories cannot be nil")
	}

	rootCmd := &cobra.Command{
		Use:   "wordfreq",
		Short: "wordfreq counts how often each word appears in a text.",
		Long: `wordfreq reads text from a file or standard input, counts the words in it
and prints a frequency report as a table, JSON, CSV, a bordered grid or YAML.
Markdown, HTML, PDF and DOCX documents are reduced to their text first.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to a settings file (default: $WORDFREQ_CONFIG or the per-user config file).")

	rootCmd.AddCommand(NewCountCommand(deps))
	rootCmd.AddCommand(NewServeCommand(deps))
	rootCmd.AddCommand(NewFormatsCommand())

	return rootCmd
}
