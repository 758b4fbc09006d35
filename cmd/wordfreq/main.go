package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonioJCosta/wordfreq/internal/adapters/oscommand"
	"github.com/AntonioJCosta/wordfreq/internal/adapters/rendering"
	"github.com/AntonioJCosta/wordfreq/internal/adapters/settingsfile"
	"github.com/AntonioJCosta/wordfreq/internal/adapters/textextraction"
	"github.com/AntonioJCosta/wordfreq/internal/adapters/tokenization"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/settings"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"github.com/AntonioJCosta/wordfreq/internal/core/services/wordfrequency"
	"github.com/AntonioJCosta/wordfreq/internal/handlers/cli"
	"github.com/AntonioJCosta/wordfreq/internal/handlers/ui"
	"github.com/AntonioJCosta/wordfreq/internal/repositories/input"
)

// Version is set at build time
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmdExec := oscommand.NewOSCommandExecutor()

	tokenizer := tokenization.NewUnicodeTokenizer()
	renderers := rendering.NewRegistry()
	frequencySvc := wordfrequency.NewService(tokenizer, renderers)

	deps := cli.Dependencies{
		Service:        frequencySvc,
		SettingsFinder: settingsfile.NewDefaultFileFinder(),
		NewSettings:    settingsfile.NewYAMLProvider,
		NewExtractors: func(s settings.Settings) ports.TextExtractorProvider {
			return textextraction.NewRegistry(cmdExec, s.PdftotextFallback)
		},
		NewInput: func(extractors ports.TextExtractorProvider, progress io.Writer) ports.InputSource {
			return input.NewSource(os.Stdin, extractors, progress)
		},
	}

	rootCmd := cli.NewRootCommand(Version, deps)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		stop()
		os.Exit(1)
	}
}
