package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/AntonioJCosta/wordfreq/internal/handlers/api"
	"github.com/AntonioJCosta/wordfreq/internal/handlers/ui"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the 'serve' subcommand.
func NewServeCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve word frequency reports over HTTP.",
		Long: `Starts an HTTP API. POST a document body to /api/frequencies and the
report comes back in the requested format. Query parameters format, sort_by, top,
min_len, ignore_case, pretty and input_format override the configured defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServeCmd(cmd, deps)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default from settings, :8090).")
	return cmd
}

func runServeCmd(cmd *cobra.Command, deps Dependencies) error {
	s, source, err := loadSettings(cmd, deps)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		s.Server.Addr, _ = cmd.Flags().GetString("addr")
		if s.Server.Addr == "" {
			return fmt.Errorf("--addr cannot be empty")
		}
	}

	log := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), nil))
	srv := api.NewServer(deps.Service, deps.NewExtractors(s), log, s)

	httpServer := &http.Server{
		Addr:              s.Server.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	fmt.Fprintln(cmd.ErrOrStderr(), ui.InfoColor(fmt.Sprintf("Listening on %s", s.Server.Addr)), ui.DetailColor(fmt.Sprintf("(settings: %s)", source)))
	if err := serve(cmd.Context(), httpServer, log); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), ui.SuccessColor("Server stopped."))
	return nil
}

// serve runs httpServer until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, httpServer *http.Server, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
