package api

import (
	"log/slog"
	"net/http"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/settings"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for wordfreq.
// Every request runs its own pipeline; nothing is shared between requests.
type Server struct {
	router     chi.Router
	service    ports.FrequencyService
	extractors ports.TextExtractorProvider
	log        *slog.Logger
	settings   settings.Settings
}

// NewServer creates and configures the HTTP server.
func NewServer(svc ports.FrequencyService, extractors ports.TextExtractorProvider, log *slog.Logger, s settings.Settings) *Server {
	if svc == nil {
		panic("frequency service cannot be nil")
	}
	if extractors == nil {
		panic("extractors cannot be nil")
	}
	srv := &Server{
		service:    svc,
		extractors: extractors,
		log:        log,
		settings:   s,
	}
	srv.setupRoutes()
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/api/frequencies", s.handleFrequencies)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
