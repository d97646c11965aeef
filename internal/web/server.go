package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/profile-normalizer/internal/config"
	"github.com/profile-normalizer/internal/transform"
	"github.com/profile-normalizer/internal/web/handlers"
	"github.com/profile-normalizer/internal/web/middleware"
)

// Server represents the preview web server
type Server struct {
	config     config.WebConfig
	jobs       *transform.Registry
	db         handlers.Pinger
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server instance. db may be nil when the
// server runs on built-in vocabularies without a database.
func NewServer(cfg config.WebConfig, jobs *transform.Registry, db handlers.Pinger) *Server {
	s := &Server{
		config: cfg,
		jobs:   jobs,
		db:     db,
	}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	apiHandler := &handlers.APIHandler{
		Jobs:      s.jobs,
		OnPreview: recordPreview,
	}
	if s.db != nil {
		apiHandler.DB = s.db
	}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", apiHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/jobs", apiHandler.ListJobs).Methods(http.MethodGet)
	api.HandleFunc("/normalize/{job}", apiHandler.Normalize).Methods(http.MethodPost, http.MethodOptions)

	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging())
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Starting preview server")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}
