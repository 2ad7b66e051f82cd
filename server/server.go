package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"naver-keyword-analyzer/services"
	"naver-keyword-analyzer/storage"
	"naver-keyword-analyzer/utils"
)

// Server exposes the analysis pipeline over HTTP for interactive use.
type Server struct {
	httpServer *http.Server
}

// New builds the router and HTTP server. history may be nil when no
// Postgres backend is configured; the reports endpoint then serves an empty
// list. writers receive every analyzed batch.
func New(addr string, pipeline *services.Pipeline, writers []storage.ReportWriter,
	history storage.ReportFetcher, logger *utils.Logger) *Server {

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(120 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	h := &handler{
		pipeline: pipeline,
		writers:  writers,
		history:  history,
		logger:   logger,
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/analyze", h.analyze)
		r.Get("/reports", h.reports)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 150 * time.Second,
		},
	}
}

// Start begins serving. Blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
