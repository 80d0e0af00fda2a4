// Package server exposes the analysis pipeline over HTTP for the
// browser extension.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/claimsift/claimsift/internal/model"
	"github.com/claimsift/claimsift/internal/pipeline"
)

// Server wires the analyzer into a chi router.
type Server struct {
	router   *chi.Mux
	analyzer *pipeline.Analyzer
	limiter  *clientLimiter
}

// NewServer creates the HTTP server around an analyzer.
func NewServer(analyzer *pipeline.Analyzer, cfg model.ServerConfig) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(securityHeaders)

	s := &Server{
		router:   r,
		analyzer: analyzer,
		limiter:  newClientLimiter(cfg.RequestsPerMinute),
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleHome)
	s.router.Get("/health", s.handleHealth)

	s.router.Group(func(r chi.Router) {
		r.Use(s.limiter.middleware)
		r.Post("/analyze", s.handleAnalyze)
	})
}

// Handler returns the root handler, for tests and custom servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts listening on addr.
func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
