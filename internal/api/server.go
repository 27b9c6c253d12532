package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lumina/creatorhub/internal/auth"
)

// Server is the HTTP front of the application.
type Server struct {
	handler   http.Handler
	handlers  *Handlers
	server    *http.Server
	router    *chi.Mux
	apiRouter chi.Router
}

// NewServer creates the API server. authManager may be nil for demo-only
// deployments.
func NewServer(handlers *Handlers, authManager *auth.Manager) *Server {
	router, apiRouter := SetupRoutes(handlers, authManager)
	return &Server{
		handler:   router,
		handlers:  handlers,
		router:    router,
		apiRouter: apiRouter,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       time.Minute,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       120 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.handler
}
