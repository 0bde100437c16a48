package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	renderer "github.com/custodia-labs/titanic-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
	"github.com/custodia-labs/titanic-cli/internal/logger"
)

// Server exposes the dashboard over HTTP.
type Server struct {
	dashboard driving.DashboardService
	router    *chi.Mux
	renderer  *renderer.Renderer
}

// NewServer creates a server and registers its routes.
func NewServer(dashboard driving.DashboardService) (*Server, error) {
	if dashboard == nil {
		return nil, ErrMissingDashboardService
	}

	s := &Server{
		dashboard: dashboard,
		router:    chi.NewRouter(),
		renderer:  renderer.Plain(renderer.DefaultWidth),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(logRequests)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api/sections", func(r chi.Router) {
		r.Get("/", s.handleListSections)
		r.Get("/{section}", s.handleRenderSection)
	})
}

// Handler returns the router, for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("HTTP server on http://%s", addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

// logRequests writes one verbose log line per request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("%s %s %d %s [%s]", r.Method, r.URL.RequestURI(), ww.Status(),
			time.Since(start), middleware.GetReqID(r.Context()))
	})
}
