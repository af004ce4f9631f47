package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
	httpmiddleware "github.com/Kalysbe/quik-api/core/infrastructure/transport/http/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	addr   string
}

// NewServer creates a new HTTP server bound to addr.
func NewServer(addr string) *Server {
	r := chi.NewRouter()

	// Add core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpmiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(httpmiddleware.Metrics)

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	return &Server{
		router: r,
		addr:   addr,
	}
}

// Router returns the chi router
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.StartAsync()
}

// StartAsync starts the HTTP server without blocking
func (s *Server) StartAsync() error {
	log := logging.New("http")
	log.Infof("Starting HTTP server on %s", s.addr)

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("HTTP server listening on http://%s", s.addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("HTTP server error: %v", err)
		}
	}()

	return nil
}

// Stop stops the HTTP server gracefully
func (s *Server) Stop() error {
	log := logging.New("http")
	log.Infof("Shutting down HTTP server")

	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
		if closeErr := s.server.Close(); closeErr != nil {
			log.Errorf("Error force closing HTTP server: %v", closeErr)
		}
		return err
	}

	log.Infof("HTTP server stopped")
	return nil
}
