// Package server provides the HTTP REST API of the vacancy tracker: the
// listings table, chart stats, settings, refresh trigger, and mark-viewed
// commands.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrei/vacancy-tracker/internal/config"
	"github.com/andrei/vacancy-tracker/internal/refresh"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	coord      *refresh.Coordinator
	settings   *config.SettingsHolder
	auth       *config.AuthConfig
	jwtService *JWTService
}

// Config holds server configuration. JWT may be nil when Auth is
// disabled.
type Config struct {
	Port int
	Auth *config.AuthConfig
	JWT  *config.JWTConfig
}

// New creates a server around an already-hydrated coordinator.
func New(cfg Config, coord *refresh.Coordinator, settings *config.SettingsHolder) (*Server, error) {
	s := &Server{
		coord:    coord,
		settings: settings,
		auth:     cfg.Auth,
	}
	if s.auth == nil {
		s.auth = &config.AuthConfig{}
	}
	if s.auth.Enabled() {
		if cfg.JWT == nil {
			return nil, fmt.Errorf("auth is enabled but no JWT config was provided")
		}
		s.jwtService = NewJWTService(cfg.JWT)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	mux.HandleFunc("GET /listings", s.handleListListings)
	mux.HandleFunc("POST /refresh", s.requireAuth(s.handleRefresh))
	mux.HandleFunc("POST /listings/mark-viewed", s.requireAuth(s.handleMarkViewed))
	mux.HandleFunc("POST /listings/mark-all-viewed", s.requireAuth(s.handleMarkAllViewed))

	mux.HandleFunc("GET /stats/hourly", s.handleHourlyStats)
	mux.HandleFunc("GET /stats/daily", s.handleDailyStats)

	mux.HandleFunc("GET /settings", s.handleGetSettings)
	mux.HandleFunc("PUT /settings", s.requireAuth(s.handleUpdateSettings))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[server] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[server] error: %v", err)
		}
	}()

	<-stop
	log.Println("[server] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("[server] stopped")
	return nil
}

// Handler exposes the routing stack for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers for the desktop/web client.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[server] %s %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
