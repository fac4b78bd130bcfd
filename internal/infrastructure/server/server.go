// Package server exposes the luci.v1 connect services and the plain HTTP
// probes on one h2c listener.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"connectrpc.com/connect"
	connectcors "connectrpc.com/cors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/eslsoft/luci/api/luci/v1/luciv1connect"
	"github.com/eslsoft/luci/internal/infrastructure/config"
)

const _pingTimeout = 2 * time.Second

// Pinger reports database reachability for the health probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services groups the connect handlers served under /luci.v1.*.
type Services struct {
	Emotion luciv1connect.EmotionServiceHandler
	User    luciv1connect.UserServiceHandler
	Message luciv1connect.MessageServiceHandler
	Quote   luciv1connect.QuoteServiceHandler
	Config  luciv1connect.ConfigServiceHandler
	Word    luciv1connect.WordServiceHandler
}

// Server represents the application server
type Server struct {
	config     *config.Config
	logger     *logrus.Logger
	db         Pinger
	handler    http.Handler
	httpServer *http.Server
	started    time.Time
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logrus.Logger, db Pinger, services *Services) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger,
		db:      db,
		started: time.Now(),
	}
	s.handler = s.routes(services)
	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.HTTPPort)),
		Handler:           h2c.NewHandler(s.handler, &http2.Server{}),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
	}
	return s
}

func (s *Server) routes(services *Services) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)

	opts := connect.WithInterceptors(Logger(s.logger))
	r.Mount(luciv1connect.NewEmotionServiceHandler(services.Emotion, opts))
	r.Mount(luciv1connect.NewUserServiceHandler(services.User, opts))
	r.Mount(luciv1connect.NewMessageServiceHandler(services.Message, opts))
	r.Mount(luciv1connect.NewQuoteServiceHandler(services.Quote, opts))
	r.Mount(luciv1connect.NewConfigServiceHandler(services.Config, opts))
	r.Mount(luciv1connect.NewWordServiceHandler(services.Word, opts))

	return withCORS(r, s.config.Server.AllowedOrigins)
}

func withCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return h
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: connectcors.AllowedMethods(),
		AllowedHeaders: append(connectcors.AllowedHeaders(), requestIDHeader),
		ExposedHeaders: append(connectcors.ExposedHeaders(), requestIDHeader),
		MaxAge:         7200,
	}).Handler(h)
}

// Handler returns the routed handler without the h2c wrapper.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "ok", http.StatusOK
	dbOK := true
	ctx, cancel := context.WithTimeout(r.Context(), _pingTimeout)
	defer cancel()
	if err := s.db.Ping(ctx); err != nil {
		s.logger.WithError(err).Warn("health check: database unreachable")
		status, code, dbOK = "degraded", http.StatusServiceUnavailable, false
	}

	writeJSON(w, code, map[string]any{
		"status":  status,
		"version": s.config.App.Version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.config.App.Version})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	s.logger.Info("Server shutdown complete")
	return nil
}
