package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ports "blog-post-service/internal/domain/ports/output"
	"blog-post-service/internal/infrastructure/config"
	"blog-post-service/internal/infrastructure/inbound/http/middleware"
	post_http "blog-post-service/internal/infrastructure/inbound/http/post"
	"blog-post-service/internal/infrastructure/inbound/http/respond"
)

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

type Server struct {
	postAPI *post_http.PostHTTPService
	cfg     config.HTTPServer
	log     ports.Logger
	metrics ports.MetricsProvider
	server  *http.Server
}

func NewServer(postAPI *post_http.PostHTTPService, cfg config.HTTPServer, log ports.Logger, metrics ports.MetricsProvider) *Server {
	s := &Server{
		postAPI: postAPI,
		cfg:     cfg,
		log:     log,
		metrics: metrics,
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler builds the routed handler with its middleware chain. Metrics sees
// the recovered 500 of a panicking handler, and the request reaches the mux
// unchanged so the matched route pattern is visible to it.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.postAPI.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", s.healthz)

	var handler http.Handler = mux
	handler = middleware.Recover(s.log)(handler)
	handler = middleware.Metrics(s.metrics)(handler)
	handler = middleware.Logging(s.log)(handler)
	handler = middleware.RequestID()(handler)
	return handler
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
