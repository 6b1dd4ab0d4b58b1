package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	post_service "blog-post-service/internal/application/service/post"
	"blog-post-service/internal/infrastructure/config"
	delivery_http "blog-post-service/internal/infrastructure/inbound/http"
	post_http "blog-post-service/internal/infrastructure/inbound/http/post"
	metrics_server "blog-post-service/internal/infrastructure/inbound/metrics"
	"blog-post-service/internal/infrastructure/logger"
	prometheus_metrics "blog-post-service/internal/infrastructure/outbound/metrics/prometheus"
	post_memory "blog-post-service/internal/infrastructure/outbound/repository/post/memory"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env).With(slog.String("service", "blog-post-service"))

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	metrics.SetServiceHealth(true)
	metrics.SetPostsStored(0)

	postRepo := post_memory.NewPostRepository(log)
	postService := post_service.NewPostService(
		postRepo,
		log,
		metrics,
		post_service.WithPageSize(cfg.Pagination.PageSize, cfg.Pagination.MaxPageSize),
	)

	postHTTPApi := post_http.NewPostHTTPService(postService, log, cfg.Pagination.MaxPageSize)
	httpServer := delivery_http.NewServer(postHTTPApi, cfg.HTTPServer, log, metrics)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
