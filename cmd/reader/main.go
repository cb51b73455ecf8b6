package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/lendhub/pkg/app"
	"github.com/ghuser/lendhub/pkg/config"
	"github.com/ghuser/lendhub/pkg/discovery"
	"github.com/ghuser/lendhub/pkg/httpx"
	"github.com/ghuser/lendhub/pkg/logger"
	"github.com/ghuser/lendhub/pkg/telemetry"
	readerApi "github.com/ghuser/lendhub/services/reader/application/api"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg.ServiceName = "lendhub-reader"

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	ctx := context.Background()

	a, metricsHandler, cleanup, err := app.Bootstrap(ctx, cfg, log, true)
	if err != nil {
		log.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: a.Db,
		Redis:    a.Redis,
		EventBus: a.EventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	readerApi.ReaderRoutes(r, a)

	if err := a.Registry.Register(ctx, discovery.ServiceReaders, cfg.InstanceID, cfg.ReaderAdvertiseAddr); err != nil {
		log.Error("failed to register with discovery", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	go a.Registry.Heartbeat(hbCtx, discovery.ServiceReaders, cfg.InstanceID, cfg.ReaderAdvertiseAddr)
	log.Info("registered with discovery",
		"service", discovery.ServiceReaders, "instance", cfg.InstanceID, "addr", cfg.ReaderAdvertiseAddr)

	srv := httpx.NewServer(cfg.ReaderAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	stopHeartbeat()
	if err := a.Registry.Deregister(ctx, discovery.ServiceReaders, cfg.InstanceID); err != nil {
		log.Warn("failed to deregister from discovery", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
