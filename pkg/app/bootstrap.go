package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/ghuser/lendhub/pkg/config"
	"github.com/ghuser/lendhub/pkg/database"
	"github.com/ghuser/lendhub/pkg/discovery"
	"github.com/ghuser/lendhub/pkg/events"
	"github.com/ghuser/lendhub/pkg/logger"
	"github.com/ghuser/lendhub/pkg/redisx"
	"github.com/ghuser/lendhub/pkg/remote"
	"github.com/ghuser/lendhub/pkg/telemetry"
)

// Bootstrap wires the shared infrastructure every lendhub binary needs:
// telemetry, crash reporting, the database pool, the event bus, Redis, the
// discovery registry, and the discovery-backed remote client.
//
// withForwarder enables the event bus outbox forwarder; server binaries that
// publish events want it, the worker does not.
//
// The returned metrics handler serves Prometheus scrapes. The returned cleanup
// func tears everything down in reverse order; call it exactly once, on exit.
func Bootstrap(ctx context.Context, cfg *config.Config, log logger.Logger, withForwarder bool) (*Application, http.Handler, func(), error) {
	if cfg.InstanceID == "" {
		host, err := os.Hostname()
		if err != nil {
			host = "unknown"
		}
		cfg.InstanceID = fmt.Sprintf("%s-%d", host, os.Getpid())
	}

	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("setup otel: %w", err)
	}

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		telemetry.SentryFlush()
		_ = otelShutdown(ctx)
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info("database pool connected")

	var eventBus *events.EventBus
	if withForwarder {
		eventBus, err = events.NewEventBusWithForwarder(cfg, log)
	} else {
		eventBus, err = events.NewEventBus(cfg, log)
	}
	if err != nil {
		pool.Close()
		telemetry.SentryFlush()
		_ = otelShutdown(ctx)
		return nil, nil, nil, fmt.Errorf("setup event bus: %w", err)
	}
	if withForwarder {
		if err := eventBus.StartForwarder(ctx); err != nil {
			_ = eventBus.Close()
			pool.Close()
			telemetry.SentryFlush()
			_ = otelShutdown(ctx)
			return nil, nil, nil, fmt.Errorf("start event forwarder: %w", err)
		}
	}

	redisClient, err := redisx.NewRedisClient(cfg)
	if err != nil {
		_ = eventBus.Close()
		pool.Close()
		telemetry.SentryFlush()
		_ = otelShutdown(ctx)
		return nil, nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	log.Info("redis connected")

	registry := discovery.NewRegistry(redisClient.Client(), cfg.DiscoveryTTL, log)

	a := &Application{
		Cfg:      cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Registry: registry,
		Remote:   remote.NewClient(registry, cfg.RemoteTimeout),
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = eventBus.Close()
		pool.Close()
		telemetry.SentryFlush()
		_ = otelShutdown(ctx)
	}
	return a, metricsHandler, cleanup, nil
}
