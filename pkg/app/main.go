package app

import (
	"github.com/ghuser/lendhub/pkg/config"
	"github.com/ghuser/lendhub/pkg/database"
	"github.com/ghuser/lendhub/pkg/discovery"
	"github.com/ghuser/lendhub/pkg/events"
	"github.com/ghuser/lendhub/pkg/logger"
	"github.com/ghuser/lendhub/pkg/redisx"
	"github.com/ghuser/lendhub/pkg/remote"
)

// Application holds shared infrastructure dependencies for a service process.
// Pass to the service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "issuing book", "book_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Cfg      *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *redisx.RedisClient
	Registry *discovery.Registry // registers this instance and resolves peers
	Remote   *remote.Client      // discovery-backed HTTP client for peer services
}
