package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ghuser/lendhub/pkg/app"
	"github.com/ghuser/lendhub/pkg/config"
	"github.com/ghuser/lendhub/pkg/logger"
	loanEvents "github.com/ghuser/lendhub/services/issuance/domain/events"
)

var (
	loansIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lendhub_loans_issued_total",
		Help: "Total number of loans issued.",
	})
	loansReturned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lendhub_loans_returned_total",
		Help: "Total number of loans returned.",
	})
	openLoans = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lendhub_open_loans",
		Help: "Loans currently open, as seen by the event stream.",
	})
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg.ServiceName = "lendhub-worker"

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	ctx := context.Background()

	a, metricsHandler, cleanup, err := app.Bootstrap(ctx, cfg, log, false)
	if err != nil {
		log.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := registerSubscribers(ctx, a); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}

	// Expose the loan metrics projection for scraping.
	mux := http.NewServeMux()
	mux.Handle("/metrics", metricsHandler)
	metricsSrv := &http.Server{Addr: cfg.WorkerMetricsAddr, Handler: mux}
	go func() {
		log.Info("metrics listening", "addr", metricsSrv.Addr)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	_ = metricsSrv.Close()

	// EventBus.Close() (via cleanup) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires the loan lifecycle event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		loanEvents.TopicLoanIssued:   handleLoanIssued(a),
		loanEvents.TopicLoanReturned: handleLoanReturned(a),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{loanEvents.TopicLoanIssued, loanEvents.TopicLoanReturned})
	return nil
}

// handleLoanIssued returns a handler for loan.issued events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
func handleLoanIssued(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt loanEvents.LoanIssuedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		loansIssued.Inc()
		openLoans.Inc()
		a.Logger.InfoContext(ctx, "loan issued",
			"loan_id", evt.LoanID, "book_id", evt.BookID, "reader_id", evt.ReaderID)
		return nil
	}
}

// handleLoanReturned returns a handler for loan.returned events.
func handleLoanReturned(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt loanEvents.LoanReturnedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		loansReturned.Inc()
		openLoans.Dec()
		a.Logger.InfoContext(ctx, "loan returned",
			"loan_id", evt.LoanID, "book_id", evt.BookID, "reader_id", evt.ReaderID)
		return nil
	}
}
