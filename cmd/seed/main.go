// Command seed populates a running deployment with sample catalog and
// registry data through the public endpoints. Intended for development and
// demos; run it after the book and reader services are up and registered.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ghuser/lendhub/pkg/config"
	"github.com/ghuser/lendhub/pkg/discovery"
	"github.com/ghuser/lendhub/pkg/logger"
	"github.com/ghuser/lendhub/pkg/redisx"
	"github.com/ghuser/lendhub/pkg/remote"
)

type seedBook struct {
	Title string `json:"title"`
}

type seedReader struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

var books = []seedBook{
	{Title: "The Go Programming Language"},
	{Title: "Designing Data-Intensive Applications"},
	{Title: "Release It!"},
}

var readers = []seedReader{
	{FirstName: "Ada", LastName: "Lovelace"},
	{FirstName: "Grace", LastName: "Hopper"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg.ServiceName = "lendhub-seed"
	log := logger.New(cfg)

	redisClient, err := redisx.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close() //nolint:errcheck

	registry := discovery.NewRegistry(redisClient.Client(), cfg.DiscoveryTTL, log)
	client := remote.NewClient(registry, cfg.RemoteTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, b := range books {
		var created struct {
			ID int64 `json:"id"`
		}
		if err := client.PostJSON(ctx, discovery.ServiceBooks, "/book", b, &created); err != nil {
			log.Error("failed to seed book", "title", b.Title, "error", err)
			os.Exit(1)
		}
		log.Info("seeded book", "id", created.ID, "title", b.Title)
	}

	for _, rd := range readers {
		var created struct {
			ID int64 `json:"id"`
		}
		if err := client.PostJSON(ctx, discovery.ServiceReaders, "/reader", rd, &created); err != nil {
			log.Error("failed to seed reader", "name", rd.FirstName+" "+rd.LastName, "error", err)
			os.Exit(1)
		}
		log.Info("seeded reader", "id", created.ID, "name", rd.FirstName+" "+rd.LastName)
	}

	log.Info("seeding complete", "books", len(books), "readers", len(readers))
}
