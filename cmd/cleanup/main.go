// Command cleanup deletes samples whose expiration date passed more than the
// configured grace period ago, in batches, auditing every deletion. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres/audit"
	samplerepo "github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres/sample"
	"github.com/heartmarshall/sampletracker-backend/internal/app"
	"github.com/heartmarshall/sampletracker-backend/internal/config"
	"github.com/heartmarshall/sampletracker-backend/internal/service/sample"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := sample.NewService(logger, samplerepo.New(pool), auditrepo.New(pool), postgres.NewTxManager(pool))

	cutoff := time.Now().UTC().Add(-cfg.Cleanup.Grace)

	res, err := svc.PurgeExpired(ctx, cutoff, cfg.Cleanup.BatchSize)
	if err != nil {
		logger.Error("purge expired samples failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
			slog.Int("deleted", res.Deleted),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("purge expired samples completed",
		slog.Int("deleted", res.Deleted),
		slog.Int("batches", res.Batches),
		slog.Time("cutoff", cutoff),
	)
}
