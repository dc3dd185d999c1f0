// Command cleanup physically removes soft-deleted flashcards older than the
// configured retention period. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres"
	flashcardrepo "github.com/xxxdendexxx/10x-cards/internal/adapter/postgres/flashcard"
	generationrepo "github.com/xxxdendexxx/10x-cards/internal/adapter/postgres/generation"
	"github.com/xxxdendexxx/10x-cards/internal/app"
	"github.com/xxxdendexxx/10x-cards/internal/config"
	"github.com/xxxdendexxx/10x-cards/internal/service/flashcard"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, closer := app.NewLogger(cfg.Log)
	defer closer.Close()

	if err := run(cfg, logger); err != nil {
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return err
	}
	defer pool.Close()

	svc := flashcard.NewService(logger, flashcardrepo.New(pool), generationrepo.New(pool))

	retention := time.Duration(cfg.Flashcards.HardDeleteRetentionDays) * 24 * time.Hour

	deleted, err := svc.PurgeDeleted(ctx, retention)
	if err != nil {
		logger.Error("hard delete failed",
			slog.String("error", err.Error()),
			slog.Duration("retention", retention),
		)
		return err
	}

	logger.Info("hard delete completed",
		slog.Int64("deleted", deleted),
		slog.Duration("retention", retention),
	)
	return nil
}
