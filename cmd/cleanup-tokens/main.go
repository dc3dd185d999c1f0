// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Configuration is read like the server's (CONFIG_PATH, .env, environment).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres"
	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres/token"
	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres/user"
	"github.com/xxxdendexxx/10x-cards/internal/app"
	"github.com/xxxdendexxx/10x-cards/internal/auth"
	"github.com/xxxdendexxx/10x-cards/internal/config"
	authsvc "github.com/xxxdendexxx/10x-cards/internal/service/auth"
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		closer.Close()
		os.Exit(1)
	}
	defer pool.Close()

	svc := authsvc.NewService(
		logger,
		user.New(pool),
		token.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		auth.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		cfg.Auth,
	)

	deleted, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("cleanup tokens failed", slog.String("error", err.Error()))
		pool.Close()
		closer.Close()
		os.Exit(1)
	}

	logger.Info("cleanup tokens completed", slog.Int("deleted", deleted))
}
