package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/xxxdendexxx/10x-cards/internal/adapter/llm/openrouter"
	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres"
	flashcardrepo "github.com/xxxdendexxx/10x-cards/internal/adapter/postgres/flashcard"
	generationrepo "github.com/xxxdendexxx/10x-cards/internal/adapter/postgres/generation"
	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres/generationerror"
	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres/token"
	"github.com/xxxdendexxx/10x-cards/internal/adapter/postgres/user"
	"github.com/xxxdendexxx/10x-cards/internal/auth"
	"github.com/xxxdendexxx/10x-cards/internal/config"
	authsvc "github.com/xxxdendexxx/10x-cards/internal/service/auth"
	"github.com/xxxdendexxx/10x-cards/internal/service/flashcard"
	"github.com/xxxdendexxx/10x-cards/internal/service/generation"
	"github.com/xxxdendexxx/10x-cards/internal/transport/middleware"
	"github.com/xxxdendexxx/10x-cards/internal/transport/rest"
)

type services struct {
	gateway    *openrouter.Client
	auth       *authsvc.Service
	generation *generation.Service
	flashcard  *flashcard.Service
}

type pinger interface {
	Ping(ctx context.Context) error
}

// pooledDB is what the repositories need from the pool.
type pooledDB interface {
	postgres.Querier
	postgres.Beginner
}

func newServices(cfg *config.Config, db pooledDB, logger *slog.Logger) *services {
	users := user.New(db)
	tokens := token.New(db)
	generations := generationrepo.New(db)
	errorLogs := generationerror.New(db)
	cards := flashcardrepo.New(db)
	tx := postgres.NewTxManager(db)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	passwords := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	gw := openrouter.New(cfg.OpenRouter, logger)

	return &services{
		gateway:    gw,
		auth:       authsvc.NewService(logger, users, tokens, tx, jwt, passwords, cfg.Auth),
		generation: generation.NewService(logger, generations, errorLogs, gw),
		flashcard:  flashcard.NewService(logger, cards, generations),
	}
}

// newHandler builds the routed handler with the global middleware chain.
// The returned stop func releases the rate limiter's cleanup goroutine.
func newHandler(cfg *config.Config, svcs *services, db pinger, logger *slog.Logger) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	mux := rest.NewMux(rest.Handlers{
		Health:     rest.NewHealthHandler(db, svcs.gateway, BuildVersion()),
		Auth:       rest.NewAuthHandler(svcs.auth, logger),
		Generation: rest.NewGenerationHandler(svcs.generation, logger),
		Flashcard:  rest.NewFlashcardHandler(svcs.flashcard, logger),
	}, limiter.Limit(cfg.RateLimit.GeneratePerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svcs.auth),
	)(mux)

	return handler, limiter.Stop
}
