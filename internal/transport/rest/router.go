package rest

import (
	"net/http"

	"github.com/xxxdendexxx/10x-cards/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewMux.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Generation *GenerationHandler
	Flashcard  *FlashcardHandler
}

// NewMux registers all routes. generateLimit wraps POST /api/generate and
// may be nil. Callers wrap the mux in the global middleware chain, which
// must include middleware.Auth for protected routes to see a user.
func NewMux(h Handlers, generateLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.Handle("POST /api/auth/logout", protected(h.Auth.Logout))

	mux.Handle("POST /api/generate", protected(h.Generation.Generate, generateLimit))
	mux.Handle("GET /api/generations/{id}", protected(h.Generation.Get))

	mux.Handle("POST /api/flashcards", protected(h.Flashcard.Create))
	mux.Handle("GET /api/flashcards", protected(h.Flashcard.List))
	mux.Handle("PUT /api/flashcards/{id}", protected(h.Flashcard.Update))
	mux.Handle("DELETE /api/flashcards/{id}", protected(h.Flashcard.Delete))

	return mux
}

// protected rejects anonymous requests before any of mws run.
func protected(fn http.HandlerFunc, mws ...middleware.Middleware) http.Handler {
	return middleware.Chain(append([]middleware.Middleware{middleware.RequireAuth}, mws...)...)(fn)
}
