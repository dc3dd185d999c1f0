// Package cardsclient is a typed client for the 10x-cards REST API.
package cardsclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout outlasts the server's default write timeout, so a slow
// generate call ends with the server's error response rather than a
// client-side timeout.
const DefaultTimeout = 3 * time.Minute

// Client calls the API. It holds the current token pair and refreshes it
// once when an authenticated call gets 401.
type Client struct {
	http *resty.Client

	mu     sync.RWMutex
	tokens Tokens
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.http.BaseURL
		timeout := c.http.GetClient().Timeout
		c.http = resty.NewWithClient(hc).SetBaseURL(base)
		if hc.Timeout == 0 {
			c.http.SetTimeout(timeout)
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(DefaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.SetHeader("Accept", "application/json")
	return c
}

// SetTokens installs a token pair obtained elsewhere.
func (c *Client) SetTokens(t Tokens) {
	c.mu.Lock()
	c.tokens = t
	c.mu.Unlock()
}

// Tokens returns the current token pair.
func (c *Client) Tokens() Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}

// Register creates an account and stores the returned tokens.
func (c *Client) Register(ctx context.Context, email, password, confirmPassword string) (*Tokens, error) {
	var out Tokens
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "", func(r *resty.Request) {
		r.SetBody(map[string]string{
			"email":           email,
			"password":        password,
			"confirmPassword": confirmPassword,
		})
	}, &out)
	if err != nil {
		return nil, err
	}
	c.SetTokens(out)
	return &out, nil
}

// Login authenticates and stores the returned tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*Tokens, error) {
	var out Tokens
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", func(r *resty.Request) {
		r.SetBody(map[string]string{"email": email, "password": password})
	}, &out)
	if err != nil {
		return nil, err
	}
	c.SetTokens(out)
	return &out, nil
}

// Refresh rotates the stored refresh token.
func (c *Client) Refresh(ctx context.Context) (*Tokens, error) {
	refresh := c.Tokens().RefreshToken
	if refresh == "" {
		return nil, ErrNotAuthenticated
	}

	var out Tokens
	err := c.do(ctx, http.MethodPost, "/api/auth/refresh", "", func(r *resty.Request) {
		r.SetBody(map[string]string{"refreshToken": refresh})
	}, &out)
	if err != nil {
		return nil, err
	}
	c.SetTokens(out)
	return &out, nil
}

// Logout revokes all of the user's refresh tokens and forgets the local pair.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doAuthed(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetTokens(Tokens{})
	return nil
}

// Generate asks the API for flashcard proposals for sourceText.
func (c *Client) Generate(ctx context.Context, sourceText string) (*GenerateResult, error) {
	var out GenerateResult
	err := c.doAuthed(ctx, http.MethodPost, "/api/generate", func(r *resty.Request) {
		r.SetBody(map[string]string{"sourceText": sourceText})
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetGeneration returns one of the caller's generation records.
func (c *Client) GetGeneration(ctx context.Context, id int64) (*Generation, error) {
	var out Generation
	err := c.doAuthed(ctx, http.MethodGet, "/api/generations/{id}", func(r *resty.Request) {
		r.SetPathParam("id", strconv.FormatInt(id, 10))
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFlashcards saves cards in one request.
func (c *Client) CreateFlashcards(ctx context.Context, cards []NewFlashcard) ([]Flashcard, error) {
	var out struct {
		Flashcards []Flashcard `json:"flashcards"`
	}
	err := c.doAuthed(ctx, http.MethodPost, "/api/flashcards", func(r *resty.Request) {
		r.SetBody(map[string]any{"flashcards": cards})
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Flashcards, nil
}

// ListFlashcards returns one page of the caller's flashcards.
func (c *Client) ListFlashcards(ctx context.Context, p ListParams) (*FlashcardPage, error) {
	q := make(map[string]string, 4)
	if p.Page > 0 {
		q["page"] = strconv.Itoa(p.Page)
	}
	if p.PageSize > 0 {
		q["pageSize"] = strconv.Itoa(p.PageSize)
	}
	if p.SortBy != "" {
		q["sortBy"] = p.SortBy
	}
	if p.Filter != "" {
		q["filter"] = p.Filter
	}

	var out FlashcardPage
	err := c.doAuthed(ctx, http.MethodGet, "/api/flashcards", func(r *resty.Request) {
		r.SetQueryParams(q)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFlashcard applies a partial update to a persisted card.
func (c *Client) UpdateFlashcard(ctx context.Context, id string, u FlashcardUpdate) (*Flashcard, error) {
	var out Flashcard
	err := c.doAuthed(ctx, http.MethodPut, "/api/flashcards/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id).SetBody(u.body())
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFlashcard soft-deletes a card.
func (c *Client) DeleteFlashcard(ctx context.Context, id string) error {
	return c.doAuthed(ctx, http.MethodDelete, "/api/flashcards/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id)
	}, nil)
}

// doAuthed sends an authenticated request. A 401 triggers one refresh and
// one retry when a refresh token is available.
func (c *Client) doAuthed(ctx context.Context, method, path string, build func(*resty.Request), out any) error {
	tokens := c.Tokens()
	if tokens.AccessToken == "" {
		return ErrNotAuthenticated
	}

	err := c.do(ctx, method, path, tokens.AccessToken, build, out)
	if !IsStatus(err, http.StatusUnauthorized) || tokens.RefreshToken == "" {
		return err
	}

	refreshed, rerr := c.Refresh(ctx)
	if rerr != nil {
		return err
	}
	return c.do(ctx, method, path, refreshed.AccessToken, build, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, build func(*resty.Request), out any) error {
	var errBody errorBody
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetError(&errBody)
	if token != "" {
		req.SetAuthToken(token)
	}
	if out != nil {
		req.SetResult(out)
	}
	if build != nil {
		build(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("cardsclient: %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return newAPIError(resp.StatusCode(), &errBody)
	}
	return nil
}
