// Package openrouter is a chat-completion client for the OpenRouter API
// that asks for flashcards in a strict JSON schema.
package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/xxxdendexxx/10x-cards/internal/config"
)

// Client sends chat completions to OpenRouter. It is safe for concurrent use.
type Client struct {
	http       *resty.Client
	log        *slog.Logger
	apiKey     string
	endpoint   string
	referer    string
	title      string
	maxRetries int
	retryDelay time.Duration

	mu           sync.RWMutex
	systemPrompt string
	model        string
	params       ModelParams
	last         *ChatResponse
}

// New creates a client from cfg. A client without an API key is created
// but reports Initialized() == false and refuses to send.
func New(cfg config.OpenRouterConfig, logger *slog.Logger) *Client {
	prompt := cfg.SystemPrompt
	if prompt == "" {
		prompt = DefaultSystemPrompt
	}

	return &Client{
		http:         resty.New().SetTimeout(cfg.Timeout),
		log:          logger.With("adapter", "openrouter"),
		apiKey:       cfg.APIKey,
		endpoint:     cfg.Endpoint,
		referer:      cfg.Referer,
		title:        cfg.Title,
		maxRetries:   cfg.MaxRetries,
		retryDelay:   cfg.InitialRetryDelay,
		systemPrompt: prompt,
		model:        cfg.Model,
		params: ModelParams{
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			TopP:        cfg.TopP,
		},
	}
}

// Initialized reports whether an API key is configured.
func (c *Client) Initialized() bool {
	return c != nil && c.apiKey != ""
}

// Model returns the model name currently sent with requests.
func (c *Client) Model() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// Configure replaces the system prompt, model or individual model params.
func (c *Client) Configure(opts Options) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if opts.SystemPrompt != "" {
		c.systemPrompt = opts.SystemPrompt
	}
	if opts.Model != "" {
		c.model = opts.Model
	}
	if opts.Temperature != nil {
		c.params.Temperature = *opts.Temperature
	}
	if opts.MaxTokens != nil {
		c.params.MaxTokens = *opts.MaxTokens
	}
	if opts.TopP != nil {
		c.params.TopP = *opts.TopP
	}
}

// LastResponse returns the most recent successful response, or nil.
func (c *Client) LastResponse() *ChatResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// SendMessage sends userPrompt with the configured system prompt and schema.
// extraParams are merged into the top-level payload last and override it.
//
// Network errors and 5xx responses are retried with exponential backoff
// starting at the configured delay, at most maxRetries times. Other errors
// fail immediately. After the last attempt its error is returned.
func (c *Client) SendMessage(ctx context.Context, userPrompt string, extraParams map[string]any) (*ChatResponse, error) {
	if !c.Initialized() {
		return nil, ErrNotInitialized
	}

	payload := c.buildPayload(userPrompt, extraParams)

	attempt := 0
	backoff := retry.WithMaxRetries(uint64(max(c.maxRetries, 0)), retry.NewExponential(c.retryDelay))
	backoff = c.logRetries(ctx, &attempt, backoff)

	var result *ChatResponse
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		resp, err := c.send(ctx, payload)
		if err != nil {
			if isRetryable(ctx, err) {
				return retry.RetryableError(err)
			}
			return err
		}
		result = resp
		return nil
	})
	if err != nil {
		c.log.ErrorContext(ctx, "openrouter request failed",
			slog.Int("attempts", attempt),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.mu.Lock()
	c.last = result
	c.mu.Unlock()

	return result, nil
}

func (c *Client) send(ctx context.Context, payload map[string]any) (*ChatResponse, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if c.referer != "" {
		req.SetHeader("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.SetHeader("X-Title", c.title)
	}

	resp, err := req.Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return parseResponse(resp.Body())
}

func (c *Client) buildPayload(userPrompt string, extra map[string]any) map[string]any {
	c.mu.RLock()
	payload := map[string]any{
		"model": c.model,
		"messages": []message{
			{Role: "system", Content: c.systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		"temperature":     c.params.Temperature,
		"max_tokens":      c.params.MaxTokens,
		"top_p":           c.params.TopP,
		"response_format": responseFormat,
	}
	c.mu.RUnlock()

	for k, v := range extra {
		payload[k] = v
	}
	return payload
}

// logRetries wraps b so every scheduled retry is logged with its delay.
func (c *Client) logRetries(ctx context.Context, attempt *int, b retry.Backoff) retry.Backoff {
	return retry.BackoffFunc(func() (time.Duration, bool) {
		next, stop := b.Next()
		if !stop {
			c.log.WarnContext(ctx, "openrouter attempt failed, retrying",
				slog.Int("attempt", *attempt),
				slog.Duration("delay", next),
			)
		}
		return next, stop
	})
}

// parseResponse validates the completion envelope and extracts the answer.
func parseResponse(body []byte) (*ChatResponse, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponseFormat, err)
	}

	switch {
	case env.ID == nil:
		return nil, fmt.Errorf("%w: missing id", ErrInvalidResponseFormat)
	case env.Model == nil:
		return nil, fmt.Errorf("%w: missing model", ErrInvalidResponseFormat)
	case env.Created == nil:
		return nil, fmt.Errorf("%w: missing created", ErrInvalidResponseFormat)
	case env.Choices == nil:
		return nil, fmt.Errorf("%w: missing choices", ErrInvalidResponseFormat)
	}

	choices := *env.Choices
	for i, ch := range choices {
		if ch.Message == nil || ch.Message.Role == nil || ch.Message.Content == nil {
			return nil, fmt.Errorf("%w: choices[%d].message incomplete", ErrInvalidResponseFormat, i)
		}
	}
	if len(choices) == 0 || *choices[0].Message.Content == "" {
		return nil, ErrNoContent
	}

	return &ChatResponse{
		Answer: *choices[0].Message.Content,
		Metadata: Metadata{
			ID:      *env.ID,
			Model:   *env.Model,
			Created: int64(*env.Created),
		},
	}, nil
}

// isRetryable reports whether err is a transient failure worth retrying.
// Failures caused by the caller's own context are never retried.
func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Retryable()
	}
	return errors.Is(err, ErrTransport)
}
