package config

import (
	"errors"
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.OpenRouter.validate(); err != nil {
		return fmt.Errorf("openrouter: %w", err)
	}
	if budget := c.OpenRouter.CallBudget(); c.Server.WriteTimeout <= budget {
		return fmt.Errorf("server.write_timeout must exceed the openrouter call budget %s (got %s)", budget, c.Server.WriteTimeout)
	}

	if c.Flashcards.HardDeleteRetentionDays <= 0 {
		return fmt.Errorf("flashcards.hard_delete_retention_days must be > 0 (got %d)", c.Flashcards.HardDeleteRetentionDays)
	}
	if c.RateLimit.GeneratePerMinute <= 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be > 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (o *OpenRouterConfig) validate() error {
	if o.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	if o.Model == "" {
		return errors.New("model is required")
	}
	if o.MaxRetries < 0 || o.MaxRetries > 10 {
		return fmt.Errorf("max_retries must be in [0, 10] (got %d)", o.MaxRetries)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", o.Timeout)
	}
	if o.InitialRetryDelay <= 0 {
		return fmt.Errorf("initial_retry_delay must be > 0 (got %s)", o.InitialRetryDelay)
	}
	if o.Temperature < 0 || o.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", o.Temperature)
	}
	if o.TopP <= 0 || o.TopP > 1 {
		return fmt.Errorf("top_p must be in (0, 1] (got %v)", o.TopP)
	}
	if o.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", o.MaxTokens)
	}
	return nil
}
