package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Flashcards FlashcardsConfig `yaml:"flashcards"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"150s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"10x-cards"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// OpenRouterConfig configures the chat-completion gateway.
// An empty APIKey leaves the gateway uninitialised rather than failing startup.
// Timeout bounds a single attempt; see CallBudget for the whole call.
type OpenRouterConfig struct {
	APIKey            string        `yaml:"api_key"             env:"OPENROUTER_API_KEY"`
	Endpoint          string        `yaml:"endpoint"            env:"OPENROUTER_ENDPOINT"            env-default:"https://openrouter.ai/api/v1/chat/completions"`
	Model             string        `yaml:"model"               env:"OPENROUTER_MODEL"               env-default:"openai/gpt-4o-mini"`
	SystemPrompt      string        `yaml:"system_prompt"       env:"OPENROUTER_SYSTEM_PROMPT"`
	Temperature       float64       `yaml:"temperature"         env:"OPENROUTER_TEMPERATURE"         env-default:"0.7"`
	MaxTokens         int           `yaml:"max_tokens"          env:"OPENROUTER_MAX_TOKENS"          env-default:"1000"`
	TopP              float64       `yaml:"top_p"               env:"OPENROUTER_TOP_P"               env-default:"0.9"`
	MaxRetries        int           `yaml:"max_retries"         env:"OPENROUTER_MAX_RETRIES"         env-default:"3"`
	InitialRetryDelay time.Duration `yaml:"initial_retry_delay" env:"OPENROUTER_INITIAL_RETRY_DELAY" env-default:"1s"`
	Timeout           time.Duration `yaml:"timeout"             env:"OPENROUTER_TIMEOUT"             env-default:"30s"`
	Referer           string        `yaml:"referer"             env:"OPENROUTER_REFERER"`
	Title             string        `yaml:"title"               env:"OPENROUTER_TITLE"               env-default:"10x Cards"`
}

// FlashcardsConfig holds flashcard lifecycle settings.
type FlashcardsConfig struct {
	HardDeleteRetentionDays int `yaml:"hard_delete_retention_days" env:"FLASHCARDS_HARD_DELETE_RETENTION_DAYS" env-default:"30"`
}

// RateLimitConfig bounds generate requests per client IP.
type RateLimitConfig struct {
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"10"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// LogConfig holds logging settings. File enables a rotated log file in
// addition to stderr.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"100"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
}

// CallBudget is the longest a gateway call can take: every attempt running
// into Timeout plus the exponential backoff between attempts.
func (o OpenRouterConfig) CallBudget() time.Duration {
	budget := time.Duration(o.MaxRetries+1) * o.Timeout
	for i := 0; i < o.MaxRetries; i++ {
		budget += o.InitialRetryDelay << i
	}
	return budget
}
