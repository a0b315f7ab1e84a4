package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// DefaultCompletionModel is requested from the completion provider unless
// COMPLETION_MODEL overrides it.
const DefaultCompletionModel = "meta-llama/Meta-Llama-3.1-405B-Instruct-Turbo"

// Config holds the environment driven configuration for the therapy service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"therapy-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8188"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// The store DSN has no default on purpose: a missing database
	// configuration is the one fatal startup condition.
	DatabaseURL    string        `env:"DB_POSTGRESQL_WRITE_DSN"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	CompletionAPIKey  string `env:"COMPLETION_API_KEY"`
	CompletionBaseURL string `env:"COMPLETION_BASE_URL" envDefault:"https://api.together.xyz/v1"`
	CompletionModel   string `env:"COMPLETION_MODEL"`

	TranscriptionAPIKey  string `env:"TRANSCRIPTION_API_KEY"`
	TranscriptionBaseURL string `env:"TRANSCRIPTION_BASE_URL" envDefault:""`
	TranscriptionModel   string `env:"TRANSCRIPTION_MODEL" envDefault:"whisper-1"`

	AuthEnabled  bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer   string `env:"AUTH_ISSUER"`
	AuthAudience string `env:"AUTH_AUDIENCE"`
	AuthJWKSURL  string `env:"AUTH_JWKS_URL"`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present)
// 3. Default values from struct tags
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, fmt.Errorf("DB_POSTGRESQL_WRITE_DSN is required")
	}

	if cfg.CompletionModel == "" {
		cfg.CompletionModel = DefaultCompletionModel
	}

	if cfg.AuthEnabled {
		if strings.TrimSpace(cfg.AuthIssuer) == "" {
			return nil, fmt.Errorf("AUTH_ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
			return nil, fmt.Errorf("AUTH_JWKS_URL is required when AUTH_ENABLED is true")
		}
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
