package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable of the service, sourced from environment
// variables (a local .env file is honored when present).
type Config struct {
	Port          string `envconfig:"PORT" default:"8080"`
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"*"`
	Environment   string `envconfig:"ENVIRONMENT" default:"development"`

	// Optional YAML override for the embedded intent rule tables.
	RulesFile string `envconfig:"RULES_FILE"`

	// When set, session transcripts live in Redis instead of process memory.
	RedisURL string `envconfig:"REDIS_URL"`

	SessionMaxMessages int           `envconfig:"SESSION_MAX_MESSAGES" default:"40"`
	StateTTL           time.Duration `envconfig:"STATE_TTL" default:"7m"`

	// Bound on consecutive unrecognized answers to a clarifying question
	// before the slot falls back to a default. 0 re-asks forever.
	ClarifyMaxAttempts int `envconfig:"CLARIFY_MAX_ATTEMPTS" default:"0"`
}

// Load reads configuration from the environment, loading .env first for
// local runs.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
