// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mmynk/defter/internal/calculator"
	"github.com/mmynk/defter/internal/money"
)

// MinJWTSecretLength is the shortest signing secret Validate accepts.
const MinJWTSecretLength = 32

type Config struct {
	// HTTP server
	Port            int           `env:"DEFTER_PORT"             envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"DEFTER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"DEFTER_METRICS_ENABLED"  envDefault:"true"`

	// Database
	DBPath string `env:"DEFTER_DB_PATH" envDefault:"./data/defter.db"`

	// Auth
	JWTSecret string        `env:"DEFTER_JWT_SECRET"`
	TokenTTL  time.Duration `env:"DEFTER_TOKEN_TTL" envDefault:"24h"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Settlement
	MinTransfer   string `env:"DEFTER_MIN_TRANSFER"     envDefault:"20.00"`
	TrustSplitSum bool   `env:"DEFTER_TRUST_SPLIT_SUM"  envDefault:"true"`
}

// Load reads an optional .env file from the working directory and parses
// the environment into a Config. Variables already set win over .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// A missing .env is normal outside development.
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.Port < 1 || c.Port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	if strings.TrimSpace(c.DBPath) == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if len(c.JWTSecret) < MinJWTSecretLength {
		errors = append(errors, fmt.Sprintf("JWT secret must be at least %d characters", MinJWTSecretLength))
	}

	if c.TokenTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid token TTL %v: must be at least 1 minute", c.TokenTTL))
	}

	if c.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if floor, err := money.ParseDecimal(c.MinTransfer); err != nil {
		errors = append(errors, fmt.Sprintf("invalid minimum transfer '%s': %v", c.MinTransfer, err))
	} else if floor < 0 {
		errors = append(errors, fmt.Sprintf("invalid minimum transfer '%s': must not be negative", c.MinTransfer))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Settlement returns the calculator options described by the config.
// Call Validate first; an unparsable MinTransfer falls back to the default.
func (c *Config) Settlement() calculator.Options {
	opts := calculator.DefaultOptions()
	if floor, err := money.ParseDecimal(c.MinTransfer); err == nil {
		opts.MinTransfer = floor
	}
	opts.TrustSplitSum = c.TrustSplitSum
	return opts
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level '%s': must be one of debug, info, warn, error", level)
}
