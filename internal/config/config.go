// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	TelegramBotToken string        `envconfig:"TELEGRAM_BOT_TOKEN"`
	NASAAPIKey       string        `envconfig:"NASA_API_KEY"`
	APODBaseURL      string        `envconfig:"APOD_BASE_URL"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	SessionTTL       time.Duration `envconfig:"SESSION_TTL" default:"15m"`
	MetricsAddr      string        `envconfig:"METRICS_ADDR" default:":9090"`
	AllowedUsers     []int64       `envconfig:"ALLOWED_USERS"`
}

// Load reads configuration from environment variables. An empty
// METRICS_ADDR disables the metrics server; an empty APOD_BASE_URL
// selects the production NASA endpoint.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.NASAAPIKey == "" {
		return nil, fmt.Errorf("NASA_API_KEY is required")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	return &cfg, nil
}

// IsUserAllowed checks whether a user ID is in the allow list.
// Returns true if the allow list is empty (all users permitted).
func (c *Config) IsUserAllowed(userID int64) bool {
	if len(c.AllowedUsers) == 0 {
		return true
	}
	for _, id := range c.AllowedUsers {
		if id == userID {
			return true
		}
	}
	return false
}
