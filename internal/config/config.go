// Package config handles process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/bookitlist/flight-proxy/pkg/skyscanner"
)

// Config holds all application configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"3000"`

	// APIKey is the Skyscanner partners API credential.
	APIKey string `env:"SKYSCANNER_API_KEY"`

	// BaseURL of the Skyscanner partners API.
	BaseURL string `env:"SKYSCANNER_BASE_URL" envDefault:"https://partners.api.skyscanner.net/apiservices/v3"`

	// CacheCapacity bounds the in-memory cache; 0 disables the bound.
	CacheCapacity int `env:"CACHE_CAPACITY" envDefault:"4096"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// HasAPIKey returns true if a usable credential is configured. The
// well-known placeholder from example env files counts as unconfigured.
func (c Config) HasAPIKey() bool {
	return c.APIKey != "" && c.APIKey != skyscanner.PlaceholderAPIKey
}
