package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookitlist/flight-proxy/pkg/skyscanner"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "https://partners.api.skyscanner.net/apiservices/v3", cfg.BaseURL)
	assert.Equal(t, 4096, cfg.CacheCapacity)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SKYSCANNER_API_KEY", "real-key")
	t.Setenv("CACHE_CAPACITY", "128")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "real-key", cfg.APIKey)
	assert.Equal(t, 128, cfg.CacheCapacity)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfig_HasAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{name: "real key", apiKey: "sk-live-abc", want: true},
		{name: "empty", apiKey: "", want: false},
		{name: "placeholder", apiKey: skyscanner.PlaceholderAPIKey, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{APIKey: tt.apiKey}
			assert.Equal(t, tt.want, cfg.HasAPIKey())
		})
	}
}
