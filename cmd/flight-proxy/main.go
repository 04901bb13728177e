package main

import (
	"net/http"
	"os"

	"github.com/bookitlist/flight-proxy/internal/config"
	"github.com/bookitlist/flight-proxy/internal/server"
	"github.com/bookitlist/flight-proxy/pkg/cache"
	"github.com/bookitlist/flight-proxy/pkg/flights"
	"github.com/bookitlist/flight-proxy/pkg/logging"
	"github.com/bookitlist/flight-proxy/pkg/skyscanner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.Setup(logging.DefaultConfig())
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	if !cfg.HasAPIKey() {
		logger.Warn().Msg("SKYSCANNER_API_KEY not set - flight data endpoints will return errors")
	}

	store := cache.New(cfg.CacheCapacity)
	client := skyscanner.New(skyscanner.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
	})
	svc := flights.NewService(store, client)
	srv := server.New(svc)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("starting flight proxy")

	if err := http.ListenAndServe(addr, srv); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
