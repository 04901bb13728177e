package flights

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookitlist/flight-proxy/pkg/cache"
	"github.com/bookitlist/flight-proxy/pkg/logging"
	"github.com/bookitlist/flight-proxy/pkg/skyscanner"
)

// TTL policy per endpoint. Geography barely changes, airport search text
// changes slowly, prices go stale within hours.
const (
	autosuggestTTL = 24 * time.Hour
	nearestTTL     = 7 * 24 * time.Hour
	indicativeTTL  = 6 * time.Hour
)

// Service orchestrates the three flight data operations:
// cache lookup, upstream call on miss, normalization, cache store.
// Results are stored only after successful normalization of a successful
// upstream call, so a failure never corrupts cache state.
type Service struct {
	cache  *cache.Store
	client *skyscanner.Client
	logger zerolog.Logger
}

// NewService creates a Service owning the given cache store and upstream
// client.
func NewService(store *cache.Store, client *skyscanner.Client) *Service {
	return &Service{
		cache:  store,
		client: client,
		logger: logging.NewLogger("flights"),
	}
}

// PriceQuery holds the parameters of an indicative price lookup.
// Destination is an IATA code or an upstream entity id.
type PriceQuery struct {
	Origin      string
	Destination string
	Year        int
	Month       int
	Market      string
	Currency    string
}

// Autosuggest searches airports and cities by free text.
func (s *Service) Autosuggest(ctx context.Context, query, market string) (AutosuggestResult, error) {
	key := cache.AutosuggestKey(query, market)
	if v, ok := s.cache.Get(key); ok {
		if result, ok := v.(AutosuggestResult); ok {
			return result, nil
		}
	}

	raw, err := s.client.Post(ctx, skyscanner.EndpointAutosuggest, skyscanner.NewAutosuggestRequest(query, market))
	if err != nil {
		return AutosuggestResult{}, err
	}

	result, err := normalizeAutosuggest(raw)
	if err != nil {
		return AutosuggestResult{}, err
	}

	s.cache.Set(key, result, autosuggestTTL)
	s.logger.Debug().Str("key", key.String()).Int("airports", len(result.Airports)).Msg("cached autosuggest result")
	return result, nil
}

// Nearest finds the nearest airport (or city) to a coordinate pair.
func (s *Service) Nearest(ctx context.Context, lat, lng float64) (NearestResult, error) {
	key := cache.NearestKey(lat, lng)
	if v, ok := s.cache.Get(key); ok {
		if result, ok := v.(NearestResult); ok {
			return result, nil
		}
	}

	raw, err := s.client.Post(ctx, skyscanner.EndpointGeoNearest, skyscanner.NewNearestRequest(lat, lng))
	if err != nil {
		return NearestResult{}, err
	}

	result, err := normalizeNearest(raw)
	if err != nil {
		return NearestResult{}, err
	}

	s.cache.Set(key, result, nearestTTL)
	s.logger.Debug().Str("key", key.String()).Bool("has_result", result.HasResult).Msg("cached nearest result")
	return result, nil
}

// Indicative looks up the minimum indicative round-trip price for a
// route and month.
func (s *Service) Indicative(ctx context.Context, q PriceQuery) (PriceResult, error) {
	key := cache.IndicativeKey(q.Origin, q.Destination, q.Year, q.Month, q.Market, q.Currency)
	if v, ok := s.cache.Get(key); ok {
		if result, ok := v.(PriceResult); ok {
			return result, nil
		}
	}

	req := skyscanner.NewIndicativeRequest(q.Origin, q.Destination, q.Year, q.Month, q.Market, q.Currency)
	raw, err := s.client.Post(ctx, skyscanner.EndpointIndicative, req)
	if err != nil {
		return PriceResult{}, err
	}

	result, err := normalizeIndicative(raw, q.Currency)
	if err != nil {
		return PriceResult{}, err
	}

	s.cache.Set(key, result, indicativeTTL)
	s.logger.Debug().Str("key", key.String()).Bool("has_data", result.HasData).Msg("cached indicative result")
	return result, nil
}
