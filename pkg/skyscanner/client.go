// Package skyscanner provides the HTTP client for the Skyscanner partners
// API. All supported calls share a single shape: POST with the API key in
// the x-api-key header and a JSON body.
package skyscanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/bookitlist/flight-proxy/pkg/logging"
)

// DefaultBaseURL is the production Skyscanner partners API.
const DefaultBaseURL = "https://partners.api.skyscanner.net/apiservices/v3"

// Prometheus metrics for upstream calls.
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightproxy_upstream_requests_total",
		Help: "Total Skyscanner requests by endpoint and status",
	}, []string{"endpoint", "status"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flightproxy_upstream_request_duration_seconds",
		Help:    "Skyscanner request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})
)

// Config holds the client configuration.
type Config struct {
	// BaseURL of the upstream API (default: DefaultBaseURL).
	BaseURL string

	// APIKey is the static API credential sent in the x-api-key header.
	APIKey string

	// HTTPClient overrides the default HTTP client (for testing).
	HTTPClient *http.Client
}

// Client issues requests against the Skyscanner partners API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
}

// New creates a new Skyscanner client. The credential is not validated
// here: it is checked on every call so a proxy deployed without a key
// still starts and serves configuration errors.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		logger:     logging.NewLogger("skyscanner"),
	}
}

// Post issues a POST to the given endpoint path with a JSON-encoded body
// and returns the raw response body.
//
// It fails with ErrMissingAPIKey before any network activity when the
// credential is absent or the placeholder, and with *APIError on any
// non-2xx response. Transient failures propagate directly: there are no
// retries.
func (c *Client) Post(ctx context.Context, endpoint string, body any) ([]byte, error) {
	if c.apiKey == "" || c.apiKey == PlaceholderAPIKey {
		return nil, ErrMissingAPIKey
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Msg("POST upstream")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "network_error").Inc()
		return nil, fmt.Errorf("skyscanner request: %w", err)
	}
	defer resp.Body.Close()
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "read_error").Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("upstream request error")
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}
