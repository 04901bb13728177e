package skyscanner

import (
	"errors"
	"fmt"
)

// PlaceholderAPIKey is the well-known placeholder shipped in example env
// files. A key equal to this value is treated as unconfigured.
const PlaceholderAPIKey = "your_api_key_here"

// ErrMissingAPIKey is returned before any network activity when the API
// credential is absent or still the placeholder. It is a deployment
// problem, not an input problem.
var ErrMissingAPIKey = errors.New("SKYSCANNER_API_KEY not configured")

// APIError represents a non-2xx response from the Skyscanner API.
// It carries the status code and raw body text for logging and reporting.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("skyscanner API %d: %s", e.StatusCode, e.Body)
}
