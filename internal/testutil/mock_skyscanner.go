// Package testutil provides testing utilities for the flight proxy.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockResponse defines the behavior of a mock Skyscanner endpoint.
type MockResponse struct {
	StatusCode int
	Body       string
}

// MockSkyscanner is a configurable mock Skyscanner API server for testing.
type MockSkyscanner struct {
	server    *httptest.Server
	mu        sync.RWMutex
	responses map[string]MockResponse

	// Tracking
	RequestCount    int
	LastRequestBody []byte
	LastAPIKey      string
}

// NewMockSkyscanner creates a new mock upstream server. Paths without a
// configured response answer 404.
func NewMockSkyscanner() *MockSkyscanner {
	mock := &MockSkyscanner{
		responses: make(map[string]MockResponse),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestBody = body
		mock.LastAPIKey = r.Header.Get("x-api-key")
		resp, exists := mock.responses[r.URL.Path]
		mock.mu.Unlock()

		if !exists {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "no such endpoint"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		w.Write([]byte(resp.Body))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockSkyscanner) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockSkyscanner) Close() {
	m.server.Close()
}

// SetResponse configures the response for a path.
func (m *MockSkyscanner) SetResponse(path string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = resp
}

// GetRequestCount returns the number of requests the server received.
func (m *MockSkyscanner) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}
