package skyscanner

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Post_MissingAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
	}{
		{name: "empty key", apiKey: ""},
		{name: "placeholder key", apiKey: PlaceholderAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
			}))
			defer server.Close()

			client := New(Config{BaseURL: server.URL, APIKey: tt.apiKey})

			_, err := client.Post(context.Background(), EndpointAutosuggest, NewAutosuggestRequest("london", "UK"))
			if !errors.Is(err, ErrMissingAPIKey) {
				t.Errorf("Post() error = %v, want ErrMissingAPIKey", err)
			}
			if requests != 0 {
				t.Errorf("expected no network activity, got %d requests", requests)
			}
		})
	}
}

func TestClient_Post_Success(t *testing.T) {
	var gotMethod, gotKey, gotContentType, gotPath string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"places": []}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, APIKey: "test-key"})

	data, err := client.Post(context.Background(), EndpointAutosuggest, NewAutosuggestRequest("London", "UK"))
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != EndpointAutosuggest {
		t.Errorf("path = %s, want %s", gotPath, EndpointAutosuggest)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q, want %q", gotKey, "test-key")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}

	var sent AutosuggestRequest
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("request body not valid JSON: %v", err)
	}
	if sent.Query.SearchTerm != "London" || sent.Query.Locale != "en-GB" {
		t.Errorf("request query = %+v", sent.Query)
	}

	if string(data) != `{"places": []}` {
		t.Errorf("response body = %s", data)
	}
}

func TestClient_Post_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "invalid api key"}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, APIKey: "bad-key"})

	_, err := client.Post(context.Background(), EndpointIndicative, nil)
	if err == nil {
		t.Fatal("expected error for 403 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if apiErr.Body != `{"message": "invalid api key"}` {
		t.Errorf("Body = %q", apiErr.Body)
	}
}

func TestClient_Post_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := New(Config{BaseURL: server.URL, APIKey: "test-key"})

	_, err := client.Post(context.Background(), EndpointGeoNearest, NewNearestRequest(51.5, -0.1))
	if err == nil {
		t.Fatal("expected error for unreachable upstream")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("network failure should not be an *APIError, got %v", err)
	}
}
