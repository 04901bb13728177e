// Package server provides the HTTP layer of the flight proxy: routing,
// request validation and the JSON error envelope.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/bookitlist/flight-proxy/pkg/flights"
	"github.com/bookitlist/flight-proxy/pkg/logging"
)

// Server routes client requests to the flights service.
type Server struct {
	router  *chi.Mux
	flights *flights.Service
	logger  zerolog.Logger
}

// New creates the HTTP server around a flights service.
func New(svc *flights.Service) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		flights: svc,
		logger:  logging.NewLogger("server"),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	// The API endpoints are POST-only; anything else gets the same JSON
	// envelope as other failures.
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	s.router.Get("/healthz", s.handleHealthz)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.router.Post("/api/autosuggest", s.handleAutosuggest)
	s.router.Post("/api/geo/nearest", s.handleGeoNearest)
	s.router.Post("/api/flights/indicative", s.handleIndicative)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// errorResponse is the JSON error envelope for all failure responses.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
