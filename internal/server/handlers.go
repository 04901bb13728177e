package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bookitlist/flight-proxy/pkg/flights"
)

// Defaults applied to optional request fields.
const (
	defaultMarket   = "UK"
	defaultCurrency = "GBP"
)

type autosuggestRequest struct {
	Query  string `json:"query"`
	Market string `json:"market"`
}

func (s *Server) handleAutosuggest(w http.ResponseWriter, r *http.Request) {
	var req autosuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	if req.Market == "" {
		req.Market = defaultMarket
	}

	result, err := s.flights.Autosuggest(r.Context(), req.Query, req.Market)
	if err != nil {
		s.serverError(w, "autosuggest", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// nearestRequest uses pointers so that an absent coordinate is
// distinguishable from a legitimate zero (the equator exists).
type nearestRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func (s *Server) handleGeoNearest(w http.ResponseWriter, r *http.Request) {
	var req nearestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Lat == nil || req.Lng == nil {
		writeError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	result, err := s.flights.Nearest(r.Context(), *req.Lat, *req.Lng)
	if err != nil {
		s.serverError(w, "geo/nearest", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type indicativeRequest struct {
	OriginIata  string `json:"originIata"`
	Destination string `json:"destination"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Market      string `json:"market"`
	Currency    string `json:"currency"`
}

func (s *Server) handleIndicative(w http.ResponseWriter, r *http.Request) {
	var req indicativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var missing []string
	if req.OriginIata == "" {
		missing = append(missing, "originIata")
	}
	if req.Destination == "" {
		missing = append(missing, "destination")
	}
	if req.Year == 0 {
		missing = append(missing, "year")
	}
	if req.Month == 0 {
		missing = append(missing, "month")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, requiredMessage(missing))
		return
	}

	if req.Market == "" {
		req.Market = defaultMarket
	}
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}

	result, err := s.flights.Indicative(r.Context(), flights.PriceQuery{
		Origin:      req.OriginIata,
		Destination: req.Destination,
		Year:        req.Year,
		Month:       req.Month,
		Market:      req.Market,
		Currency:    req.Currency,
	})
	if err != nil {
		s.serverError(w, "flights/indicative", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// serverError logs the failure (message only, payloads may carry
// credentials) and answers with the JSON error envelope.
func (s *Server) serverError(w http.ResponseWriter, endpoint string, err error) {
	s.logger.Error().
		Str("endpoint", endpoint).
		Msg(err.Error())
	writeError(w, http.StatusInternalServerError, err.Error())
}

func requiredMessage(missing []string) string {
	if len(missing) == 1 {
		return missing[0] + " is required"
	}
	return strings.Join(missing, ", ") + " are required"
}
