package flights

import (
	"encoding/json"
	"fmt"
)

// nearestPayload is the upstream geo hierarchy response: a places mapping
// keyed by place id.
type nearestPayload struct {
	Places map[string]place `json:"places"`
}

// normalizeNearest picks the best qualifying place out of the hierarchy.
func normalizeNearest(raw []byte) (NearestResult, error) {
	var payload nearestPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return NearestResult{}, fmt.Errorf("decode nearest response: %w", err)
	}

	airport := selectNearest(payload.Places)
	if airport == nil {
		return NearestResult{Airport: nil, HasResult: false}, nil
	}
	return NearestResult{Airport: airport, HasResult: true}, nil
}

// selectNearest keeps the first qualifying candidate and replaces it only
// when a later candidate is an airport, so an airport always wins over a
// previously held city while a later city never displaces anything.
// Scanning stops as soon as an airport is held; iteration order over the
// mapping is upstream-defined and not guaranteed stable.
func selectNearest(places map[string]place) *AirportSuggestion {
	var best *AirportSuggestion
	for id, p := range places {
		if !p.qualifies() {
			continue
		}
		if best == nil || p.Type == placeTypeAirport {
			s := p.suggestion()
			if s.EntityID == "" {
				s.EntityID = id
			}
			// The nearest lookup returns the bare place shape; city and
			// country names are not part of this result.
			s.CityName = ""
			s.CountryName = ""
			best = &s
			if p.Type == placeTypeAirport {
				break
			}
		}
	}
	return best
}
