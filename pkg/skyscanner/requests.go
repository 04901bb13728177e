package skyscanner

import (
	"strings"
)

// Endpoint paths under the partners API base URL.
const (
	EndpointAutosuggest = "/autosuggest/flights"
	EndpointGeoNearest  = "/geo/hierarchy/flights/nearest"
	EndpointIndicative  = "/flights/indicative/search"
)

const defaultLocale = "en-GB"

// AutosuggestRequest is the body for EndpointAutosuggest.
type AutosuggestRequest struct {
	Query AutosuggestQuery `json:"query"`
}

// AutosuggestQuery holds the search parameters for an autosuggest call.
type AutosuggestQuery struct {
	Market     string `json:"market"`
	Locale     string `json:"locale"`
	SearchTerm string `json:"searchTerm"`
}

// NewAutosuggestRequest builds an autosuggest body for a free-text airport
// search.
func NewAutosuggestRequest(query, market string) AutosuggestRequest {
	return AutosuggestRequest{
		Query: AutosuggestQuery{
			Market:     market,
			Locale:     defaultLocale,
			SearchTerm: query,
		},
	}
}

// NearestRequest is the body for EndpointGeoNearest.
type NearestRequest struct {
	Locale   string   `json:"locale"`
	Location Location `json:"location"`
}

// Location wraps the coordinates of a nearest-airport lookup.
type Location struct {
	Coordinates Coordinates `json:"coordinates"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewNearestRequest builds a geo hierarchy body for a coordinate pair.
// The upstream receives the exact coordinates; only the cache key rounds.
func NewNearestRequest(lat, lng float64) NearestRequest {
	return NearestRequest{
		Locale: defaultLocale,
		Location: Location{
			Coordinates: Coordinates{Latitude: lat, Longitude: lng},
		},
	}
}

// IndicativeRequest is the body for EndpointIndicative.
type IndicativeRequest struct {
	Query IndicativeQuery `json:"query"`
}

// IndicativeQuery describes a grouped indicative price search.
type IndicativeQuery struct {
	Market               string     `json:"market"`
	Locale               string     `json:"locale"`
	Currency             string     `json:"currency"`
	DateTimeGroupingType string     `json:"dateTimeGroupingType"`
	QueryLegs            []QueryLeg `json:"queryLegs"`
}

// QueryLeg is one direction of an indicative search.
type QueryLeg struct {
	OriginPlace      QueryPlaceWrapper `json:"originPlace"`
	DestinationPlace QueryPlaceWrapper `json:"destinationPlace"`
	DateRange        DateRange         `json:"dateRange"`
}

// QueryPlaceWrapper matches the upstream's nested queryPlace object.
type QueryPlaceWrapper struct {
	QueryPlace QueryPlace `json:"queryPlace"`
}

// QueryPlace identifies a place by IATA code or opaque entity id.
// Exactly one of the two fields is set.
type QueryPlace struct {
	IATA     string `json:"iata,omitempty"`
	EntityID string `json:"entityId,omitempty"`
}

// DateRange bounds a search to a month window.
type DateRange struct {
	StartDate YearMonth `json:"startDate"`
	EndDate   YearMonth `json:"endDate"`
}

// YearMonth is the upstream's year/month pair.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewIndicativeRequest builds a round-trip indicative search grouped by
// month: one leg out and one mirrored leg back, both within the given
// year/month. Destination accepts an IATA code or an entity id.
func NewIndicativeRequest(origin, destination string, year, month int, market, currency string) IndicativeRequest {
	originPlace := QueryPlaceWrapper{QueryPlace: QueryPlace{IATA: origin}}
	destinationPlace := QueryPlaceWrapper{QueryPlace: queryPlaceFor(destination)}

	window := DateRange{
		StartDate: YearMonth{Year: year, Month: month},
		EndDate:   YearMonth{Year: year, Month: month},
	}

	return IndicativeRequest{
		Query: IndicativeQuery{
			Market:               market,
			Locale:               defaultLocale,
			Currency:             currency,
			DateTimeGroupingType: "DATE_TIME_GROUPING_TYPE_BY_MONTH",
			QueryLegs: []QueryLeg{
				{
					OriginPlace:      originPlace,
					DestinationPlace: destinationPlace,
					DateRange:        window,
				},
				{
					OriginPlace:      destinationPlace,
					DestinationPlace: originPlace,
					DateRange:        window,
				},
			},
		},
	}
}

// queryPlaceFor treats a three-letter alphabetic value as an IATA code and
// anything else as an upstream entity id.
func queryPlaceFor(destination string) QueryPlace {
	if isIATACode(destination) {
		return QueryPlace{IATA: strings.ToUpper(destination)}
	}
	return QueryPlace{EntityID: destination}
}

func isIATACode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
