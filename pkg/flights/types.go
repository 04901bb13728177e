// Package flights implements the client-facing flight data operations:
// airport autosuggest, nearest-airport lookup and indicative price search.
// Each operation normalizes the verbose upstream payload into a compact
// shape and memoizes the result with an endpoint-specific TTL.
package flights

// Upstream place type discriminators.
const (
	placeTypeAirport = "PLACE_TYPE_AIRPORT"
	placeTypeCity    = "PLACE_TYPE_CITY"
)

// AirportSuggestion is a compact projection of an upstream place record.
type AirportSuggestion struct {
	EntityID    string `json:"entityId"`
	Name        string `json:"name"`
	IATA        string `json:"iata"`
	CityName    string `json:"cityName,omitempty"`
	CountryName string `json:"countryName,omitempty"`
	PlaceType   string `json:"type"`
}

// AutosuggestResult is the response body for an airport text search.
type AutosuggestResult struct {
	Airports []AirportSuggestion `json:"airports"`
}

// NearestResult is the response body for a nearest-airport lookup.
// Airport is nil when no qualifying place was found.
type NearestResult struct {
	Airport   *AirportSuggestion `json:"airport"`
	HasResult bool               `json:"hasResult"`
}

// PriceResult is the response body for an indicative price lookup.
// MinPrice is nil and HasData false when the upstream returned no priced
// quotes for the route/month.
type PriceResult struct {
	MinPrice *float64 `json:"minPrice"`
	Currency string   `json:"currency"`
	IsDirect bool     `json:"isDirect,omitempty"`
	Carrier  string   `json:"carrier,omitempty"`
	HasData  bool     `json:"hasData"`
}

// place is one upstream place record. The provider names the IATA field
// "iata" on some endpoints and "iataCode" on others; both are accepted
// rather than silently assuming one spelling.
type place struct {
	EntityID    string `json:"entityId"`
	Name        string `json:"name"`
	IATA        string `json:"iata"`
	IATACode    string `json:"iataCode"`
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
	Type        string `json:"type"`
}

// iata returns the IATA code under either upstream spelling.
func (p place) iata() string {
	if p.IATA != "" {
		return p.IATA
	}
	return p.IATACode
}

// qualifies reports whether the place can be suggested to a caller:
// it must carry an IATA code and be an airport or a city.
func (p place) qualifies() bool {
	if p.iata() == "" {
		return false
	}
	return p.Type == placeTypeAirport || p.Type == placeTypeCity
}

// suggestion projects the place into the client-facing shape.
func (p place) suggestion() AirportSuggestion {
	return AirportSuggestion{
		EntityID:    p.EntityID,
		Name:        p.Name,
		IATA:        p.iata(),
		CityName:    p.CityName,
		CountryName: p.CountryName,
		PlaceType:   p.Type,
	}
}
