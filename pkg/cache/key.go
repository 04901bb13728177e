package cache

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Key identifies a cached response. Endpoint is the discriminator
// ("autosuggest", "geo", "flights") and Params are the normalized request
// parameters in a fixed order.
//
// Two requests with the same caller intent must produce the same key even if
// casing or precision differs, so free text is lower-cased and coordinates
// are rounded before they reach the key.
type Key struct {
	Endpoint string
	Params   []string
}

// String generates a deterministic cache key string.
// Format: endpoint:param1:param2:...
//
// Example:
//
//	geo:51.5:-0.5
func (k Key) String() string {
	parts := append([]string{k.Endpoint}, k.Params...)
	return strings.Join(parts, ":")
}

// AutosuggestKey builds the key for an airport text search.
// The query is lower-cased so "London" and "london" share an entry.
func AutosuggestKey(query, market string) Key {
	return Key{
		Endpoint: "autosuggest",
		Params:   []string{strings.ToLower(query), market},
	}
}

// NearestKey builds the key for a nearest-airport lookup. Coordinates are
// rounded to one decimal place (~11km of latitude) so nearby callers share
// an entry.
func NearestKey(lat, lng float64) Key {
	return Key{
		Endpoint: "geo",
		Params:   []string{roundCoord(lat), roundCoord(lng)},
	}
}

// IndicativeKey builds the key for an indicative price lookup.
func IndicativeKey(origin, destination string, year, month int, market, currency string) Key {
	return Key{
		Endpoint: "flights",
		Params: []string{
			strings.ToUpper(origin),
			strings.ToUpper(destination),
			fmt.Sprintf("%d-%d", year, month),
			market,
			currency,
		},
	}
}

// roundCoord rounds to one decimal place and formats with the shortest
// representation, so 51.4699 and 51.47 both become "51.5" and 52.0 becomes
// "52".
func roundCoord(v float64) string {
	r := math.Round(v*10) / 10
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
