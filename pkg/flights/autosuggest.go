package flights

import (
	"encoding/json"
	"fmt"
)

// autosuggestPayload is the upstream autosuggest response.
type autosuggestPayload struct {
	Places []place `json:"places"`
}

// normalizeAutosuggest reduces the upstream place list to qualifying
// airport/city suggestions, preserving upstream order.
func normalizeAutosuggest(raw []byte) (AutosuggestResult, error) {
	var payload autosuggestPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return AutosuggestResult{}, fmt.Errorf("decode autosuggest response: %w", err)
	}

	airports := make([]AirportSuggestion, 0, len(payload.Places))
	for _, p := range payload.Places {
		if !p.qualifies() {
			continue
		}
		airports = append(airports, p.suggestion())
	}

	return AutosuggestResult{Airports: airports}, nil
}
