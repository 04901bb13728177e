package flights

import (
	"encoding/json"
	"fmt"
)

const priceUnitCenti = "PRICE_UNIT_CENTI"

// indicativePayload is the upstream indicative search response. Quotes and
// carriers have been observed both nested under content.results and at the
// top level; the nested location is preferred.
type indicativePayload struct {
	Content struct {
		Results indicativeResults `json:"results"`
	} `json:"content"`
	Quotes   map[string]quote   `json:"quotes"`
	Carriers map[string]carrier `json:"carriers"`
}

type indicativeResults struct {
	Quotes   map[string]quote   `json:"quotes"`
	Carriers map[string]carrier `json:"carriers"`
}

// quote is one upstream indicative price quote.
type quote struct {
	MinPrice struct {
		Amount json.Number `json:"amount"`
		Unit   string      `json:"unit"`
	} `json:"minPrice"`
	IsDirect    bool `json:"isDirect"`
	OutboundLeg struct {
		MarketingCarrierID string `json:"marketingCarrierId"`
	} `json:"outboundLeg"`
}

type carrier struct {
	Name string `json:"name"`
}

// normalizeIndicative scans every quote for the minimum price, normalizing
// centi-denominated amounts to major currency units, and resolves the
// winning quote's marketing carrier to a display name.
func normalizeIndicative(raw []byte, currency string) (PriceResult, error) {
	var payload indicativePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return PriceResult{}, fmt.Errorf("decode indicative response: %w", err)
	}

	quotes := payload.Content.Results.Quotes
	if len(quotes) == 0 {
		quotes = payload.Quotes
	}
	carriers := payload.Content.Results.Carriers
	if len(carriers) == 0 {
		carriers = payload.Carriers
	}

	var minPrice *float64
	var isDirect bool
	var carrierID string

	for _, q := range quotes {
		price, ok := quotePrice(q)
		if !ok {
			continue
		}
		// Strictly less than: ties keep the first-seen minimum.
		if minPrice == nil || price < *minPrice {
			p := price
			minPrice = &p
			isDirect = q.IsDirect
			carrierID = q.OutboundLeg.MarketingCarrierID
		}
	}

	if minPrice == nil {
		return PriceResult{MinPrice: nil, Currency: currency, HasData: false}, nil
	}

	result := PriceResult{
		MinPrice: minPrice,
		Currency: currency,
		IsDirect: isDirect,
		HasData:  true,
	}
	if carrierID != "" {
		if c, ok := carriers[carrierID]; ok {
			result.Carrier = c.Name
		}
	}
	return result, nil
}

// quotePrice extracts the price of a quote in major currency units.
// Quotes without an amount carry no price and are skipped.
func quotePrice(q quote) (float64, bool) {
	if q.MinPrice.Amount == "" {
		return 0, false
	}
	amount, err := q.MinPrice.Amount.Int64()
	if err != nil {
		// Amounts are documented as integers but tolerate a fractional
		// value by truncating, as the original parser did.
		f, ferr := q.MinPrice.Amount.Float64()
		if ferr != nil {
			return 0, false
		}
		amount = int64(f)
	}

	price := float64(amount)
	if q.MinPrice.Unit == priceUnitCenti {
		price /= 100
	}
	return price, true
}
