package flights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIndicative_MinimumWithCentiConversion(t *testing.T) {
	// 15000 centi units = 150.00 major units; 120 whole units wins.
	raw := []byte(`{
		"content": {
			"results": {
				"quotes": {
					"q1": {"minPrice": {"amount": "15000", "unit": "PRICE_UNIT_CENTI"}, "isDirect": true, "outboundLeg": {"marketingCarrierId": "-31939"}},
					"q2": {"minPrice": {"amount": "120", "unit": "PRICE_UNIT_WHOLE"}, "isDirect": false, "outboundLeg": {"marketingCarrierId": "-32480"}}
				},
				"carriers": {
					"-31939": {"name": "Jet2"},
					"-32480": {"name": "Ryanair"}
				}
			}
		}
	}`)

	result, err := normalizeIndicative(raw, "GBP")
	require.NoError(t, err)

	assert.True(t, result.HasData)
	require.NotNil(t, result.MinPrice)
	assert.Equal(t, 120.0, *result.MinPrice)
	assert.Equal(t, "GBP", result.Currency)
	assert.False(t, result.IsDirect)
	assert.Equal(t, "Ryanair", result.Carrier)
}

func TestNormalizeIndicative_TopLevelQuotesFallback(t *testing.T) {
	raw := []byte(`{
		"quotes": {
			"q1": {"minPrice": {"amount": "9950", "unit": "PRICE_UNIT_CENTI"}, "isDirect": true, "outboundLeg": {"marketingCarrierId": "-31722"}}
		},
		"carriers": {
			"-31722": {"name": "easyJet"}
		}
	}`)

	result, err := normalizeIndicative(raw, "GBP")
	require.NoError(t, err)

	assert.True(t, result.HasData)
	require.NotNil(t, result.MinPrice)
	assert.Equal(t, 99.5, *result.MinPrice)
	assert.True(t, result.IsDirect)
	assert.Equal(t, "easyJet", result.Carrier)
}

func TestNormalizeIndicative_NestedPreferredOverTopLevel(t *testing.T) {
	raw := []byte(`{
		"content": {
			"results": {
				"quotes": {
					"q1": {"minPrice": {"amount": "80", "unit": "PRICE_UNIT_WHOLE"}}
				}
			}
		},
		"quotes": {
			"q1": {"minPrice": {"amount": "999", "unit": "PRICE_UNIT_WHOLE"}}
		}
	}`)

	result, err := normalizeIndicative(raw, "GBP")
	require.NoError(t, err)

	require.NotNil(t, result.MinPrice)
	assert.Equal(t, 80.0, *result.MinPrice)
}

func TestNormalizeIndicative_NoQuotes(t *testing.T) {
	for name, raw := range map[string]string{
		"empty response":       `{}`,
		"empty quotes":         `{"content": {"results": {"quotes": {}}}}`,
		"quotes without price": `{"quotes": {"q1": {"isDirect": true}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			result, err := normalizeIndicative([]byte(raw), "GBP")
			require.NoError(t, err)

			assert.False(t, result.HasData)
			assert.Nil(t, result.MinPrice)
			assert.Equal(t, "GBP", result.Currency)
			assert.Empty(t, result.Carrier)
		})
	}
}

func TestNormalizeIndicative_UnknownCarrier(t *testing.T) {
	raw := []byte(`{
		"quotes": {
			"q1": {"minPrice": {"amount": "45", "unit": "PRICE_UNIT_WHOLE"}, "outboundLeg": {"marketingCarrierId": "-404"}}
		},
		"carriers": {}
	}`)

	result, err := normalizeIndicative(raw, "EUR")
	require.NoError(t, err)

	assert.True(t, result.HasData)
	assert.Empty(t, result.Carrier)
}

func TestNormalizeIndicative_NumericAmount(t *testing.T) {
	// Amounts usually arrive as strings but a bare number must not break
	// the decode.
	raw := []byte(`{"quotes": {"q1": {"minPrice": {"amount": 75, "unit": "PRICE_UNIT_WHOLE"}}}}`)

	result, err := normalizeIndicative(raw, "GBP")
	require.NoError(t, err)

	require.NotNil(t, result.MinPrice)
	assert.Equal(t, 75.0, *result.MinPrice)
}

func TestQuotePrice_TiesKeepFirstSeen(t *testing.T) {
	// Two quotes at the same price: the strictly-less-than comparison must
	// not replace the held minimum, whichever quote is visited first.
	raw := []byte(`{
		"quotes": {
			"q1": {"minPrice": {"amount": "100", "unit": "PRICE_UNIT_WHOLE"}, "isDirect": true},
			"q2": {"minPrice": {"amount": "100", "unit": "PRICE_UNIT_WHOLE"}, "isDirect": true}
		}
	}`)

	result, err := normalizeIndicative(raw, "GBP")
	require.NoError(t, err)

	require.NotNil(t, result.MinPrice)
	assert.Equal(t, 100.0, *result.MinPrice)
	assert.True(t, result.IsDirect)
}
