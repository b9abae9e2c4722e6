package auction

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/core/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testDefaults() domain.BiddingDefaults {
	return domain.BiddingDefaults{
		CPM:            d("0.50"),
		CPC:            d("0.05"),
		CPE:            d("0.10"),
		MaxMultiplier:  d("2.0"),
		CompetitorStep: d("0.10"),
	}
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	res := Resolve(domain.Ad{ID: "a1"}, testDefaults())

	assert.True(t, res.Params.CPM.Equal(d("0.50")))
	assert.True(t, res.Params.CPC.Equal(d("0.05")))
	assert.True(t, res.Params.CPE.Equal(d("0.10")))
	assert.True(t, res.Params.MaxMultiplier.Equal(d("2.0")))
	assert.Empty(t, res.Malformed)
}

func TestResolveUsesValidOverrides(t *testing.T) {
	ad := domain.Ad{ID: "a1", Targeting: domain.Targeting{BidOverrides: domain.BidOverrides{
		CPM:           json.RawMessage(`1.25`),
		MaxMultiplier: json.RawMessage(`3`),
	}}}

	res := Resolve(ad, testDefaults())

	assert.True(t, res.Params.CPM.Equal(d("1.25")))
	assert.True(t, res.Params.CPC.Equal(d("0.05")))
	assert.True(t, res.Params.CPE.Equal(d("0.10")))
	assert.True(t, res.Params.MaxMultiplier.Equal(d("3")))
	assert.Empty(t, res.Malformed)
}

// Malformed overrides are silently replaced by defaults, but reported.
func TestResolveMalformedOverridesFallBack(t *testing.T) {
	cases := map[string]json.RawMessage{
		"negative":      json.RawMessage(`-1.5`),
		"zero":          json.RawMessage(`0`),
		"quoted number": json.RawMessage(`"0.75"`),
		"text":          json.RawMessage(`"cheap"`),
		"boolean":       json.RawMessage(`true`),
		"object":        json.RawMessage(`{"value":1}`),
		"array":         json.RawMessage(`[1]`),
		"garbage":       json.RawMessage(`abc`),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			ad := domain.Ad{Targeting: domain.Targeting{BidOverrides: domain.BidOverrides{
				CPM: raw, CPC: raw, CPE: raw, MaxMultiplier: raw,
			}}}

			res := Resolve(ad, testDefaults())

			assert.True(t, res.Params.CPM.Equal(d("0.50")))
			assert.True(t, res.Params.CPC.Equal(d("0.05")))
			assert.True(t, res.Params.CPE.Equal(d("0.10")))
			assert.True(t, res.Params.MaxMultiplier.Equal(d("2.0")))
			assert.Equal(t, []string{"cpm", "cpc", "cpe", "maxMultiplier"}, res.Malformed)
		})
	}
}

func TestResolveNullIsAbsent(t *testing.T) {
	ad := domain.Ad{Targeting: domain.Targeting{BidOverrides: domain.BidOverrides{CPC: json.RawMessage(` null `)}}}

	res := Resolve(ad, testDefaults())

	assert.True(t, res.Params.CPC.Equal(d("0.05")))
	assert.Empty(t, res.Malformed)
}

func TestResolveFromStoredTargeting(t *testing.T) {
	var tgt domain.Targeting
	require.NoError(t, json.Unmarshal([]byte(`{"niche":"hiking","cpc":0.2,"cpe":"oops"}`), &tgt))

	res := Resolve(domain.Ad{Targeting: tgt}, testDefaults())

	assert.True(t, res.Params.CPC.Equal(d("0.2")))
	assert.True(t, res.Params.CPE.Equal(d("0.10")))
	assert.Equal(t, []string{"cpe"}, res.Malformed)
}
