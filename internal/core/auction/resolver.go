// Package auction holds the pure pricing stages of a recompute run: bid
// resolution, competition grouping, the competitive multiplier and spend
// aggregation. Nothing in here performs I/O.
package auction

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// BidParams are the per-unit prices and multiplier ceiling in effect for
// one ad.
type BidParams struct {
	CPM           decimal.Decimal
	CPC           decimal.Decimal
	CPE           decimal.Decimal
	MaxMultiplier decimal.Decimal
}

// Resolution is the outcome of resolving one ad. Malformed lists the
// overrides that were present but unusable and therefore replaced by the
// system default.
type Resolution struct {
	Params    BidParams
	Malformed []string
}

// Resolve picks, for each parameter independently, the ad's override when
// it is a positive JSON number and the system default otherwise. Anything
// else (strings, booleans, zero, negatives) counts as absent.
func Resolve(ad domain.Ad, defaults domain.BiddingDefaults) Resolution {
	var res Resolution
	pick := func(name string, raw json.RawMessage, def decimal.Decimal) decimal.Decimal {
		v, present, ok := parseOverride(raw)
		if ok {
			return v
		}
		if present {
			res.Malformed = append(res.Malformed, name)
		}
		return def
	}

	o := ad.Targeting.BidOverrides
	res.Params = BidParams{
		CPM:           pick("cpm", o.CPM, defaults.CPM),
		CPC:           pick("cpc", o.CPC, defaults.CPC),
		CPE:           pick("cpe", o.CPE, defaults.CPE),
		MaxMultiplier: pick("maxMultiplier", o.MaxMultiplier, defaults.MaxMultiplier),
	}
	return res
}

// parseOverride reports the parsed value, whether anything was set at all
// and whether the value is usable.
func parseOverride(raw json.RawMessage) (decimal.Decimal, bool, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Decimal{}, false, false
	}
	// quoted numbers are data-entry mistakes, not prices
	if raw[0] == '"' {
		return decimal.Decimal{}, true, false
	}
	v, err := decimal.NewFromString(string(raw))
	if err != nil || !v.IsPositive() {
		return decimal.Decimal{}, true, false
	}
	return v, true, true
}
