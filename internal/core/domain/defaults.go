package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BiddingDefaults is the process-wide pricing configuration. One snapshot
// is taken at the start of each recompute run.
type BiddingDefaults struct {
	CPM            decimal.Decimal `json:"cpm"`
	CPC            decimal.Decimal `json:"cpc"`
	CPE            decimal.Decimal `json:"cpe"`
	MaxMultiplier  decimal.Decimal `json:"maxMultiplier"`
	CompetitorStep decimal.Decimal `json:"competitorStep"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// SafeDefaults returns the hard-coded configuration used when no defaults
// have been stored yet.
func SafeDefaults() BiddingDefaults {
	return BiddingDefaults{
		CPM:            decimal.RequireFromString("0.50"),
		CPC:            decimal.RequireFromString("0.05"),
		CPE:            decimal.RequireFromString("0.10"),
		MaxMultiplier:  decimal.RequireFromString("2.0"),
		CompetitorStep: decimal.RequireFromString("0.10"),
	}
}

// Sanitize replaces unusable values with safe ones and returns a warning
// for every replacement. Prices must be positive, the multiplier ceiling at
// least 1 and the competitor step positive; a bad step becomes 0 so the
// multiplier stays at 1.
func (d BiddingDefaults) Sanitize() (BiddingDefaults, []Warning) {
	safe := SafeDefaults()
	var warnings []Warning

	prices := []struct {
		name string
		val  *decimal.Decimal
		def  decimal.Decimal
	}{
		{"defaultCPM", &d.CPM, safe.CPM},
		{"defaultCPC", &d.CPC, safe.CPC},
		{"defaultCPE", &d.CPE, safe.CPE},
	}
	for _, p := range prices {
		if !p.val.IsPositive() {
			warnings = append(warnings, Warning{
				Parameter: p.name,
				Reason:    "non-positive value " + p.val.String() + ", using " + p.def.String(),
			})
			*p.val = p.def
		}
	}

	if d.MaxMultiplier.LessThan(decimal.NewFromInt(1)) {
		warnings = append(warnings, Warning{
			Parameter: "defaultMaxMultiplier",
			Reason:    "value " + d.MaxMultiplier.String() + " below 1, using 1",
		})
		d.MaxMultiplier = decimal.NewFromInt(1)
	}
	if !d.CompetitorStep.IsPositive() {
		warnings = append(warnings, Warning{
			Parameter: "competitorStep",
			Reason:    "non-positive value " + d.CompetitorStep.String() + ", using 0",
		})
		d.CompetitorStep = decimal.Zero
	}
	return d, warnings
}
