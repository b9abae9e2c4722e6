package auction

import (
	"fmt"

	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// MonetaryPrecision is the number of fractional digits every computed
// money amount is rounded to.
const MonetaryPrecision = 6

// SpendResult is the priced outcome for one ad.
type SpendResult struct {
	EffectiveCPM decimal.Decimal
	EffectiveCPC decimal.Decimal
	EffectiveCPE decimal.Decimal
	RawSpend     decimal.Decimal
	Spend        decimal.Decimal
	Capped       bool
}

// Spend prices the delivered events of one ad:
//
//	raw = impressions*cpm/1000 + clicks*cpc + engagements*cpe
//
// with every price scaled by multiplier. When totalBudget is set the
// result never exceeds it.
func Spend(counts domain.EventCounts, params BidParams, multiplier decimal.Decimal, totalBudget *decimal.Decimal) (SpendResult, error) {
	if err := counts.Validate(); err != nil {
		return SpendResult{}, err
	}
	if totalBudget != nil && totalBudget.IsNegative() {
		return SpendResult{}, fmt.Errorf("%w: negative total budget %s", domain.ErrInvalidInput, totalBudget.String())
	}

	cpm := params.CPM.Mul(multiplier)
	cpc := params.CPC.Mul(multiplier)
	cpe := params.CPE.Mul(multiplier)

	// Shift(-3) divides by 1000 without a rounding step.
	raw := decimal.NewFromInt(counts.Impressions).Mul(cpm).Shift(-3).
		Add(decimal.NewFromInt(counts.Clicks).Mul(cpc)).
		Add(decimal.NewFromInt(counts.Engagements()).Mul(cpe)).
		Round(MonetaryPrecision)

	res := SpendResult{
		EffectiveCPM: cpm.Round(MonetaryPrecision),
		EffectiveCPC: cpc.Round(MonetaryPrecision),
		EffectiveCPE: cpe.Round(MonetaryPrecision),
		RawSpend:     raw,
		Spend:        raw,
	}
	if totalBudget != nil && raw.GreaterThanOrEqual(*totalBudget) {
		res.Spend = *totalBudget
		res.Capped = true
	}
	return res, nil
}
