package auction

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Multiplier returns min(1 + competitors*step, maxMultiplier) bounded below
// by 1. The second result is false when the inputs were misconfigured
// (ceiling below 1 or negative step) and a floor of 1 had to be applied.
func Multiplier(competitors int, step, maxMultiplier decimal.Decimal) (decimal.Decimal, bool) {
	if maxMultiplier.LessThan(one) {
		return one, false
	}
	valid := !step.IsNegative()
	if competitors < 0 {
		competitors = 0
	}

	m := one.Add(decimal.NewFromInt(int64(competitors)).Mul(step))
	if m.GreaterThan(maxMultiplier) {
		m = maxMultiplier
	}
	if m.LessThan(one) {
		m = one
	}
	return m, valid
}
