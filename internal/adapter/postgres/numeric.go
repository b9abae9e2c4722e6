package postgres

import (
	"github.com/shopspring/decimal"
)

// parseDecimal converts a NUMERIC column read as text.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// optionalDecimal converts a nullable NUMERIC column read as text.
func optionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	v, err := parseDecimal(*s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
