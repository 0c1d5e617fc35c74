package models

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places with half-up
// semantics. Amounts cross node boundaries as float64; rounding always goes
// through decimal so 1.005 lands on 1.01, not on whatever the nearest binary
// float happens to be.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// WithinTolerance reports whether two amounts differ by at most tolerance.
func WithinTolerance(a, b, tolerance float64) bool {
	diff := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs()

	return diff.LessThanOrEqual(decimal.NewFromFloat(tolerance))
}
