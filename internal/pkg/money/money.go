// Package money rounds storefront amounts to two decimal places so derived
// values (subtotal, discount, total) stay stable across float arithmetic.
package money

import "github.com/shopspring/decimal"

func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Percent returns pct percent of v, rounded to two decimals.
func Percent(v, pct float64) float64 {
	return decimal.NewFromFloat(v).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}
