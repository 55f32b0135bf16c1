package ledger

import "github.com/shopspring/decimal"

// Minute amounts are stored as float64 but combined as decimals, so that
// 6 × 0.5 is 3 and 10 × 2 × 1.1 is 22, not 22.000000000000004.

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// Sub returns a - b computed exactly.
func Sub(a, b float64) float64 {
	return toFloat(dec(a).Sub(dec(b)))
}

// Fraction returns v - floor(v).
func Fraction(v float64) float64 {
	d := dec(v)
	return toFloat(d.Sub(d.Floor()))
}

// UsedMinutes is the leisure consumed by a countdown that started at
// startMinutes and has remainingSeconds left.
func UsedMinutes(startMinutes float64, remainingSeconds int) float64 {
	remaining := decimal.NewFromInt(int64(remainingSeconds)).Div(decimal.NewFromInt(60))
	return toFloat(dec(startMinutes).Sub(remaining))
}
