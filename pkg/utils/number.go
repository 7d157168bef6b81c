package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundTo rounds half away from zero to the given number of decimal places.
// Non-finite values are returned untouched.
func RoundTo(f float64, places int32) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}

// FormatFixed renders f with exactly places decimals.
func FormatFixed(f float64, places int32) string {
	return decimal.NewFromFloat(f).StringFixed(places)
}

// FormatCompactCurrency renders large dollar amounts with a T, B or M suffix,
// e.g. 36213456789012 -> "36.21T".
func FormatCompactCurrency(value float64, places int32) string {
	switch abs := math.Abs(value); {
	case abs >= 1e12:
		return FormatFixed(value/1e12, places) + "T"
	case abs >= 1e9:
		return FormatFixed(value/1e9, places) + "B"
	case abs >= 1e6:
		return FormatFixed(value/1e6, places) + "M"
	default:
		return FormatFixed(value, places)
	}
}
