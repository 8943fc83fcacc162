package summary

import "github.com/shopspring/decimal"

// FormatAmount renders a stored float64 amount with exactly two decimal
// places for display. Conversion through decimal keeps half-up rounding at
// the presentation layer without changing the stored representation.
func FormatAmount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}
