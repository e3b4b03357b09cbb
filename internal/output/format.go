package output

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatPercent renders a fractional rate as a percentage string.
func FormatPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatScore renders a 0-100 score with one decimal place.
func FormatScore(d decimal.Decimal) string {
	return d.StringFixed(1)
}

// FormatMultiplier renders a multiplicative modifier, e.g. "x1.125".
func FormatMultiplier(d decimal.Decimal) string {
	return "x" + d.StringFixed(3)
}

// FormatAmount renders a large nominal figure with thousands separators.
func FormatAmount(d decimal.Decimal) string {
	whole := d.Round(0).IntPart()
	negative := whole < 0
	if negative {
		whole = -whole
	}
	s := fmt.Sprintf("%d", whole)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if negative {
		s = "-" + s
	}
	return s
}
