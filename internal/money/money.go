package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders a decimal amount as a dollar string with thousands
// separators and two decimal places: 1234.5 -> "$1,234.50", -50 -> "-$50.00".
func Format(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "$" + withCommas(whole) + "." + frac
}

// Plain renders the amount with two decimal places and no symbol.
func Plain(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func withCommas(digits string) string {
	var b strings.Builder
	l := len(digits)
	for i := 0; i < l; i++ {
		b.WriteByte(digits[i])
		rem := l - i - 1
		if rem > 0 && rem%3 == 0 {
			b.WriteByte(',')
		}
	}
	return b.String()
}
