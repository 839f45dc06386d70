package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatKronor formats an amount the Swedish way with a space as thousands
// separator and a decimal comma.
// Example: 25000 returns "25 000,00 kr"
// Example: -1234.5 returns "-1 234,50 kr"
func FormatKronor(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "," + frac + " kr"
}
