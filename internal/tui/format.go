package tui

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatNumber rounds d to at most places fractional digits and groups the
// integer part in thousands, e.g. 1234567.891 -> "1,234,567.89" for places=2.
func formatNumber(d decimal.Decimal, places int32) string {
	s := d.Round(places).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
