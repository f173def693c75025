package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds to 2 decimal places, half away from zero. All figures that
// leave the engines (SIF fields, documents, reports) pass through here.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Fixed2 renders an amount with exactly two decimal digits.
func Fixed2(d decimal.Decimal) string {
	return Round2(d).StringFixed(2)
}

// FormatAED renders an amount as a display currency string,
// e.g. "AED 51,780.82".
func FormatAED(d decimal.Decimal) string {
	return "AED " + group(Fixed2(d))
}

func group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
