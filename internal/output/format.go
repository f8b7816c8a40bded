// Package output renders calculator results for the terminal and for
// machine consumption. The formatting helpers here are the single place
// amounts are turned into Vietnamese-locale strings; calculators never
// format currency themselves.
package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatNumber groups whole dong with dots in the Vietnamese manner:
// 1234567 -> "1.234.567".
func FormatNumber(d decimal.Decimal) string {
	neg := d.IsNegative()
	digits := d.Abs().Round(0).String()

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
		if len(digits) > lead {
			sb.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		sb.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// FormatCurrency renders a whole-dong amount with its currency suffix:
// 1234567 -> "1.234.567 ₫".
func FormatCurrency(d decimal.Decimal) string {
	return FormatNumber(d) + " ₫"
}

// FormatPercent renders a fraction as a percentage with a comma decimal
// separator: 0.105 -> "10,5%".
func FormatPercent(rate decimal.Decimal) string {
	pct := rate.Mul(hundred)
	s := pct.Round(2).String()
	return strings.ReplaceAll(s, ".", ",") + "%"
}
