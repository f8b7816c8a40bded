package domain

import "github.com/shopspring/decimal"

// VND builds a decimal amount of whole Vietnamese dong.
func VND(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// RoundVND rounds a tax amount to whole dong, half away from zero.
// Calculators round exactly once, at the tax-amount step.
func RoundVND(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// ClampNonNegative floors transiently invalid form values at zero instead of
// erroring, so live recalculation keeps working while the user types.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// SafeRatio returns num/den, or zero when den is zero. Used for effective
// tax rates where a zero gross income must not surface as NaN/Infinity.
func SafeRatio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}
