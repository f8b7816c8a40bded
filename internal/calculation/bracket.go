// Package calculation implements the tax calculators. Every function here is
// pure: identical inputs produce identical outputs, there is no I/O and no
// shared state, so callers may recompute on every keystroke.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/domain"
)

// Progressive computes marginal tax on taxable income against an ascending
// bracket schedule. Negative input clamps to zero; the result is always
// non-negative, monotone in the input and continuous at bracket boundaries.
func Progressive(taxable decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	taxable = domain.ClampNonNegative(taxable)
	if taxable.IsZero() {
		return decimal.Zero
	}

	tax := decimal.Zero
	remaining := taxable
	for _, b := range brackets {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		inBracket := remaining
		if !b.Unbounded {
			inBracket = decimal.Min(remaining, b.Width())
		}
		if inBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(inBracket.Mul(b.Rate))
			remaining = remaining.Sub(inBracket)
		}
	}
	return tax
}

// MarginalRate returns the rate of the bracket the taxable amount tops out
// in, zero for a zero base.
func MarginalRate(taxable decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	taxable = domain.ClampNonNegative(taxable)
	if taxable.IsZero() || len(brackets) == 0 {
		return decimal.Zero
	}
	for _, b := range brackets {
		if b.Unbounded || taxable.LessThanOrEqual(b.Max) {
			return b.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}
