package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/domain"
)

// ThresholdMode selects how a flat-rate rule treats its threshold.
type ThresholdMode int

const (
	// NoThreshold taxes the full amount.
	NoThreshold ThresholdMode = iota
	// ExemptBelow taxes the full amount only once it reaches the threshold.
	ExemptBelow
	// ExcessOver taxes only the amount above the threshold.
	ExcessOver
)

// Rule is the generic single-rate tax rule every non-salary calculator is a
// parameterization of: a rate, a threshold treatment and an optional
// exemption predicate evaluated before anything else.
type Rule struct {
	Rate          decimal.Decimal
	ThresholdMode ThresholdMode
	Threshold     decimal.Decimal
	// Exempt, when set, short-circuits the rule with the returned reason.
	Exempt func() (bool, string)
	// BelowThresholdReason labels the ExemptBelow zero outcome so it is
	// distinguishable from a taxable base owing zero.
	BelowThresholdReason string
}

// Evaluate applies the rule to a gross amount. The tax is rounded to whole
// dong here and nowhere earlier; the result is always fully populated.
func (r Rule) Evaluate(gross decimal.Decimal) domain.FlatRateResult {
	gross = domain.ClampNonNegative(gross)
	out := domain.FlatRateResult{Gross: gross, Net: gross}

	if r.Exempt != nil {
		if exempt, reason := r.Exempt(); exempt {
			out.ExemptionReason = reason
			return out
		}
	}

	switch r.ThresholdMode {
	case ExemptBelow:
		if gross.LessThan(r.Threshold) {
			out.ExemptionReason = r.BelowThresholdReason
			if out.ExemptionReason == "" {
				out.ExemptionReason = "amount below taxable threshold"
			}
			return out
		}
		out.Taxable = gross
	case ExcessOver:
		out.Taxable = domain.ClampNonNegative(gross.Sub(r.Threshold))
	default:
		out.Taxable = gross
	}

	out.AppliedRate = r.Rate
	out.Tax = domain.RoundVND(out.Taxable.Mul(r.Rate))
	out.Net = gross.Sub(out.Tax)
	return out
}
