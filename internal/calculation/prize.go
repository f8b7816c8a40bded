package calculation

import (
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// Prize taxes lottery winnings, promotional prizes and casino payouts at 10%
// of the amount above the 10,000,000 VND threshold.
func Prize(input domain.PrizeInput, rs rules.RuleSet) domain.FlatRateResult {
	out := Rule{
		Rate:          rs.Flat.PrizeRate,
		ThresholdMode: ExcessOver,
		Threshold:     rs.Flat.PrizeThreshold,
	}.Evaluate(input.Amount)
	if out.Tax.IsZero() && out.ExemptionReason == "" {
		out.ExemptionReason = "winnings at or below the taxable threshold"
	}
	return out
}

// Inheritance taxes inheritances and gifts of registrable assets at 10% of
// the value above the threshold. Transfers within the immediate family are
// fully exempt regardless of value.
func Inheritance(input domain.InheritanceInput, rs rules.RuleSet) domain.FlatRateResult {
	return Rule{
		Rate:          rs.Flat.InheritanceRate,
		ThresholdMode: ExcessOver,
		Threshold:     rs.Flat.InheritanceThreshold,
		Exempt: func() (bool, string) {
			if input.Relationship.IsFamily() {
				return true, "transfer between immediate family members"
			}
			return false, ""
		},
	}.Evaluate(input.Value)
}
