package calculation

import (
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// RealEstate taxes a property transfer at 2% of the declared price. Two
// exemptions apply: a transfer within the immediate family, and the sale of
// the seller's only residence.
func RealEstate(input domain.RealEstateInput, rs rules.RuleSet) domain.FlatRateResult {
	return Rule{
		Rate: rs.Flat.RealEstateRate,
		Exempt: func() (bool, string) {
			if input.Relationship.IsFamily() {
				return true, "transfer between immediate family members"
			}
			if input.SoleResidence {
				return true, "sale of the transferor's sole residence"
			}
			return false, ""
		},
	}.Evaluate(input.Price)
}

// Gold taxes a bullion-gold transfer at 0.1% of the sale price.
func Gold(input domain.GoldInput, rs rules.RuleSet) domain.FlatRateResult {
	return Rule{Rate: rs.Flat.GoldRate}.Evaluate(input.Proceeds)
}
