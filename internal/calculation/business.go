package calculation

import (
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// Business applies the presumptive household-business levy: sector PIT plus
// sector VAT on the full annual revenue, once revenue crosses the
// registration threshold. Revenue at or below the threshold owes nothing.
func Business(input domain.BusinessInput, rs rules.RuleSet) domain.BusinessResult {
	revenue := domain.ClampNonNegative(input.AnnualRevenue)
	sector := rs.Sector(input.Sector)

	if revenue.LessThanOrEqual(rs.Flat.BusinessRevenueThreshold) {
		return domain.BusinessResult{FlatRateResult: domain.FlatRateResult{
			Gross:           revenue,
			Net:             revenue,
			ExemptionReason: "annual revenue at or below the registration threshold",
		}}
	}

	pit := domain.RoundVND(revenue.Mul(sector.PITRate))
	vat := domain.RoundVND(revenue.Mul(sector.VATRate))
	tax := pit.Add(vat)
	return domain.BusinessResult{
		FlatRateResult: domain.FlatRateResult{
			Gross:       revenue,
			Taxable:     revenue,
			AppliedRate: sector.Combined(),
			Tax:         tax,
			Net:         revenue.Sub(tax),
		},
		PIT: pit,
		VAT: vat,
	}
}
