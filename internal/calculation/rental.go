package calculation

import (
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// Rental taxes annual residential-rental revenue. Revenue at or below the
// business registration threshold is exempt; above it the full revenue bears
// 5% PIT plus 5% VAT.
func Rental(input domain.RentalInput, rs rules.RuleSet) domain.RentalResult {
	revenue := domain.ClampNonNegative(input.AnnualRevenue)
	flat := rs.Flat

	if revenue.LessThanOrEqual(flat.BusinessRevenueThreshold) {
		return domain.RentalResult{FlatRateResult: domain.FlatRateResult{
			Gross:           revenue,
			Net:             revenue,
			ExemptionReason: "annual rental revenue at or below the registration threshold",
		}}
	}

	pit := domain.RoundVND(revenue.Mul(flat.RentalPITRate))
	vat := domain.RoundVND(revenue.Mul(flat.RentalVATRate))
	tax := pit.Add(vat)
	return domain.RentalResult{
		FlatRateResult: domain.FlatRateResult{
			Gross:       revenue,
			Taxable:     revenue,
			AppliedRate: flat.RentalPITRate.Add(flat.RentalVATRate),
			Tax:         tax,
			Net:         revenue.Sub(tax),
		},
		PIT: pit,
		VAT: vat,
	}
}
