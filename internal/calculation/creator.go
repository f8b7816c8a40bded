package calculation

import (
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// Creator computes a content creator's combined position: platform ad
// revenue is business income at the creator PIT+VAT rates (with the
// registration threshold), while sponsorship paid under a labor-style
// contract runs through the progressive salary schedule with full
// deductions. The sponsorship leg carries no insurance, matching a
// contract-for-services arrangement.
func Creator(input domain.CreatorInput, rs rules.RuleSet) domain.CreatorResult {
	revenue := domain.ClampNonNegative(input.PlatformRevenue)
	flat := rs.Flat

	var platform domain.BusinessResult
	if revenue.LessThanOrEqual(flat.BusinessRevenueThreshold) {
		platform = domain.BusinessResult{FlatRateResult: domain.FlatRateResult{
			Gross:           revenue,
			Net:             revenue,
			ExemptionReason: "annual platform revenue at or below the registration threshold",
		}}
	} else {
		pit := domain.RoundVND(revenue.Mul(flat.CreatorPITRate))
		vat := domain.RoundVND(revenue.Mul(flat.CreatorVATRate))
		tax := pit.Add(vat)
		platform = domain.BusinessResult{
			FlatRateResult: domain.FlatRateResult{
				Gross:       revenue,
				Taxable:     revenue,
				AppliedRate: flat.CreatorPITRate.Add(flat.CreatorVATRate),
				Tax:         tax,
				Net:         revenue.Sub(tax),
			},
			PIT: pit,
			VAT: vat,
		}
	}

	sc := NewSalaryCalculator(rs)
	sponsorship := sc.Calculate(domain.SalaryInput{
		Gross:      domain.ClampNonNegative(input.SponsorshipPay),
		Dependents: input.Dependents,
		Region:     input.Region,
	})

	return domain.CreatorResult{
		Platform:    platform,
		Sponsorship: sponsorship,
		TotalTax:    platform.Tax.Add(sponsorship.Tax),
		TotalNet:    platform.Net.Add(sponsorship.Net),
	}
}
