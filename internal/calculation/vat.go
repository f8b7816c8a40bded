package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// lineVAT resolves one invoice line to its VAT amount under the rate bands.
func lineVAT(line domain.VATLine, vr rules.VATRules) decimal.Decimal {
	amount := domain.ClampNonNegative(line.Amount)
	switch line.Class {
	case domain.VATEssential:
		return amount.Mul(vr.EssentialRate)
	case domain.VATExemptCls:
		return decimal.Zero
	default:
		rate := vr.StandardRate
		if line.Reduced {
			rate = vr.ReducedRate
		}
		return amount.Mul(rate)
	}
}

// VATDeduction computes VAT under the credit method: output VAT on sales
// minus creditable input VAT on purchases. Input VAT on exempt purchases is
// not creditable. A negative balance becomes a carryforward, never a refund.
func VATDeduction(input domain.VATDeductionInput, rs rules.RuleSet) domain.VATDeductionResult {
	var output, credit decimal.Decimal
	for _, line := range input.Sales {
		output = output.Add(lineVAT(line, rs.VAT))
	}
	for _, line := range input.Purchases {
		credit = credit.Add(lineVAT(line, rs.VAT))
	}

	output = domain.RoundVND(output)
	credit = domain.RoundVND(credit)

	out := domain.VATDeductionResult{OutputVAT: output, InputVAT: credit}
	diff := output.Sub(credit)
	if diff.IsNegative() {
		out.Carryforward = diff.Neg()
	} else {
		out.VATPayable = diff
	}
	return out
}

// VATDirect computes VAT under the direct method: the sector VAT rate on
// full annual revenue, with the registration threshold exemption.
func VATDirect(input domain.VATDirectInput, rs rules.RuleSet) domain.VATDirectResult {
	revenue := domain.ClampNonNegative(input.AnnualRevenue)
	if revenue.LessThanOrEqual(rs.Flat.BusinessRevenueThreshold) {
		return domain.VATDirectResult{FlatRateResult: domain.FlatRateResult{
			Gross:           revenue,
			Net:             revenue,
			ExemptionReason: "annual revenue at or below the registration threshold",
		}}
	}
	sector := rs.Sector(input.Sector)
	return domain.VATDirectResult{FlatRateResult: Rule{Rate: sector.VATRate}.Evaluate(revenue)}
}

// CompareVATMethods runs both methods over the same activity and names the
// cheaper one. The deduction leg takes the itemized invoices, the direct leg
// the headline revenue and sector.
func CompareVATMethods(ded domain.VATDeductionInput, dir domain.VATDirectInput, rs rules.RuleSet) domain.VATMethodComparison {
	deduction := VATDeduction(ded, rs)
	direct := VATDirect(dir, rs)

	cmp := domain.VATMethodComparison{Deduction: deduction, Direct: direct}
	if deduction.VATPayable.LessThanOrEqual(direct.Tax) {
		cmp.Better = "deduction"
		cmp.Savings = direct.Tax.Sub(deduction.VATPayable)
	} else {
		cmp.Better = "direct"
		cmp.Savings = deduction.VATPayable.Sub(direct.Tax)
	}
	return cmp
}
