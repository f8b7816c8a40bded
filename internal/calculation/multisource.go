package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// MultiSource reconciles a year with a main employer plus secondary payments
// withheld at the flat rate. Finalization folds all income into an annual
// taxable base, spreads it back to a monthly equivalent for the progressive
// schedule, and nets the finalized liability against everything withheld
// during the year. A positive gap is settlement due, a negative one a
// refund.
func MultiSource(input domain.MultiSourceInput, rs rules.RuleSet) domain.MultiSourceResult {
	months := input.Months
	if months <= 0 || months > 12 {
		months = 12
	}
	monthsDec := decimal.NewFromInt(int64(months))

	sc := NewSalaryCalculator(rs)
	mainMonthly := sc.Calculate(input.Main)

	var otherGross, otherWithheld decimal.Decimal
	for _, p := range input.OtherPayments {
		res := Withholding(domain.WithholdingInput{
			Payment:   p.Amount,
			Residency: domain.Resident,
		}, rs)
		otherGross = otherGross.Add(res.Gross)
		otherWithheld = otherWithheld.Add(res.Tax)
	}

	// Annual taxable base: the main job's taxable income over its worked
	// months plus the secondary gross in full. Deductions were already taken
	// on the main job; secondary income carries none of its own.
	annualTaxable := mainMonthly.TaxableIncome.Mul(monthsDec).Add(otherGross)
	monthlyEquivalent := annualTaxable.Div(twelve)
	finalizedTax := domain.RoundVND(Progressive(monthlyEquivalent, rs.Brackets).Mul(twelve))

	mainWithheld := mainMonthly.Tax.Mul(monthsDec)
	totalWithheld := mainWithheld.Add(otherWithheld)

	out := domain.MultiSourceResult{
		MainAnnual:       scaleAnnual(mainMonthly, monthsDec),
		OtherGross:       otherGross,
		OtherWithheld:    otherWithheld,
		FinalizedTaxable: annualTaxable,
		FinalizedTax:     finalizedTax,
		TotalWithheld:    totalWithheld,
	}

	diff := finalizedTax.Sub(totalWithheld)
	if diff.IsNegative() {
		out.RefundDue = diff.Neg()
	} else {
		out.SettlementDue = diff
	}

	totalGross := mainMonthly.Gross.Mul(monthsDec).Add(otherGross)
	insurance := mainMonthly.Insurance.Total.Mul(monthsDec)
	out.TotalNet = totalGross.Sub(insurance).Sub(finalizedTax)
	out.EffectiveRateYear = domain.SafeRatio(finalizedTax, totalGross)
	return out
}

// scaleAnnual expands a monthly salary result to the worked-months totals.
func scaleAnnual(monthly domain.SalaryResult, months decimal.Decimal) domain.SalaryResult {
	out := monthly
	out.Gross = monthly.Gross.Mul(months)
	out.TaxableIncome = monthly.TaxableIncome.Mul(months)
	out.Tax = monthly.Tax.Mul(months)
	out.Net = monthly.Net.Mul(months)
	out.Insurance.BHXH = monthly.Insurance.BHXH.Mul(months)
	out.Insurance.BHYT = monthly.Insurance.BHYT.Mul(months)
	out.Insurance.BHTN = monthly.Insurance.BHTN.Mul(months)
	out.Insurance.Total = monthly.Insurance.Total.Mul(months)
	return out
}
