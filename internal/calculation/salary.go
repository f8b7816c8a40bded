package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

var twelve = decimal.NewFromInt(12)

// SalaryCalculator computes employment PIT under one rule set.
type SalaryCalculator struct {
	Rules rules.RuleSet
}

// NewSalaryCalculator creates a salary calculator for a rule set.
func NewSalaryCalculator(rs rules.RuleSet) *SalaryCalculator {
	return &SalaryCalculator{Rules: rs}
}

// Calculate runs one month of gross salary through insurance, deductions and
// the progressive schedule.
func (sc *SalaryCalculator) Calculate(input domain.SalaryInput) domain.SalaryResult {
	gross := domain.ClampNonNegative(input.Gross)

	insBase := input.InsuranceBase
	if insBase.IsZero() {
		insBase = gross
	}
	ins := Contributions(insBase, input.Region, input.Insurance, sc.Rules)

	dependents := input.Dependents
	if dependents < 0 {
		dependents = 0
	}
	taxable := TaxableIncome(gross, ins.Total, dependents, input.OtherDeductions, sc.Rules)
	tax := domain.RoundVND(Progressive(taxable, sc.Rules.Brackets))
	net := gross.Sub(ins.Total).Sub(tax)

	return domain.SalaryResult{
		Gross:              gross,
		Insurance:          ins,
		PersonalDeduction:  sc.Rules.PersonalDeduction,
		DependentDeduction: sc.Rules.DependentDeduction.Mul(decimal.NewFromInt(int64(dependents))),
		OtherDeductions:    domain.ClampNonNegative(input.OtherDeductions),
		TaxableIncome:      taxable,
		Tax:                tax,
		Net:                net,
		EffectiveRate:      domain.SafeRatio(tax, gross),
		MarginalRate:       MarginalRate(taxable, sc.Rules.Brackets),
		AnnualTax:          tax.Mul(twelve),
		AnnualNet:          net.Mul(twelve),
	}
}

// Net is a shorthand for the monthly net figure, the shape the comparison
// and break-even layers consume.
func (sc *SalaryCalculator) Net(input domain.SalaryInput) decimal.Decimal {
	return sc.Calculate(input).Net
}

// GrossUp inverts Calculate: it finds the gross salary producing the target
// monthly net. Net is strictly increasing in gross, so a bisection under a
// doubling upper bound converges; the answer is rounded to whole dong.
func (sc *SalaryCalculator) GrossUp(targetNet decimal.Decimal, template domain.SalaryInput) domain.GrossUpResult {
	targetNet = domain.ClampNonNegative(targetNet)
	if targetNet.IsZero() {
		template.Gross = decimal.Zero
		return domain.GrossUpResult{TargetNet: targetNet, Gross: decimal.Zero, Result: sc.Calculate(template)}
	}

	netAt := func(gross decimal.Decimal) decimal.Decimal {
		in := template
		in.Gross = gross
		return sc.Calculate(in).Net
	}

	// Grow the upper bound until it clears the target. Even at the top
	// marginal rate plus full insurance the retained share stays above half,
	// so this terminates quickly.
	high := targetNet
	for i := 0; i < 64 && netAt(high).LessThan(targetNet); i++ {
		high = high.Mul(decimal.NewFromInt(2))
	}
	low := decimal.Zero
	for high.Sub(low).GreaterThan(decimal.NewFromInt(1)) {
		mid := low.Add(high).Div(decimal.NewFromInt(2))
		if netAt(mid).LessThan(targetNet) {
			low = mid
		} else {
			high = mid
		}
	}

	gross := domain.RoundVND(high)
	template.Gross = gross
	return domain.GrossUpResult{TargetNet: targetNet, Gross: gross, Result: sc.Calculate(template)}
}

// Severance taxes a lump-sum severance payment: the statutory allowance
// (half a month of mean salary per worked year) is exempt, the excess is
// withheld at the flat severance rate.
func (sc *SalaryCalculator) Severance(input domain.SeveranceInput) domain.FlatRateResult {
	flat := sc.Rules.Flat
	exemptAllowance := domain.ClampNonNegative(input.MeanMonthlySalary).
		Mul(flat.SeveranceExemptPerYear).
		Mul(domain.ClampNonNegative(input.YearsWorked))
	rule := Rule{
		Rate:          flat.SeveranceRate,
		ThresholdMode: ExcessOver,
		Threshold:     exemptAllowance,
	}
	out := rule.Evaluate(input.Amount)
	if out.Tax.IsZero() && out.ExemptionReason == "" {
		out.ExemptionReason = "severance within the statutory exempt allowance"
	}
	return out
}
