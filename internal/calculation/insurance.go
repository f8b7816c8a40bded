package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// Contributions computes the monthly mandatory-insurance deduction. Each
// enabled scheme contributes min(base, cap) * rate: BHXH and BHYT are capped
// at 20x the base wage, BHTN at 20x the zone minimum wage.
func Contributions(base decimal.Decimal, region domain.Region, opts domain.InsuranceOptions, rs rules.RuleSet) domain.InsuranceBreakdown {
	base = domain.ClampNonNegative(base)
	ins := rs.Insurance

	baseWageCap := ins.BaseWage.Mul(ins.BaseWageCapMult)
	regionCap := rs.MinWage(region).Mul(ins.RegionWageCapMult)

	var out domain.InsuranceBreakdown
	if opts.BHXH {
		out.BHXH = decimal.Min(base, baseWageCap).Mul(ins.BHXHRate)
	}
	if opts.BHYT {
		out.BHYT = decimal.Min(base, baseWageCap).Mul(ins.BHYTRate)
	}
	if opts.BHTN {
		out.BHTN = decimal.Min(base, regionCap).Mul(ins.BHTNRate)
	}
	out.Total = out.BHXH.Add(out.BHYT).Add(out.BHTN)
	return out
}

// TaxableIncome derives the monthly taxable base: gross minus insurance,
// personal deduction, dependent deductions and other deductions, floored at
// zero.
func TaxableIncome(gross, insuranceTotal decimal.Decimal, dependents int, otherDeductions decimal.Decimal, rs rules.RuleSet) decimal.Decimal {
	if dependents < 0 {
		dependents = 0
	}
	gross = domain.ClampNonNegative(gross)
	dependentTotal := rs.DependentDeduction.Mul(decimal.NewFromInt(int64(dependents)))
	taxable := gross.
		Sub(domain.ClampNonNegative(insuranceTotal)).
		Sub(rs.PersonalDeduction).
		Sub(dependentTotal).
		Sub(domain.ClampNonNegative(otherDeductions))
	return domain.ClampNonNegative(taxable)
}
