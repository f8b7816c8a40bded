package compare

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/breakeven"
	"github.com/nvquang/vnpit/internal/calculation"
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

var twelve = decimal.NewFromInt(12)

// Engine runs treatment comparisons under one rule set.
type Engine struct {
	Rules  rules.RuleSet
	Solver *breakeven.Solver
}

// NewEngine creates a comparison engine with a default break-even solver.
func NewEngine(rs rules.RuleSet) *Engine {
	return &Engine{Rules: rs, Solver: breakeven.NewDefaultSolver()}
}

// Employee evaluates the salaried treatment at a monthly gross.
func (e *Engine) Employee(input TreatmentInput) OptionResult {
	res := calculation.NewSalaryCalculator(e.Rules).Calculate(domain.SalaryInput{
		Gross:      input.MonthlyGross,
		Dependents: input.Dependents,
		Region:     input.Region,
		Insurance:  domain.AllInsurance(),
	})
	// Insurance is a cost of this treatment even though it is not a tax.
	outOfPocket := res.Tax.Add(res.Insurance.Total)
	return OptionResult{
		Treatment:     TreatmentEmployee,
		MonthlyGross:  res.Gross,
		MonthlyTax:    outOfPocket,
		MonthlyNet:    res.Net,
		AnnualNet:     res.AnnualNet,
		EffectiveRate: domain.SafeRatio(outOfPocket, res.Gross),
	}
}

// Freelancer evaluates the no-contract treatment: every monthly payment is
// withheld at the flat rate with no deductions and no insurance.
func (e *Engine) Freelancer(input TreatmentInput) OptionResult {
	res := calculation.Withholding(domain.WithholdingInput{Payment: input.MonthlyGross}, e.Rules)
	return OptionResult{
		Treatment:     TreatmentFreelancer,
		MonthlyGross:  res.Gross,
		MonthlyTax:    res.Tax,
		MonthlyNet:    res.Net,
		AnnualNet:     res.Net.Mul(twelve),
		EffectiveRate: domain.SafeRatio(res.Tax, res.Gross),
		Note:          res.ExemptionReason,
	}
}

// Business evaluates the registered-household treatment: twelve months of
// gross as annual revenue under the sector's presumptive rates.
func (e *Engine) Business(input TreatmentInput) OptionResult {
	sector := input.Sector
	if !domain.ValidSector(sector) {
		sector = domain.SectorServices
	}
	annual := domain.ClampNonNegative(input.MonthlyGross).Mul(twelve)
	res := calculation.Business(domain.BusinessInput{AnnualRevenue: annual, Sector: sector}, e.Rules)

	monthlyTax := res.Tax.Div(twelve)
	monthlyNet := res.Net.Div(twelve)
	return OptionResult{
		Treatment:     TreatmentBusiness,
		MonthlyGross:  domain.ClampNonNegative(input.MonthlyGross),
		MonthlyTax:    monthlyTax,
		MonthlyNet:    monthlyNet,
		AnnualNet:     res.Net,
		EffectiveRate: domain.SafeRatio(res.Tax, res.Gross),
		Note:          res.ExemptionReason,
	}
}

// CompareTreatments evaluates all three treatments at the same gross and
// derives the winner, the per-option deltas and the recommendations.
func (e *Engine) CompareTreatments(input TreatmentInput) *ComparisonSet {
	options := []OptionResult{
		e.Employee(input),
		e.Freelancer(input),
		e.Business(input),
	}

	best := lo.MaxBy(options, func(a, b OptionResult) bool {
		return a.MonthlyNet.GreaterThan(b.MonthlyNet)
	})
	for i := range options {
		options[i].NetDiffFromBest = options[i].MonthlyNet.Sub(best.MonthlyNet)
	}

	set := &ComparisonSet{
		Input:   input,
		Options: options,
		Winner:  best.Treatment,
	}
	set.Recommendations = e.recommendations(set)
	return set
}

// BreakEvenEmployeeFreelancer finds the monthly gross where the salaried and
// freelancer nets cross. Below the crossing the flat withholding beats the
// progressive schedule or vice versa, depending on the deduction level.
func (e *Engine) BreakEvenEmployeeFreelancer(ctx context.Context, input TreatmentInput, low, high decimal.Decimal) (*breakeven.Result, error) {
	netEmployee := func(gross decimal.Decimal) decimal.Decimal {
		in := input
		in.MonthlyGross = gross
		return e.Employee(in).MonthlyNet
	}
	netFreelancer := func(gross decimal.Decimal) decimal.Decimal {
		in := input
		in.MonthlyGross = gross
		return e.Freelancer(in).MonthlyNet
	}
	return e.Solver.Find(ctx, low, high, netEmployee, netFreelancer)
}

func (e *Engine) recommendations(set *ComparisonSet) []string {
	recs := []string{}

	best, found := lo.Find(set.Options, func(o OptionResult) bool {
		return o.Treatment == set.Winner
	})
	if !found {
		return recs
	}

	for _, o := range set.Options {
		if o.Treatment == set.Winner {
			continue
		}
		gap := best.MonthlyNet.Sub(o.MonthlyNet)
		if gap.IsZero() {
			continue
		}
		recs = append(recs, fmt.Sprintf("%s keeps %s VND/month more than %s",
			set.Winner, gap.StringFixed(0), o.Treatment))
	}

	exempt := lo.Filter(set.Options, func(o OptionResult, _ int) bool { return o.Note != "" })
	for _, o := range exempt {
		recs = append(recs, fmt.Sprintf("%s: %s", o.Treatment, o.Note))
	}
	return recs
}
