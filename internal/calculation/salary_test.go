package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

func TestSalaryCalculate(t *testing.T) {
	t.Run("30M gross, zone I, no dependents, 2026 rules", func(t *testing.T) {
		sc := NewSalaryCalculator(rules.Default())
		res := sc.Calculate(domain.SalaryInput{
			Gross:     domain.VND(30_000_000),
			Region:    domain.RegionI,
			Insurance: domain.AllInsurance(),
		})

		assert.True(t, res.Insurance.Total.Equal(domain.VND(3_150_000)), "insurance = %s", res.Insurance.Total)
		assert.True(t, res.TaxableIncome.Equal(domain.VND(11_350_000)), "taxable = %s", res.TaxableIncome)
		assert.True(t, res.Tax.Equal(domain.VND(702_500)), "tax = %s", res.Tax)
		assert.True(t, res.Net.Equal(domain.VND(26_147_500)), "net = %s", res.Net)
		assert.Equal(t, "0.15", res.MarginalRate.String())
		assert.True(t, res.AnnualTax.Equal(domain.VND(8_430_000)), "annual tax = %s", res.AnnualTax)
	})

	t.Run("same gross owes more under the 2025 rules", func(t *testing.T) {
		rs2025, err := rules.ForLaw(rules.Law2025)
		require.NoError(t, err)

		input := domain.SalaryInput{
			Gross:     domain.VND(30_000_000),
			Region:    domain.RegionI,
			Insurance: domain.AllInsurance(),
		}
		tax2025 := NewSalaryCalculator(rs2025).Calculate(input).Tax
		tax2026 := NewSalaryCalculator(rules.Default()).Calculate(input).Tax
		assert.True(t, tax2025.GreaterThan(tax2026),
			"2025 tax %s should exceed 2026 tax %s at this income", tax2025, tax2026)
	})

	t.Run("below the deduction line owes nothing", func(t *testing.T) {
		sc := NewSalaryCalculator(rules.Default())
		res := sc.Calculate(domain.SalaryInput{
			Gross:     domain.VND(12_000_000),
			Region:    domain.RegionI,
			Insurance: domain.AllInsurance(),
		})
		assert.True(t, res.Tax.IsZero())
		assert.True(t, res.Net.Equal(res.Gross.Sub(res.Insurance.Total)))
	})

	t.Run("declared insurance base overrides gross", func(t *testing.T) {
		sc := NewSalaryCalculator(rules.Default())
		res := sc.Calculate(domain.SalaryInput{
			Gross:         domain.VND(30_000_000),
			InsuranceBase: domain.VND(10_000_000),
			Region:        domain.RegionI,
			Insurance:     domain.AllInsurance(),
		})
		assert.True(t, res.Insurance.Total.Equal(domain.VND(1_050_000)), "insurance = %s", res.Insurance.Total)
	})

	t.Run("negative gross clamps to zero", func(t *testing.T) {
		sc := NewSalaryCalculator(rules.Default())
		res := sc.Calculate(domain.SalaryInput{Gross: domain.VND(-1), Region: domain.RegionI})
		assert.True(t, res.Gross.IsZero())
		assert.True(t, res.Tax.IsZero())
		assert.True(t, res.EffectiveRate.IsZero())
	})
}

func TestGrossUp(t *testing.T) {
	sc := NewSalaryCalculator(rules.Default())
	template := domain.SalaryInput{Region: domain.RegionI, Insurance: domain.AllInsurance()}

	t.Run("roundtrips through Calculate", func(t *testing.T) {
		target := domain.VND(26_147_500)
		res := sc.GrossUp(target, template)

		// The recovered gross must reproduce the target net within a dong.
		gap := res.Result.Net.Sub(target).Abs()
		assert.True(t, gap.LessThanOrEqual(decimal.NewFromInt(1)),
			"gross %s yields net %s, want %s", res.Gross, res.Result.Net, target)
		assert.True(t, res.Gross.Sub(domain.VND(30_000_000)).Abs().LessThanOrEqual(decimal.NewFromInt(1)),
			"gross = %s", res.Gross)
	})

	t.Run("zero target", func(t *testing.T) {
		res := sc.GrossUp(decimal.Zero, template)
		assert.True(t, res.Gross.IsZero())
	})
}

func TestSeverance(t *testing.T) {
	sc := NewSalaryCalculator(rules.Default())

	t.Run("within the exempt allowance", func(t *testing.T) {
		res := sc.Severance(domain.SeveranceInput{
			Amount:            domain.VND(50_000_000),
			MeanMonthlySalary: domain.VND(20_000_000),
			YearsWorked:       domain.VND(10),
		})
		assert.True(t, res.Tax.IsZero())
		assert.True(t, res.Exempt())
	})

	t.Run("excess over the allowance is withheld at 10%", func(t *testing.T) {
		res := sc.Severance(domain.SeveranceInput{
			Amount:            domain.VND(150_000_000),
			MeanMonthlySalary: domain.VND(20_000_000),
			YearsWorked:       domain.VND(10),
		})
		// Allowance is 0.5 * 20M * 10 = 100M; tax is 10% of the 50M excess.
		assert.True(t, res.Tax.Equal(domain.VND(5_000_000)), "tax = %s", res.Tax)
		assert.False(t, res.Exempt())
	})
}
