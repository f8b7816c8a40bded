package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvquang/vnpit/internal/domain"
)

func TestRenderSalary(t *testing.T) {
	res := domain.SalaryResult{
		Gross:             domain.VND(30_000_000),
		Insurance:         domain.InsuranceBreakdown{BHXH: domain.VND(2_400_000), BHYT: domain.VND(450_000), BHTN: domain.VND(300_000), Total: domain.VND(3_150_000)},
		PersonalDeduction: domain.VND(15_500_000),
		TaxableIncome:     domain.VND(11_350_000),
		Tax:               domain.VND(702_500),
		Net:               domain.VND(26_147_500),
	}
	text := RenderSalary(res)

	assert.Contains(t, text, "30.000.000 ₫")
	assert.Contains(t, text, "702.500 ₫")
	assert.Contains(t, text, "26.147.500 ₫")
	// A zero dependent deduction is omitted entirely.
	assert.NotContains(t, text, "Dependent deduction")
}

func TestRenderFlat(t *testing.T) {
	t.Run("taxable result shows the rate", func(t *testing.T) {
		text := RenderFlat("Prize", domain.FlatRateResult{
			Gross:       domain.VND(50_000_000),
			Taxable:     domain.VND(40_000_000),
			AppliedRate: decimal.NewFromFloat(0.10),
			Tax:         domain.VND(4_000_000),
			Net:         domain.VND(46_000_000),
		})
		assert.Contains(t, text, "PRIZE")
		assert.Contains(t, text, "10%")
		assert.Contains(t, text, "4.000.000 ₫")
	})

	t.Run("exempt result shows the reason instead", func(t *testing.T) {
		text := RenderFlat("Prize", domain.FlatRateResult{
			Gross:           domain.VND(8_000_000),
			Net:             domain.VND(8_000_000),
			ExemptionReason: "winnings at or below the taxable threshold",
		})
		assert.Contains(t, text, "winnings at or below the taxable threshold")
		assert.NotContains(t, text, "Applied rate")
	})
}

func TestMortgageCSV(t *testing.T) {
	sched := domain.MortgageSchedule{
		Rows: []domain.AmortizationRow{
			{Month: 1, Phase: domain.PhasePreferential, Payment: domain.VND(15_000_000), Principal: domain.VND(5_000_000), Interest: domain.VND(10_000_000), RemainingBalance: domain.VND(1_995_000_000)},
			{Month: 2, Phase: domain.PhaseFloating, Payment: domain.VND(16_000_000), Principal: domain.VND(5_100_000), Interest: domain.VND(10_900_000), RemainingBalance: domain.VND(1_989_900_000)},
		},
	}
	text, err := MortgageCSV(sched)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "month,phase,payment,principal,interest,remaining_balance", lines[0])
	assert.Contains(t, lines[1], "preferential")
	assert.Contains(t, lines[2], "floating")
}
