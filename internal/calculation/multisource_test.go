package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

func TestMultiSource(t *testing.T) {
	rs := rules.Default()
	main := domain.SalaryInput{
		Gross:     domain.VND(30_000_000),
		Region:    domain.RegionI,
		Insurance: domain.AllInsurance(),
	}

	t.Run("main job only matches twelve monthly runs", func(t *testing.T) {
		res := MultiSource(domain.MultiSourceInput{Main: main, Months: 12}, rs)
		monthly := NewSalaryCalculator(rs).Calculate(main)

		assert.True(t, res.FinalizedTax.Equal(monthly.Tax.Mul(domain.VND(12))),
			"finalized = %s, monthly*12 = %s", res.FinalizedTax, monthly.Tax.Mul(domain.VND(12)))
		assert.True(t, res.SettlementDue.IsZero())
		assert.True(t, res.RefundDue.IsZero())
	})

	t.Run("side income withheld at 10% settles up at finalization", func(t *testing.T) {
		res := MultiSource(domain.MultiSourceInput{
			Main:   main,
			Months: 12,
			OtherPayments: []domain.OtherEmployerPayment{
				{Amount: domain.VND(20_000_000)},
				{Amount: domain.VND(20_000_000)},
			},
		}, rs)

		assert.True(t, res.OtherGross.Equal(domain.VND(40_000_000)))
		assert.True(t, res.OtherWithheld.Equal(domain.VND(4_000_000)), "withheld = %s", res.OtherWithheld)

		// The extra 40M lands in the 15% band, so finalization owes more
		// than the 10% already withheld.
		assert.True(t, res.SettlementDue.IsPositive(), "settlement = %s", res.SettlementDue)
		assert.True(t, res.RefundDue.IsZero())
		assert.True(t, res.FinalizedTax.Equal(res.TotalWithheld.Add(res.SettlementDue)))
	})

	t.Run("low side income below the floor produces a refund position", func(t *testing.T) {
		lowMain := domain.SalaryInput{
			Gross:     domain.VND(15_000_000),
			Region:    domain.RegionI,
			Insurance: domain.AllInsurance(),
		}
		res := MultiSource(domain.MultiSourceInput{
			Main:   lowMain,
			Months: 12,
			OtherPayments: []domain.OtherEmployerPayment{
				{Amount: domain.VND(5_000_000)},
			},
		}, rs)

		// 500k was withheld on the side payment but the finalized annual
		// base still owes less than that.
		assert.True(t, res.OtherWithheld.Equal(domain.VND(500_000)))
		assert.True(t, res.RefundDue.IsPositive(), "refund = %s", res.RefundDue)
	})

	t.Run("months out of range defaults to twelve", func(t *testing.T) {
		a := MultiSource(domain.MultiSourceInput{Main: main, Months: 0}, rs)
		b := MultiSource(domain.MultiSourceInput{Main: main, Months: 12}, rs)
		assert.True(t, a.FinalizedTax.Equal(b.FinalizedTax))
	})
}
