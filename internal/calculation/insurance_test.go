package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

func TestContributions(t *testing.T) {
	rs := rules.Default()

	t.Run("uncapped base", func(t *testing.T) {
		got := Contributions(domain.VND(30_000_000), domain.RegionI, domain.AllInsurance(), rs)
		assert.True(t, got.BHXH.Equal(domain.VND(2_400_000)), "BHXH = %s", got.BHXH)
		assert.True(t, got.BHYT.Equal(domain.VND(450_000)), "BHYT = %s", got.BHYT)
		assert.True(t, got.BHTN.Equal(domain.VND(300_000)), "BHTN = %s", got.BHTN)
		assert.True(t, got.Total.Equal(domain.VND(3_150_000)), "Total = %s", got.Total)
	})

	t.Run("caps bind on a high base", func(t *testing.T) {
		got := Contributions(domain.VND(600_000_000), domain.RegionI, domain.AllInsurance(), rs)
		// BHXH/BHYT cap at 20x base wage, BHTN at 20x the zone I minimum wage.
		assert.True(t, got.BHXH.Equal(domain.VND(3_744_000)), "BHXH = %s", got.BHXH)
		assert.True(t, got.BHYT.Equal(domain.VND(702_000)), "BHYT = %s", got.BHYT)
		assert.True(t, got.BHTN.Equal(domain.VND(992_000)), "BHTN = %s", got.BHTN)
	})

	t.Run("BHTN cap follows the region", func(t *testing.T) {
		regionI := Contributions(domain.VND(600_000_000), domain.RegionI, domain.AllInsurance(), rs)
		regionIV := Contributions(domain.VND(600_000_000), domain.RegionIV, domain.AllInsurance(), rs)
		assert.True(t, regionIV.BHTN.LessThan(regionI.BHTN))
		assert.True(t, regionIV.BHTN.Equal(domain.VND(690_000)), "BHTN = %s", regionIV.BHTN)
	})

	t.Run("disabled schemes contribute nothing", func(t *testing.T) {
		got := Contributions(domain.VND(30_000_000), domain.RegionI, domain.InsuranceOptions{BHXH: true}, rs)
		assert.True(t, got.BHYT.IsZero())
		assert.True(t, got.BHTN.IsZero())
		assert.True(t, got.Total.Equal(got.BHXH))
	})
}

func TestTaxableIncome(t *testing.T) {
	rs := rules.Default()

	t.Run("standard deduction chain", func(t *testing.T) {
		got := TaxableIncome(domain.VND(30_000_000), domain.VND(3_150_000), 0, domain.VND(0), rs)
		assert.True(t, got.Equal(domain.VND(11_350_000)), "taxable = %s", got)
	})

	t.Run("dependents reduce the base", func(t *testing.T) {
		got := TaxableIncome(domain.VND(30_000_000), domain.VND(3_150_000), 1, domain.VND(0), rs)
		assert.True(t, got.Equal(domain.VND(5_150_000)), "taxable = %s", got)
	})

	t.Run("floors at zero", func(t *testing.T) {
		got := TaxableIncome(domain.VND(10_000_000), domain.VND(1_050_000), 3, domain.VND(0), rs)
		assert.True(t, got.IsZero(), "taxable = %s", got)
	})
}
