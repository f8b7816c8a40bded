package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

func TestVATDeduction(t *testing.T) {
	rs := rules.Default()

	t.Run("reduced-rate sales against reduced-rate purchases", func(t *testing.T) {
		res := VATDeduction(domain.VATDeductionInput{
			Sales:     []domain.VATLine{{Amount: domain.VND(100_000_000), Class: domain.VATStandard, Reduced: true}},
			Purchases: []domain.VATLine{{Amount: domain.VND(60_000_000), Class: domain.VATStandard, Reduced: true}},
		}, rs)
		assert.True(t, res.OutputVAT.Equal(domain.VND(8_000_000)), "output = %s", res.OutputVAT)
		assert.True(t, res.InputVAT.Equal(domain.VND(4_800_000)), "input = %s", res.InputVAT)
		assert.True(t, res.VATPayable.Equal(domain.VND(3_200_000)), "payable = %s", res.VATPayable)
		assert.True(t, res.Carryforward.IsZero())
	})

	t.Run("excess input becomes a carryforward", func(t *testing.T) {
		res := VATDeduction(domain.VATDeductionInput{
			Sales:     []domain.VATLine{{Amount: domain.VND(10_000_000), Class: domain.VATStandard}},
			Purchases: []domain.VATLine{{Amount: domain.VND(50_000_000), Class: domain.VATStandard}},
		}, rs)
		assert.True(t, res.VATPayable.IsZero())
		assert.True(t, res.Carryforward.Equal(domain.VND(4_000_000)), "carryforward = %s", res.Carryforward)
	})

	t.Run("exempt lines carry no VAT", func(t *testing.T) {
		res := VATDeduction(domain.VATDeductionInput{
			Sales: []domain.VATLine{
				{Amount: domain.VND(100_000_000), Class: domain.VATExemptCls},
				{Amount: domain.VND(20_000_000), Class: domain.VATEssential},
			},
		}, rs)
		assert.True(t, res.OutputVAT.Equal(domain.VND(1_000_000)), "output = %s", res.OutputVAT)
	})
}

func TestVATDirect(t *testing.T) {
	rs := rules.Default()

	t.Run("sector VAT rate on full revenue", func(t *testing.T) {
		res := VATDirect(domain.VATDirectInput{
			AnnualRevenue: domain.VND(500_000_000),
			Sector:        domain.SectorServices,
		}, rs)
		assert.True(t, res.Tax.Equal(domain.VND(25_000_000)), "tax = %s", res.Tax)
	})

	t.Run("threshold exemption", func(t *testing.T) {
		res := VATDirect(domain.VATDirectInput{
			AnnualRevenue: domain.VND(150_000_000),
			Sector:        domain.SectorServices,
		}, rs)
		assert.True(t, res.Exempt())
	})
}

func TestCompareVATMethods(t *testing.T) {
	rs := rules.Default()

	ded := domain.VATDeductionInput{
		Sales:     []domain.VATLine{{Amount: domain.VND(500_000_000), Class: domain.VATStandard}},
		Purchases: []domain.VATLine{{Amount: domain.VND(400_000_000), Class: domain.VATStandard}},
	}
	dir := domain.VATDirectInput{AnnualRevenue: domain.VND(500_000_000), Sector: domain.SectorServices}

	res := CompareVATMethods(ded, dir, rs)
	// Deduction: 50M - 40M = 10M payable. Direct: 5% of 500M = 25M.
	assert.Equal(t, "deduction", res.Better)
	assert.True(t, res.Savings.Equal(domain.VND(15_000_000)), "savings = %s", res.Savings)
}
