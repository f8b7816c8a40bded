package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvquang/vnpit/internal/domain"
)

func TestForLaw(t *testing.T) {
	t.Run("2025", func(t *testing.T) {
		rs, err := ForLaw(Law2025)
		require.NoError(t, err)
		assert.Len(t, rs.Brackets, 7)
		assert.True(t, rs.PersonalDeduction.Equal(domain.VND(11_000_000)))
		assert.True(t, rs.Flat.BusinessRevenueThreshold.Equal(domain.VND(100_000_000)))
	})

	t.Run("2026", func(t *testing.T) {
		rs, err := ForLaw(Law2026)
		require.NoError(t, err)
		assert.Len(t, rs.Brackets, 5)
		assert.True(t, rs.PersonalDeduction.Equal(domain.VND(15_500_000)))
		assert.True(t, rs.DependentDeduction.Equal(domain.VND(6_200_000)))
		assert.True(t, rs.Flat.BusinessRevenueThreshold.Equal(domain.VND(200_000_000)))
	})

	t.Run("unknown version errors", func(t *testing.T) {
		_, err := ForLaw(LawVersion("1999"))
		assert.Error(t, err)
	})
}

func TestBracketSchedulesAreWellFormed(t *testing.T) {
	for _, version := range []LawVersion{Law2025, Law2026} {
		rs, err := ForLaw(version)
		require.NoError(t, err)

		t.Run(string(version), func(t *testing.T) {
			prevMax := domain.VND(0)
			prevRate := domain.VND(0)
			for i, b := range rs.Brackets {
				assert.True(t, b.Min.Equal(prevMax), "bracket %d does not continue from %s", i, prevMax)
				assert.True(t, b.Rate.GreaterThan(prevRate), "bracket %d rate does not rise", i)
				prevRate = b.Rate
				if b.Unbounded {
					assert.Equal(t, len(rs.Brackets)-1, i, "only the last bracket may be unbounded")
					continue
				}
				assert.True(t, b.Max.GreaterThan(b.Min))
				prevMax = b.Max
			}
			assert.True(t, rs.Brackets[len(rs.Brackets)-1].Unbounded)
		})
	}
}

func TestMinWageFallback(t *testing.T) {
	rs := Default()
	assert.True(t, rs.MinWage(domain.RegionII).Equal(domain.VND(4_410_000)))
	// An out-of-enum region falls back to the lowest zone.
	assert.True(t, rs.MinWage(domain.Region(9)).Equal(domain.VND(3_450_000)))
}

func TestSectorFallback(t *testing.T) {
	rs := Default()
	services := rs.Sector(domain.SectorServices)
	unknown := rs.Sector(domain.BusinessSector("street-magic"))
	assert.True(t, unknown.PITRate.Equal(services.PITRate))
	assert.True(t, unknown.Combined().Equal(services.Combined()))
}

func TestInsuranceConstants(t *testing.T) {
	rs := Default()
	total := rs.Insurance.BHXHRate.Add(rs.Insurance.BHYTRate).Add(rs.Insurance.BHTNRate)
	assert.Equal(t, "0.105", total.String())
	assert.True(t, rs.Insurance.BaseWage.Equal(domain.VND(2_340_000)))
}
