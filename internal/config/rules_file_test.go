package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRules(t *testing.T) {
	t.Run("empty path returns the defaults", func(t *testing.T) {
		rs, err := LoadRules("", rules.Law2026)
		require.NoError(t, err)
		assert.Equal(t, rules.Law2026, rs.Version)
		assert.True(t, rs.PersonalDeduction.Equal(domain.VND(15_500_000)))
	})

	t.Run("empty version defaults to the current law", func(t *testing.T) {
		rs, err := LoadRules("", "")
		require.NoError(t, err)
		assert.Equal(t, rules.Law2026, rs.Version)
	})

	t.Run("overlay overrides named amounts only", func(t *testing.T) {
		path := writeRulesFile(t, `
personal_deduction: 16000000
base_wage: 2500000
region_min_wage:
  1: 5000000
`)
		rs, err := LoadRules(path, rules.Law2026)
		require.NoError(t, err)

		assert.True(t, rs.PersonalDeduction.Equal(domain.VND(16_000_000)))
		assert.True(t, rs.Insurance.BaseWage.Equal(domain.VND(2_500_000)))
		assert.True(t, rs.RegionMinWage[domain.RegionI].Equal(domain.VND(5_000_000)))
		// Untouched amounts keep their defaults.
		assert.True(t, rs.DependentDeduction.Equal(domain.VND(6_200_000)))
		assert.True(t, rs.RegionMinWage[domain.RegionII].Equal(domain.VND(4_410_000)))
	})

	t.Run("overlay selects its own law version", func(t *testing.T) {
		path := writeRulesFile(t, "law_version: \"2025\"\n")
		rs, err := LoadRules(path, rules.Law2026)
		require.NoError(t, err)
		assert.Equal(t, rules.Law2025, rs.Version)
		assert.Len(t, rs.Brackets, 7)
	})

	t.Run("invalid overlay is rejected", func(t *testing.T) {
		path := writeRulesFile(t, "base_wage: -1\n")
		_, err := LoadRules(path, rules.Law2026)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base wage")
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"), rules.Law2026)
		require.Error(t, err)
	})
}

func TestValidateRules(t *testing.T) {
	valid := rules.Default()
	require.NoError(t, ValidateRules(valid))

	t.Run("rejects a gap between brackets", func(t *testing.T) {
		rs := rules.Default()
		rs.Brackets = []domain.TaxBracket{
			{Min: domain.VND(0), Max: domain.VND(10_000_000), Rate: decimal.NewFromFloat(0.05)},
			{Min: domain.VND(12_000_000), Rate: decimal.NewFromFloat(0.15), Unbounded: true},
		}
		assert.Error(t, ValidateRules(rs))
	})

	t.Run("rejects a bounded last bracket", func(t *testing.T) {
		rs := rules.Default()
		rs.Brackets = []domain.TaxBracket{
			{Min: domain.VND(0), Max: domain.VND(10_000_000), Rate: decimal.NewFromFloat(0.05)},
		}
		assert.Error(t, ValidateRules(rs))
	})

	t.Run("rejects a rate above one", func(t *testing.T) {
		rs := rules.Default()
		rs.Brackets = []domain.TaxBracket{
			{Min: domain.VND(0), Rate: decimal.NewFromInt(5), Unbounded: true},
		}
		assert.Error(t, ValidateRules(rs))
	})

	t.Run("rejects a missing region wage", func(t *testing.T) {
		rs := rules.Default()
		rs.RegionMinWage = map[domain.Region]decimal.Decimal{
			domain.RegionI: domain.VND(4_960_000),
		}
		assert.Error(t, ValidateRules(rs))
	})

	t.Run("rejects empty brackets", func(t *testing.T) {
		rs := rules.Default()
		rs.Brackets = nil
		assert.Error(t, ValidateRules(rs))
	})
}
