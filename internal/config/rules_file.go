// Package config loads and validates rule files and user snapshots.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// RulesFile is the YAML overlay: a law version selecting the built-in base
// tables, plus optional overrides for the amounts that change by decree
// between law revisions.
type RulesFile struct {
	LawVersion rules.LawVersion `yaml:"law_version"`

	PersonalDeduction  *decimal.Decimal    `yaml:"personal_deduction,omitempty"`
	DependentDeduction *decimal.Decimal    `yaml:"dependent_deduction,omitempty"`
	Brackets           []domain.TaxBracket `yaml:"brackets,omitempty"`

	BaseWage                 *decimal.Decimal `yaml:"base_wage,omitempty"`
	BusinessRevenueThreshold *decimal.Decimal `yaml:"business_revenue_threshold,omitempty"`
	ReducedVATRate           *decimal.Decimal `yaml:"reduced_vat_rate,omitempty"`

	RegionMinWage map[int]decimal.Decimal `yaml:"region_min_wage,omitempty"`
}

// LoadRules resolves the effective rule set: built-in defaults for the law
// version, overlaid with whatever the file overrides. An empty path returns
// the defaults untouched.
func LoadRules(path string, version rules.LawVersion) (rules.RuleSet, error) {
	if version == "" {
		version = rules.Law2026
	}
	base, err := rules.ForLaw(version)
	if err != nil {
		return rules.RuleSet{}, err
	}
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules.RuleSet{}, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return rules.RuleSet{}, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if file.LawVersion != "" && file.LawVersion != version {
		base, err = rules.ForLaw(file.LawVersion)
		if err != nil {
			return rules.RuleSet{}, err
		}
	}

	merged := applyOverrides(base, file)
	if err := ValidateRules(merged); err != nil {
		return rules.RuleSet{}, fmt.Errorf("rules validation failed: %w", err)
	}
	return merged, nil
}

func applyOverrides(base rules.RuleSet, file RulesFile) rules.RuleSet {
	if file.PersonalDeduction != nil {
		base.PersonalDeduction = *file.PersonalDeduction
	}
	if file.DependentDeduction != nil {
		base.DependentDeduction = *file.DependentDeduction
	}
	if len(file.Brackets) > 0 {
		base.Brackets = file.Brackets
	}
	if file.BaseWage != nil {
		base.Insurance.BaseWage = *file.BaseWage
	}
	if file.BusinessRevenueThreshold != nil {
		base.Flat.BusinessRevenueThreshold = *file.BusinessRevenueThreshold
	}
	if file.ReducedVATRate != nil {
		base.VAT.ReducedRate = *file.ReducedVATRate
	}
	if len(file.RegionMinWage) > 0 {
		// Replace only the zones the file names.
		wages := make(map[domain.Region]decimal.Decimal, len(base.RegionMinWage))
		for k, v := range base.RegionMinWage {
			wages[k] = v
		}
		for zone, wage := range file.RegionMinWage {
			wages[domain.Region(zone)] = wage
		}
		base.RegionMinWage = wages
	}
	return base
}

// ValidateRules rejects rule sets a calculator cannot safely consume.
func ValidateRules(rs rules.RuleSet) error {
	if len(rs.Brackets) == 0 {
		return fmt.Errorf("at least one tax bracket is required")
	}
	prevMax := decimal.Zero
	for i, b := range rs.Brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be a fraction between 0 and 1", i)
		}
		if !b.Min.Equal(prevMax) {
			return fmt.Errorf("bracket %d: min %s does not continue from previous max %s", i, b.Min, prevMax)
		}
		last := i == len(rs.Brackets)-1
		if last {
			if !b.Unbounded {
				return fmt.Errorf("last bracket must be unbounded")
			}
			continue
		}
		if b.Unbounded {
			return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d: max must exceed min", i)
		}
		prevMax = b.Max
	}

	if rs.PersonalDeduction.IsNegative() {
		return fmt.Errorf("personal deduction cannot be negative")
	}
	if rs.DependentDeduction.IsNegative() {
		return fmt.Errorf("dependent deduction cannot be negative")
	}
	if rs.Insurance.BaseWage.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("base wage must be positive")
	}
	for _, zone := range []domain.Region{domain.RegionI, domain.RegionII, domain.RegionIII, domain.RegionIV} {
		w, ok := rs.RegionMinWage[zone]
		if !ok {
			return fmt.Errorf("minimum wage for region %s is required", zone)
		}
		if w.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("minimum wage for region %s must be positive", zone)
		}
	}
	if rs.Flat.BusinessRevenueThreshold.IsNegative() {
		return fmt.Errorf("business revenue threshold cannot be negative")
	}
	return nil
}
