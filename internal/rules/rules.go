// Package rules holds the statutory constant tables: bracket schedules,
// deduction amounts, insurance rates and caps, and every flat rate and
// threshold used by the calculators. Tables are immutable values selected by
// an explicit law version; calculators receive them as plain parameters and
// never reach for ambient state.
package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/domain"
)

// LawVersion selects which statutory rule set applies.
type LawVersion string

const (
	// Law2025 is the 7-bracket schedule with the 11,000,000/4,400,000
	// deduction amounts, in force through the end of 2025.
	Law2025 LawVersion = "2025"
	// Law2026 is the 5-bracket schedule with the raised deductions effective
	// from 2026.
	Law2026 LawVersion = "2026"
)

// InsuranceRules are the mandatory-insurance percentages and contribution
// caps. BHXH/BHYT bases are capped at a multiple of the base wage, BHTN at a
// multiple of the regional minimum wage.
type InsuranceRules struct {
	BHXHRate          decimal.Decimal `yaml:"bhxh_rate"`
	BHYTRate          decimal.Decimal `yaml:"bhyt_rate"`
	BHTNRate          decimal.Decimal `yaml:"bhtn_rate"`
	BaseWage          decimal.Decimal `yaml:"base_wage"`
	BaseWageCapMult   decimal.Decimal `yaml:"base_wage_cap_multiple"`
	RegionWageCapMult decimal.Decimal `yaml:"region_wage_cap_multiple"`
}

// SectorRates is the presumptive direct-method levy for one business sector,
// split into its PIT and VAT components.
type SectorRates struct {
	PITRate decimal.Decimal `yaml:"pit_rate"`
	VATRate decimal.Decimal `yaml:"vat_rate"`
}

// Combined is the total presumptive rate on revenue.
func (s SectorRates) Combined() decimal.Decimal {
	return s.PITRate.Add(s.VATRate)
}

// FlatRules collects every single-rate, threshold and exemption constant of
// the non-salary calculators.
type FlatRules struct {
	WithholdingRate        decimal.Decimal `yaml:"withholding_rate"`
	WithholdingNonResident decimal.Decimal `yaml:"withholding_non_resident"`
	WithholdingMinPayment  decimal.Decimal `yaml:"withholding_min_payment"`

	RentalPITRate decimal.Decimal `yaml:"rental_pit_rate"`
	RentalVATRate decimal.Decimal `yaml:"rental_vat_rate"`

	// BusinessRevenueThreshold exempts household-business, rental and
	// content-creator revenue below it (annual).
	BusinessRevenueThreshold decimal.Decimal `yaml:"business_revenue_threshold"`

	DividendRate   decimal.Decimal `yaml:"dividend_rate"`
	InterestRate   decimal.Decimal `yaml:"interest_rate"`
	RoyaltyRate    decimal.Decimal `yaml:"royalty_rate"`
	RoyaltyThreshold decimal.Decimal `yaml:"royalty_threshold"`
	SecuritiesRate decimal.Decimal `yaml:"securities_rate"`
	CryptoRate     decimal.Decimal `yaml:"crypto_rate"`
	GoldRate       decimal.Decimal `yaml:"gold_rate"`

	PrizeRate      decimal.Decimal `yaml:"prize_rate"`
	PrizeThreshold decimal.Decimal `yaml:"prize_threshold"`

	InheritanceRate      decimal.Decimal `yaml:"inheritance_rate"`
	InheritanceThreshold decimal.Decimal `yaml:"inheritance_threshold"`

	RealEstateRate decimal.Decimal `yaml:"real_estate_rate"`

	SeveranceRate decimal.Decimal `yaml:"severance_rate"`
	// SeveranceExemptHalfMonths: exempt allowance is this many months of the
	// mean salary per worked year (statutorily one half).
	SeveranceExemptPerYear decimal.Decimal `yaml:"severance_exempt_per_year"`

	CreatorPITRate decimal.Decimal `yaml:"creator_pit_rate"`
	CreatorVATRate decimal.Decimal `yaml:"creator_vat_rate"`
}

// VATRules are the invoice-VAT rate bands for the deduction method.
type VATRules struct {
	StandardRate  decimal.Decimal `yaml:"standard_rate"`
	ReducedRate   decimal.Decimal `yaml:"reduced_rate"`
	EssentialRate decimal.Decimal `yaml:"essential_rate"`
}

// RuleSet is one complete statutory snapshot. Instances are built once per
// law version and never mutated.
type RuleSet struct {
	Version            LawVersion                         `yaml:"version"`
	Brackets           []domain.TaxBracket                `yaml:"brackets"`
	PersonalDeduction  decimal.Decimal                    `yaml:"personal_deduction"`
	DependentDeduction decimal.Decimal                    `yaml:"dependent_deduction"`
	Insurance          InsuranceRules                     `yaml:"insurance"`
	RegionMinWage      map[domain.Region]decimal.Decimal  `yaml:"region_min_wage"`
	Flat               FlatRules                          `yaml:"flat"`
	Business           map[domain.BusinessSector]SectorRates `yaml:"business"`
	VAT                VATRules                           `yaml:"vat"`
}

// MinWage returns the zone minimum wage, defaulting to zone IV for an
// out-of-enum region rather than failing mid-recalculation.
func (rs RuleSet) MinWage(r domain.Region) decimal.Decimal {
	if w, ok := rs.RegionMinWage[r]; ok {
		return w
	}
	return rs.RegionMinWage[domain.RegionIV]
}

// Sector returns the presumptive rates for a sector, defaulting to services
// (the highest band) for an unknown sector.
func (rs RuleSet) Sector(s domain.BusinessSector) SectorRates {
	if r, ok := rs.Business[s]; ok {
		return r
	}
	return rs.Business[domain.SectorServices]
}

// ForLaw returns the rule set for a law version.
func ForLaw(v LawVersion) (RuleSet, error) {
	switch v {
	case Law2025:
		return law2025(), nil
	case Law2026:
		return law2026(), nil
	default:
		return RuleSet{}, fmt.Errorf("unknown law version %q", v)
	}
}

// Default returns the currently effective rule set.
func Default() RuleSet {
	return law2026()
}
