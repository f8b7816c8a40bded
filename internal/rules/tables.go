package rules

import (
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/domain"
)

func rate(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func bracket(min, max int64, r float64) domain.TaxBracket {
	return domain.TaxBracket{Min: domain.VND(min), Max: domain.VND(max), Rate: rate(r)}
}

func topBracket(min int64, r float64) domain.TaxBracket {
	return domain.TaxBracket{Min: domain.VND(min), Rate: rate(r), Unbounded: true}
}

// Monthly schedules. Amounts are whole VND.
func brackets2025() []domain.TaxBracket {
	return []domain.TaxBracket{
		bracket(0, 5_000_000, 0.05),
		bracket(5_000_000, 10_000_000, 0.10),
		bracket(10_000_000, 18_000_000, 0.15),
		bracket(18_000_000, 32_000_000, 0.20),
		bracket(32_000_000, 52_000_000, 0.25),
		bracket(52_000_000, 80_000_000, 0.30),
		topBracket(80_000_000, 0.35),
	}
}

func brackets2026() []domain.TaxBracket {
	return []domain.TaxBracket{
		bracket(0, 10_000_000, 0.05),
		bracket(10_000_000, 30_000_000, 0.15),
		bracket(30_000_000, 60_000_000, 0.25),
		bracket(60_000_000, 100_000_000, 0.30),
		topBracket(100_000_000, 0.35),
	}
}

func regionMinWages() map[domain.Region]decimal.Decimal {
	return map[domain.Region]decimal.Decimal{
		domain.RegionI:   domain.VND(4_960_000),
		domain.RegionII:  domain.VND(4_410_000),
		domain.RegionIII: domain.VND(3_860_000),
		domain.RegionIV:  domain.VND(3_450_000),
	}
}

func insuranceRules() InsuranceRules {
	return InsuranceRules{
		BHXHRate:          rate(0.08),
		BHYTRate:          rate(0.015),
		BHTNRate:          rate(0.01),
		BaseWage:          domain.VND(2_340_000),
		BaseWageCapMult:   domain.VND(20),
		RegionWageCapMult: domain.VND(20),
	}
}

func businessSectors() map[domain.BusinessSector]SectorRates {
	return map[domain.BusinessSector]SectorRates{
		domain.SectorDistribution: {PITRate: rate(0.005), VATRate: rate(0.01)},
		domain.SectorServices:     {PITRate: rate(0.02), VATRate: rate(0.05)},
		domain.SectorProduction:   {PITRate: rate(0.015), VATRate: rate(0.03)},
		domain.SectorLeasing:      {PITRate: rate(0.05), VATRate: rate(0.05)},
	}
}

func flatRules(businessThreshold int64) FlatRules {
	return FlatRules{
		WithholdingRate:        rate(0.10),
		WithholdingNonResident: rate(0.20),
		WithholdingMinPayment:  domain.VND(2_000_000),

		RentalPITRate: rate(0.05),
		RentalVATRate: rate(0.05),

		BusinessRevenueThreshold: domain.VND(businessThreshold),

		DividendRate:     rate(0.05),
		InterestRate:     rate(0.05),
		RoyaltyRate:      rate(0.05),
		RoyaltyThreshold: domain.VND(10_000_000),
		SecuritiesRate:   rate(0.001),
		CryptoRate:       rate(0.001),
		GoldRate:         rate(0.001),

		PrizeRate:      rate(0.10),
		PrizeThreshold: domain.VND(10_000_000),

		InheritanceRate:      rate(0.10),
		InheritanceThreshold: domain.VND(10_000_000),

		RealEstateRate: rate(0.02),

		SeveranceRate:          rate(0.10),
		SeveranceExemptPerYear: rate(0.5),

		CreatorPITRate: rate(0.02),
		CreatorVATRate: rate(0.05),
	}
}

func vatRules() VATRules {
	return VATRules{
		StandardRate:  rate(0.10),
		ReducedRate:   rate(0.08),
		EssentialRate: rate(0.05),
	}
}

func law2025() RuleSet {
	return RuleSet{
		Version:            Law2025,
		Brackets:           brackets2025(),
		PersonalDeduction:  domain.VND(11_000_000),
		DependentDeduction: domain.VND(4_400_000),
		Insurance:          insuranceRules(),
		RegionMinWage:      regionMinWages(),
		Flat:               flatRules(100_000_000),
		Business:           businessSectors(),
		VAT:                vatRules(),
	}
}

func law2026() RuleSet {
	return RuleSet{
		Version:            Law2026,
		Brackets:           brackets2026(),
		PersonalDeduction:  domain.VND(15_500_000),
		DependentDeduction: domain.VND(6_200_000),
		Insurance:          insuranceRules(),
		RegionMinWage:      regionMinWages(),
		Flat:               flatRules(200_000_000),
		Business:           businessSectors(),
		VAT:                vatRules(),
	}
}
