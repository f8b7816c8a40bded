package domain

import "github.com/shopspring/decimal"

// FlatRateResult is the shared result shape of every single-rate calculator.
// An exempt outcome carries a non-empty ExemptionReason so callers can tell
// it apart from a taxable base that happens to owe zero.
type FlatRateResult struct {
	Gross           decimal.Decimal `json:"gross"`
	Taxable         decimal.Decimal `json:"taxable"`
	AppliedRate     decimal.Decimal `json:"appliedRate"`
	Tax             decimal.Decimal `json:"tax"`
	Net             decimal.Decimal `json:"net"`
	ExemptionReason string          `json:"exemptionReason,omitempty"`
}

// Exempt reports whether the result was produced by an exemption rule.
func (r FlatRateResult) Exempt() bool { return r.ExemptionReason != "" }

// RentalInput is annual rental revenue for one property owner.
type RentalInput struct {
	AnnualRevenue decimal.Decimal `yaml:"annual_revenue" json:"annualRevenue"`
}

// RentalResult splits the combined levy into its PIT and VAT halves.
type RentalResult struct {
	FlatRateResult
	PIT decimal.Decimal `json:"pit"`
	VAT decimal.Decimal `json:"vat"`
}

// InterestInput is interest income, optionally from exempt government bonds.
type InterestInput struct {
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
	GovernmentBond bool            `yaml:"government_bond" json:"governmentBond"`
}

// SecuritiesInput is the sale proceeds of a listed-securities transfer.
type SecuritiesInput struct {
	Proceeds decimal.Decimal `yaml:"proceeds" json:"proceeds"`
}

// CryptoInput is the sale proceeds of a digital-asset transfer.
type CryptoInput struct {
	Proceeds decimal.Decimal `yaml:"proceeds" json:"proceeds"`
}

// PrizeInput is a lottery winning, promotional prize or casino payout.
type PrizeInput struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// InheritanceInput is an inheritance or gift of registrable assets.
type InheritanceInput struct {
	Value        decimal.Decimal `yaml:"value" json:"value"`
	Relationship Relationship    `yaml:"relationship" json:"relationship"`
}

// RealEstateInput is a real-estate transfer at the declared price.
type RealEstateInput struct {
	Price         decimal.Decimal `yaml:"price" json:"price"`
	Relationship  Relationship    `yaml:"relationship" json:"relationship"`
	SoleResidence bool            `yaml:"sole_residence" json:"soleResidence"`
}

// GoldInput is a bullion-gold transfer at the sale price.
type GoldInput struct {
	Proceeds decimal.Decimal `yaml:"proceeds" json:"proceeds"`
}

// RoyaltyInput is royalty or franchise income per contract.
type RoyaltyInput struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// WithholdingInput is a single payment to an individual without a labor
// contract (freelance, service fee, commission).
type WithholdingInput struct {
	Payment   decimal.Decimal `yaml:"payment" json:"payment"`
	Residency Residency       `yaml:"residency" json:"residency"`
	// Commitment02 marks a form 08/CK-TNCN low-income commitment on file,
	// which lifts withholding entirely.
	Commitment02 bool `yaml:"commitment_02" json:"commitment02"`
}

// BusinessInput is annual household-business revenue in one sector.
type BusinessInput struct {
	AnnualRevenue decimal.Decimal `yaml:"annual_revenue" json:"annualRevenue"`
	Sector        BusinessSector  `yaml:"sector" json:"sector"`
}

// BusinessResult carries the PIT/VAT split of the presumptive levy.
type BusinessResult struct {
	FlatRateResult
	PIT decimal.Decimal `json:"pit"`
	VAT decimal.Decimal `json:"vat"`
}

// CreatorInput is content-creator income: platform ad revenue taxed as
// business income, and sponsorship paid under a labor-style contract taxed
// progressively by the salary calculator.
type CreatorInput struct {
	PlatformRevenue decimal.Decimal `yaml:"platform_revenue" json:"platformRevenue"`
	SponsorshipPay  decimal.Decimal `yaml:"sponsorship_pay" json:"sponsorshipPay"`
	Dependents      int             `yaml:"dependents" json:"dependents"`
	Region          Region          `yaml:"region" json:"region"`
}

// CreatorResult combines both treatments into one statement.
type CreatorResult struct {
	Platform    BusinessResult  `json:"platform"`
	Sponsorship SalaryResult    `json:"sponsorship"`
	TotalTax    decimal.Decimal `json:"totalTax"`
	TotalNet    decimal.Decimal `json:"totalNet"`
}

// DividendInput is dividend income from capital investment.
type DividendInput struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}
