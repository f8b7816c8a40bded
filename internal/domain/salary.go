package domain

import "github.com/shopspring/decimal"

// SalaryInput describes one month of employment income for the progressive
// PIT calculation.
type SalaryInput struct {
	Gross decimal.Decimal `yaml:"gross" json:"gross"`
	// InsuranceBase is the declared contribution base. Zero means "use gross".
	InsuranceBase   decimal.Decimal  `yaml:"insurance_base" json:"insuranceBase"`
	Dependents      int              `yaml:"dependents" json:"dependents"`
	Region          Region           `yaml:"region" json:"region"`
	Insurance       InsuranceOptions `yaml:"insurance" json:"insurance"`
	OtherDeductions decimal.Decimal  `yaml:"other_deductions" json:"otherDeductions"`
}

// SalaryResult is the fully populated monthly outcome.
type SalaryResult struct {
	Gross              decimal.Decimal    `json:"gross"`
	Insurance          InsuranceBreakdown `json:"insurance"`
	PersonalDeduction  decimal.Decimal    `json:"personalDeduction"`
	DependentDeduction decimal.Decimal    `json:"dependentDeduction"`
	OtherDeductions    decimal.Decimal    `json:"otherDeductions"`
	TaxableIncome      decimal.Decimal    `json:"taxableIncome"`
	Tax                decimal.Decimal    `json:"tax"`
	Net                decimal.Decimal    `json:"net"`
	EffectiveRate      decimal.Decimal    `json:"effectiveRate"`
	MarginalRate       decimal.Decimal    `json:"marginalRate"`
	AnnualTax          decimal.Decimal    `json:"annualTax"`
	AnnualNet          decimal.Decimal    `json:"annualNet"`
}

// OtherEmployerPayment is a payment from a secondary employer, withheld at
// the flat rate rather than run through the progressive schedule.
type OtherEmployerPayment struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// MultiSourceInput is a full-year picture for someone with a main employer
// plus secondary income subject to 10% withholding.
type MultiSourceInput struct {
	Main          SalaryInput            `yaml:"main" json:"main"`
	Months        int                    `yaml:"months" json:"months"`
	OtherPayments []OtherEmployerPayment `yaml:"other_payments" json:"otherPayments"`
}

// MultiSourceResult reconciles withheld amounts against the finalized annual
// liability.
type MultiSourceResult struct {
	MainAnnual        SalaryResult    `json:"mainAnnual"`
	OtherGross        decimal.Decimal `json:"otherGross"`
	OtherWithheld     decimal.Decimal `json:"otherWithheld"`
	FinalizedTaxable  decimal.Decimal `json:"finalizedTaxable"`
	FinalizedTax      decimal.Decimal `json:"finalizedTax"`
	TotalWithheld     decimal.Decimal `json:"totalWithheld"`
	SettlementDue     decimal.Decimal `json:"settlementDue"`
	RefundDue         decimal.Decimal `json:"refundDue"`
	TotalNet          decimal.Decimal `json:"totalNet"`
	EffectiveRateYear decimal.Decimal `json:"effectiveRateYear"`
}

// SeveranceInput is a lump-sum severance or retirement allowance payment.
type SeveranceInput struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	// MeanMonthlySalary is the average of the last six months, the base of
	// the statutory exempt allowance.
	MeanMonthlySalary decimal.Decimal `yaml:"mean_monthly_salary" json:"meanMonthlySalary"`
	YearsWorked       decimal.Decimal `yaml:"years_worked" json:"yearsWorked"`
}

// GrossUpResult reports the gross salary required to reach a target net.
type GrossUpResult struct {
	TargetNet decimal.Decimal `json:"targetNet"`
	Gross     decimal.Decimal `json:"gross"`
	Result    SalaryResult    `json:"result"`
}
