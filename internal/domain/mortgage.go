package domain

import "github.com/shopspring/decimal"

// LoanPhase tags an amortization row with the pricing phase that produced it.
type LoanPhase string

const (
	PhaseGrace        LoanPhase = "grace"
	PhasePreferential LoanPhase = "preferential"
	PhaseFloating     LoanPhase = "floating"
)

// RepaymentMethod selects how principal is scheduled after the grace period.
type RepaymentMethod string

const (
	MethodAnnuity      RepaymentMethod = "annuity"
	MethodStraightLine RepaymentMethod = "straight_line"
)

// MortgageInput describes a three-phase bank mortgage: an interest-only grace
// window, a fixed preferential-rate phase, then a floating rate to maturity.
type MortgageInput struct {
	LoanAmount         decimal.Decimal `yaml:"loan_amount" json:"loanAmount"`
	TermMonths         int             `yaml:"term_months" json:"termMonths"`
	GraceMonths        int             `yaml:"grace_months" json:"graceMonths"`
	PreferentialMonths int             `yaml:"preferential_months" json:"preferentialMonths"`
	// Annual rates as fractions, e.g. 0.07 for 7%.
	PreferentialRate decimal.Decimal `yaml:"preferential_rate" json:"preferentialRate"`
	FloatingRate     decimal.Decimal `yaml:"floating_rate" json:"floatingRate"`
	Method           RepaymentMethod `yaml:"method" json:"method"`
	// MonthlyIncome, when set, feeds the affordability ratio.
	MonthlyIncome decimal.Decimal `yaml:"monthly_income" json:"monthlyIncome"`
}

// AmortizationRow is one month of the schedule. Principal plus Interest
// equals Payment; RemainingBalance never increases.
type AmortizationRow struct {
	Month            int             `json:"month"`
	Phase            LoanPhase       `json:"phase"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// MortgageSchedule is the full schedule plus its headline aggregates.
type MortgageSchedule struct {
	Rows           []AmortizationRow `json:"rows"`
	TotalPaid      decimal.Decimal   `json:"totalPaid"`
	TotalInterest  decimal.Decimal   `json:"totalInterest"`
	FirstPayment   decimal.Decimal   `json:"firstPayment"`
	PeakPayment    decimal.Decimal   `json:"peakPayment"`
	FloatingFirst  decimal.Decimal   `json:"floatingFirst"`
	PaymentToIncome decimal.Decimal  `json:"paymentToIncome,omitempty"`
}

// RateSensitivityRow is the floating-phase payment under a stressed rate.
type RateSensitivityRow struct {
	RateDelta       decimal.Decimal `json:"rateDelta"`
	FloatingRate    decimal.Decimal `json:"floatingRate"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	TotalInterest   decimal.Decimal `json:"totalInterest"`
	PaymentToIncome decimal.Decimal `json:"paymentToIncome,omitempty"`
}
