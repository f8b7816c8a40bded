package domain

import "github.com/shopspring/decimal"

// VATRateClass selects the statutory VAT rate band for a line.
type VATRateClass string

const (
	VATStandard VATRateClass = "standard" // 10%, or 8% inside the reduction window
	VATEssential VATRateClass = "essential" // 5%
	VATExemptCls VATRateClass = "exempt"
)

// VATLine is one revenue or purchase line for the deduction method.
type VATLine struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Class  VATRateClass    `yaml:"class" json:"class"`
	// Reduced applies the temporary 8% reduction to a standard-rated line.
	Reduced bool `yaml:"reduced" json:"reduced"`
}

// VATDeductionInput is the input of the credit/deduction method.
type VATDeductionInput struct {
	Sales     []VATLine `yaml:"sales" json:"sales"`
	Purchases []VATLine `yaml:"purchases" json:"purchases"`
}

// VATDeductionResult is output VAT minus creditable input VAT.
type VATDeductionResult struct {
	OutputVAT  decimal.Decimal `json:"outputVAT"`
	InputVAT   decimal.Decimal `json:"inputVAT"`
	VATPayable decimal.Decimal `json:"vatPayable"`
	// Carryforward is the credit carried to later periods when input exceeds
	// output; payable is floored at zero, not refunded here.
	Carryforward decimal.Decimal `json:"carryforward"`
}

// VATDirectInput is the input of the direct (presumptive) method.
type VATDirectInput struct {
	AnnualRevenue decimal.Decimal `yaml:"annual_revenue" json:"annualRevenue"`
	Sector        BusinessSector  `yaml:"sector" json:"sector"`
}

// VATDirectResult is sector rate times revenue, with the registration
// threshold exemption.
type VATDirectResult struct {
	FlatRateResult
}

// VATMethodComparison pairs both methods and the cheaper choice.
type VATMethodComparison struct {
	Deduction VATDeductionResult `json:"deduction"`
	Direct    VATDirectResult    `json:"direct"`
	Better    string             `json:"better"` // "deduction" or "direct"
	Savings   decimal.Decimal    `json:"savings"`
}
