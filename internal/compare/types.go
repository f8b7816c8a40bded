// Package compare evaluates the same income under alternative tax
// treatments and reports which comes out ahead.
package compare

import (
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/breakeven"
	"github.com/nvquang/vnpit/internal/domain"
)

// Treatment names one of the compared tax treatments.
type Treatment string

const (
	TreatmentEmployee   Treatment = "employee"
	TreatmentFreelancer Treatment = "freelancer"
	TreatmentBusiness   Treatment = "household_business"
)

// TreatmentInput is the shared income picture the treatments are applied to.
type TreatmentInput struct {
	MonthlyGross decimal.Decimal       `yaml:"monthly_gross" json:"monthlyGross"`
	Dependents   int                   `yaml:"dependents" json:"dependents"`
	Region       domain.Region         `yaml:"region" json:"region"`
	Sector       domain.BusinessSector `yaml:"sector" json:"sector"`
}

// OptionResult is one treatment's outcome at the given gross.
type OptionResult struct {
	Treatment     Treatment       `json:"treatment"`
	MonthlyGross  decimal.Decimal `json:"monthlyGross"`
	MonthlyTax    decimal.Decimal `json:"monthlyTax"`
	MonthlyNet    decimal.Decimal `json:"monthlyNet"`
	AnnualNet     decimal.Decimal `json:"annualNet"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	// Note carries an exemption reason where one applied.
	Note string `json:"note,omitempty"`

	// Deltas against the winning option.
	NetDiffFromBest decimal.Decimal `json:"netDiffFromBest"`
}

// ComparisonSet is the full comparison: every option, the winner and the
// derived recommendations. It has no identity of its own; it is always
// recomputed, never persisted.
type ComparisonSet struct {
	Input           TreatmentInput    `json:"input"`
	Options         []OptionResult    `json:"options"`
	Winner          Treatment         `json:"winner"`
	Recommendations []string          `json:"recommendations"`
	BreakEven       *breakeven.Result `json:"breakEven,omitempty"`
}

// Pair is the two-option comparison shape of the calculator forms: A and B
// plus a derived winner and difference.
type Pair struct {
	A          OptionResult    `json:"a"`
	B          OptionResult    `json:"b"`
	Better     string          `json:"better"` // "a" or "b"
	Difference decimal.Decimal `json:"difference"`
}

// NewPair derives the winner and absolute net difference.
func NewPair(a, b OptionResult) Pair {
	p := Pair{A: a, B: b}
	if a.MonthlyNet.GreaterThanOrEqual(b.MonthlyNet) {
		p.Better = "a"
		p.Difference = a.MonthlyNet.Sub(b.MonthlyNet)
	} else {
		p.Better = "b"
		p.Difference = b.MonthlyNet.Sub(a.MonthlyNet)
	}
	return p
}
