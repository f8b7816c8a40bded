package domain

import "github.com/shopspring/decimal"

// TaxBracket is one row of a progressive schedule. Brackets are contiguous,
// sorted ascending by Min, and the last bracket's Max is unbounded (zero Max
// with Unbounded set).
type TaxBracket struct {
	Min       decimal.Decimal `yaml:"min" json:"min"`
	Max       decimal.Decimal `yaml:"max" json:"max"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Unbounded bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
}

// Width returns the bracket width, or zero for the unbounded top bracket.
func (b TaxBracket) Width() decimal.Decimal {
	if b.Unbounded {
		return decimal.Zero
	}
	return b.Max.Sub(b.Min)
}

// Region is one of the four statutory minimum-wage zones. The zone's minimum
// wage bounds the unemployment-insurance contribution base; it is not a tax
// parameter.
type Region int

const (
	RegionI Region = iota + 1
	RegionII
	RegionIII
	RegionIV
)

// Valid reports whether r is one of the four zones.
func (r Region) Valid() bool {
	return r >= RegionI && r <= RegionIV
}

func (r Region) String() string {
	switch r {
	case RegionI:
		return "I"
	case RegionII:
		return "II"
	case RegionIII:
		return "III"
	case RegionIV:
		return "IV"
	default:
		return "unknown"
	}
}

// Residency determines the withholding treatment for individuals without a
// labor contract.
type Residency string

const (
	Resident    Residency = "resident"
	NonResident Residency = "non_resident"
)

// Relationship classifies the giver/receiver relation for inheritance, gift
// and real-estate transfer exemptions.
type Relationship string

const (
	RelationNone        Relationship = "none"
	RelationSpouse      Relationship = "spouse"
	RelationParentChild Relationship = "parent_child"
	RelationGrandparent Relationship = "grandparent"
	RelationSibling     Relationship = "sibling"
)

// IsFamily reports whether the relation is inside the statutory exempt circle.
func (r Relationship) IsFamily() bool {
	switch r {
	case RelationSpouse, RelationParentChild, RelationGrandparent, RelationSibling:
		return true
	}
	return false
}

// InsuranceOptions selects which mandatory insurance schemes apply.
type InsuranceOptions struct {
	BHXH bool `yaml:"bhxh" json:"bhxh"`
	BHYT bool `yaml:"bhyt" json:"bhyt"`
	BHTN bool `yaml:"bhtn" json:"bhtn"`
}

// AllInsurance enables all three schemes, the default for salaried employees.
func AllInsurance() InsuranceOptions {
	return InsuranceOptions{BHXH: true, BHYT: true, BHTN: true}
}

// InsuranceBreakdown is the per-scheme contribution for one month.
type InsuranceBreakdown struct {
	BHXH  decimal.Decimal `json:"bhxh"`
	BHYT  decimal.Decimal `json:"bhyt"`
	BHTN  decimal.Decimal `json:"bhtn"`
	Total decimal.Decimal `json:"total"`
}

// BusinessSector classifies household-business revenue for the direct-method
// presumptive rates.
type BusinessSector string

const (
	SectorDistribution BusinessSector = "distribution"
	SectorServices     BusinessSector = "services"
	SectorProduction   BusinessSector = "production"
	SectorLeasing      BusinessSector = "leasing"
)

// ValidSector reports whether s names a known sector.
func ValidSector(s BusinessSector) bool {
	switch s {
	case SectorDistribution, SectorServices, SectorProduction, SectorLeasing:
		return true
	}
	return false
}
