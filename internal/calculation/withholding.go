package calculation

import (
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// Withholding computes the provisional tax withheld from a payment made
// without a labor contract. Residents are withheld 10% on payments of
// 2,000,000 VND or more; a form 08/CK-TNCN commitment lifts the withholding;
// non-residents are withheld 20% from the first dong.
func Withholding(input domain.WithholdingInput, rs rules.RuleSet) domain.FlatRateResult {
	flat := rs.Flat

	if input.Residency == domain.NonResident {
		return Rule{Rate: flat.WithholdingNonResident}.Evaluate(input.Payment)
	}

	return Rule{
		Rate:                 flat.WithholdingRate,
		ThresholdMode:        ExemptBelow,
		Threshold:            flat.WithholdingMinPayment,
		BelowThresholdReason: "payment below the withholding floor",
		Exempt: func() (bool, string) {
			if input.Commitment02 {
				return true, "low-income commitment (form 08/CK-TNCN) on file"
			}
			return false, ""
		},
	}.Evaluate(input.Payment)
}
