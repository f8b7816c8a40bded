package calculation

import (
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

// Dividend taxes capital-investment income flat at 5%.
func Dividend(input domain.DividendInput, rs rules.RuleSet) domain.FlatRateResult {
	return Rule{Rate: rs.Flat.DividendRate}.Evaluate(input.Amount)
}

// Interest taxes interest income flat at 5%; government-bond interest is
// exempt by kind, not by amount.
func Interest(input domain.InterestInput, rs rules.RuleSet) domain.FlatRateResult {
	return Rule{
		Rate: rs.Flat.InterestRate,
		Exempt: func() (bool, string) {
			if input.GovernmentBond {
				return true, "government bond interest is exempt"
			}
			return false, ""
		},
	}.Evaluate(input.Amount)
}

// Royalty taxes royalty and franchise income at 5% on the amount above the
// per-contract threshold.
func Royalty(input domain.RoyaltyInput, rs rules.RuleSet) domain.FlatRateResult {
	return Rule{
		Rate:          rs.Flat.RoyaltyRate,
		ThresholdMode: ExcessOver,
		Threshold:     rs.Flat.RoyaltyThreshold,
	}.Evaluate(input.Amount)
}

// Securities taxes a listed-securities transfer at 0.1% of proceeds,
// regardless of gain or loss.
func Securities(input domain.SecuritiesInput, rs rules.RuleSet) domain.FlatRateResult {
	return Rule{Rate: rs.Flat.SecuritiesRate}.Evaluate(input.Proceeds)
}

// Crypto taxes a digital-asset transfer at 0.1% of proceeds, mirroring the
// securities treatment.
func Crypto(input domain.CryptoInput, rs rules.RuleSet) domain.FlatRateResult {
	return Rule{Rate: rs.Flat.CryptoRate}.Evaluate(input.Proceeds)
}
