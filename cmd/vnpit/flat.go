package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nvquang/vnpit/internal/calculation"
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/output"
	"github.com/nvquang/vnpit/internal/rules"
)

func rentalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rental",
		Short: "Tax annual residential rental revenue",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			revenue, err := amount(cmd, "revenue")
			if err != nil {
				return err
			}
			res := calculation.Rental(domain.RentalInput{AnnualRevenue: revenue}, rs)
			return emit(cmd, output.RenderSplit("Rental income", res.FlatRateResult,
				output.FormatCurrency(res.PIT), output.FormatCurrency(res.VAT)), res)
		},
	}
	cmd.Flags().String("revenue", "0", "annual rental revenue in VND")
	return cmd
}

func sectorFlag(cmd *cobra.Command) (domain.BusinessSector, error) {
	raw, _ := cmd.Flags().GetString("sector")
	s := domain.BusinessSector(raw)
	if !domain.ValidSector(s) {
		return "", fmt.Errorf("invalid --sector %q: distribution, services, production or leasing", raw)
	}
	return s, nil
}

func businessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "business",
		Short: "Presumptive tax on household-business revenue",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			revenue, err := amount(cmd, "revenue")
			if err != nil {
				return err
			}
			sector, err := sectorFlag(cmd)
			if err != nil {
				return err
			}
			res := calculation.Business(domain.BusinessInput{AnnualRevenue: revenue, Sector: sector}, rs)
			return emit(cmd, output.RenderSplit("Household business", res.FlatRateResult,
				output.FormatCurrency(res.PIT), output.FormatCurrency(res.VAT)), res)
		},
	}
	cmd.Flags().String("revenue", "0", "annual revenue in VND")
	cmd.Flags().String("sector", "services", "business sector")
	return cmd
}

func creatorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creator",
		Short: "Tax content-creator income: platform revenue plus sponsorships",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			platform, err := amount(cmd, "platform")
			if err != nil {
				return err
			}
			sponsorship, err := amount(cmd, "sponsorship")
			if err != nil {
				return err
			}
			region, err := regionFlag(cmd)
			if err != nil {
				return err
			}
			dependents, _ := cmd.Flags().GetInt("dependents")

			res := calculation.Creator(domain.CreatorInput{
				PlatformRevenue: platform,
				SponsorshipPay:  sponsorship,
				Dependents:      dependents,
				Region:          region,
			}, rs)

			text := output.RenderSplit("Creator platform revenue", res.Platform.FlatRateResult,
				output.FormatCurrency(res.Platform.PIT), output.FormatCurrency(res.Platform.VAT)) +
				output.RenderSalary(res.Sponsorship)
			return emit(cmd, text, res)
		},
	}
	cmd.Flags().String("platform", "0", "annual platform ad revenue in VND")
	cmd.Flags().String("sponsorship", "0", "monthly sponsorship pay under contract")
	cmd.Flags().Int("dependents", 0, "number of registered dependents")
	cmd.Flags().Int("region", 1, "minimum-wage region 1 to 4")
	return cmd
}

func withholdingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withholding",
		Short: "Withholding on a payment without a labor contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			payment, err := amount(cmd, "payment")
			if err != nil {
				return err
			}
			nonResident, _ := cmd.Flags().GetBool("non-resident")
			commitment, _ := cmd.Flags().GetBool("commitment")

			residency := domain.Resident
			if nonResident {
				residency = domain.NonResident
			}
			res := calculation.Withholding(domain.WithholdingInput{
				Payment:      payment,
				Residency:    residency,
				Commitment02: commitment,
			}, rs)
			return emit(cmd, output.RenderFlat("Contract withholding", res), res)
		},
	}
	cmd.Flags().String("payment", "0", "payment amount in VND")
	cmd.Flags().Bool("non-resident", false, "payee is a non-resident")
	cmd.Flags().Bool("commitment", false, "form 08/CK-TNCN commitment on file")
	return cmd
}

// flatIncomeCmds builds the single-amount flat-rate commands that differ
// only in which calculator they call.
func flatIncomeCmds() []*cobra.Command {
	single := func(use, short, flag, caption string, calc func(d decimal.Decimal, rs rules.RuleSet, cmd *cobra.Command) domain.FlatRateResult) *cobra.Command {
		cmd := &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				rs, err := ruleSet(cmd)
				if err != nil {
					return err
				}
				amt, err := amount(cmd, flag)
				if err != nil {
					return err
				}
				res := calc(amt, rs, cmd)
				return emit(cmd, output.RenderFlat(caption, res), res)
			},
		}
		cmd.Flags().String(flag, "0", "amount in VND")
		return cmd
	}

	prize := single("prize", "Tax a lottery or promotional prize", "amount", "Prize",
		func(d decimal.Decimal, rs rules.RuleSet, _ *cobra.Command) domain.FlatRateResult {
			return calculation.Prize(domain.PrizeInput{Amount: d}, rs)
		})

	dividend := single("dividend", "Tax dividend income", "amount", "Dividend",
		func(d decimal.Decimal, rs rules.RuleSet, _ *cobra.Command) domain.FlatRateResult {
			return calculation.Dividend(domain.DividendInput{Amount: d}, rs)
		})

	interest := single("interest", "Tax interest income", "amount", "Interest",
		func(d decimal.Decimal, rs rules.RuleSet, cmd *cobra.Command) domain.FlatRateResult {
			govBond, _ := cmd.Flags().GetBool("government-bond")
			return calculation.Interest(domain.InterestInput{Amount: d, GovernmentBond: govBond}, rs)
		})
	interest.Flags().Bool("government-bond", false, "interest is from government bonds")

	royalty := single("royalty", "Tax royalty or franchise income", "amount", "Royalty",
		func(d decimal.Decimal, rs rules.RuleSet, _ *cobra.Command) domain.FlatRateResult {
			return calculation.Royalty(domain.RoyaltyInput{Amount: d}, rs)
		})

	securities := single("securities", "Tax a listed-securities transfer", "proceeds", "Securities transfer",
		func(d decimal.Decimal, rs rules.RuleSet, _ *cobra.Command) domain.FlatRateResult {
			return calculation.Securities(domain.SecuritiesInput{Proceeds: d}, rs)
		})

	crypto := single("crypto", "Tax a digital-asset transfer", "proceeds", "Digital-asset transfer",
		func(d decimal.Decimal, rs rules.RuleSet, _ *cobra.Command) domain.FlatRateResult {
			return calculation.Crypto(domain.CryptoInput{Proceeds: d}, rs)
		})

	gold := single("gold", "Tax a bullion-gold transfer", "proceeds", "Gold transfer",
		func(d decimal.Decimal, rs rules.RuleSet, _ *cobra.Command) domain.FlatRateResult {
			return calculation.Gold(domain.GoldInput{Proceeds: d}, rs)
		})

	inheritance := single("inheritance", "Tax an inheritance or gift", "value", "Inheritance",
		func(d decimal.Decimal, rs rules.RuleSet, cmd *cobra.Command) domain.FlatRateResult {
			rel, _ := cmd.Flags().GetString("relationship")
			return calculation.Inheritance(domain.InheritanceInput{
				Value:        d,
				Relationship: domain.Relationship(rel),
			}, rs)
		})
	inheritance.Flags().String("relationship", "none", "relation to the giver: spouse, parent_child, grandparent, sibling or none")

	realestate := single("realestate", "Tax a real-estate transfer", "price", "Real-estate transfer",
		func(d decimal.Decimal, rs rules.RuleSet, cmd *cobra.Command) domain.FlatRateResult {
			rel, _ := cmd.Flags().GetString("relationship")
			sole, _ := cmd.Flags().GetBool("sole-residence")
			return calculation.RealEstate(domain.RealEstateInput{
				Price:         d,
				Relationship:  domain.Relationship(rel),
				SoleResidence: sole,
			}, rs)
		})
	realestate.Flags().String("relationship", "none", "relation to the buyer: spouse, parent_child, grandparent, sibling or none")
	realestate.Flags().Bool("sole-residence", false, "the property is the seller's only residence")

	return []*cobra.Command{prize, dividend, interest, royalty, securities, crypto, gold, inheritance, realestate}
}
