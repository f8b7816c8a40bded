package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvquang/vnpit/internal/calculation"
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/output"
)

// parseVATLines parses repeatable "amount[:class[:reduced]]" flag values,
// e.g. 100000000:standard:reduced or 5000000:essential.
func parseVATLines(raw []string) ([]domain.VATLine, error) {
	lines := make([]domain.VATLine, 0, len(raw))
	for _, item := range raw {
		parts := strings.Split(item, ":")
		amt, err := parseListAmount(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid VAT line amount %q: %w", parts[0], err)
		}
		line := domain.VATLine{Amount: amt, Class: domain.VATStandard}
		if len(parts) > 1 && parts[1] != "" {
			switch domain.VATRateClass(parts[1]) {
			case domain.VATStandard, domain.VATEssential, domain.VATExemptCls:
				line.Class = domain.VATRateClass(parts[1])
			default:
				return nil, fmt.Errorf("invalid VAT class %q: standard, essential or exempt", parts[1])
			}
		}
		if len(parts) > 2 {
			line.Reduced = parts[2] == "reduced"
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func vatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vat",
		Short: "VAT under the deduction method, direct method, or both",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}

			salesRaw, _ := cmd.Flags().GetStringSlice("sale")
			purchasesRaw, _ := cmd.Flags().GetStringSlice("purchase")
			sales, err := parseVATLines(salesRaw)
			if err != nil {
				return err
			}
			purchases, err := parseVATLines(purchasesRaw)
			if err != nil {
				return err
			}
			ded := domain.VATDeductionInput{Sales: sales, Purchases: purchases}

			revenue, err := amount(cmd, "revenue")
			if err != nil {
				return err
			}

			// With a revenue figure both methods run and are compared;
			// otherwise only the deduction method applies.
			if revenue.IsPositive() {
				sector, err := sectorFlag(cmd)
				if err != nil {
					return err
				}
				dir := domain.VATDirectInput{AnnualRevenue: revenue, Sector: sector}
				res := calculation.CompareVATMethods(ded, dir, rs)
				text := output.RenderVATDeduction(res.Deduction) +
					output.RenderFlat("Direct method", res.Direct.FlatRateResult) +
					fmt.Sprintf("Better method: %s (saves %s)\n", res.Better, output.FormatCurrency(res.Savings))
				return emit(cmd, text, res)
			}

			res := calculation.VATDeduction(ded, rs)
			return emit(cmd, output.RenderVATDeduction(res), res)
		},
	}
	cmd.Flags().StringSlice("sale", nil, "sales line amount[:class[:reduced]] (repeatable)")
	cmd.Flags().StringSlice("purchase", nil, "purchase line amount[:class[:reduced]] (repeatable)")
	cmd.Flags().String("revenue", "0", "annual revenue for the direct-method comparison")
	cmd.Flags().String("sector", "services", "business sector for the direct method")
	return cmd
}
