package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvquang/vnpit/internal/compare"
	"github.com/nvquang/vnpit/internal/output"
)

func treatmentInputFromFlags(cmd *cobra.Command) (compare.TreatmentInput, error) {
	gross, err := amount(cmd, "gross")
	if err != nil {
		return compare.TreatmentInput{}, err
	}
	region, err := regionFlag(cmd)
	if err != nil {
		return compare.TreatmentInput{}, err
	}
	sector, err := sectorFlag(cmd)
	if err != nil {
		return compare.TreatmentInput{}, err
	}
	dependents, _ := cmd.Flags().GetInt("dependents")
	return compare.TreatmentInput{
		MonthlyGross: gross,
		Dependents:   dependents,
		Region:       region,
		Sector:       sector,
	}, nil
}

func addTreatmentFlags(cmd *cobra.Command) {
	cmd.Flags().String("gross", "0", "monthly gross income in VND")
	cmd.Flags().Int("dependents", 0, "number of registered dependents")
	cmd.Flags().Int("region", 1, "minimum-wage region 1 to 4")
	cmd.Flags().String("sector", "services", "sector for the household-business option")
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare employee, freelancer and household-business treatments",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			input, err := treatmentInputFromFlags(cmd)
			if err != nil {
				return err
			}
			set := compare.NewEngine(rs).CompareTreatments(input)

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "csv":
				cf := &compare.CSVFormatter{}
				text, err := cf.Format(set)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			case "json":
				jf := &compare.JSONFormatter{}
				text, err := jf.Format(set)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			default:
				tf := &compare.TableFormatter{}
				fmt.Fprint(cmd.OutOrStdout(), tf.Format(set))
				return nil
			}
		},
	}
	addTreatmentFlags(cmd)
	return cmd
}

func breakEvenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Find the gross income where two treatments yield the same net",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			input, err := treatmentInputFromFlags(cmd)
			if err != nil {
				return err
			}
			low, err := amount(cmd, "low")
			if err != nil {
				return err
			}
			high, err := amount(cmd, "high")
			if err != nil {
				return err
			}

			res, err := compare.NewEngine(rs).BreakEvenEmployeeFreelancer(cmd.Context(), input, low, high)
			if err != nil {
				return err
			}

			text := fmt.Sprintf("Break-even gross: %s/month (employee net %s, freelancer net %s, %s in %d iterations)\n",
				output.FormatCurrency(res.Gross),
				output.FormatCurrency(res.NetA),
				output.FormatCurrency(res.NetB),
				res.Method, res.Iterations)
			return emit(cmd, text, res)
		},
	}
	addTreatmentFlags(cmd)
	cmd.Flags().String("low", "5000000", "lower gross bound of the search")
	cmd.Flags().String("high", "200000000", "upper gross bound of the search")
	return cmd
}
