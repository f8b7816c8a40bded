package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvquang/vnpit/internal/calculation"
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/output"
)

func salaryInputFromFlags(cmd *cobra.Command) (domain.SalaryInput, error) {
	gross, err := amount(cmd, "gross")
	if err != nil {
		return domain.SalaryInput{}, err
	}
	insBase, err := amount(cmd, "insurance-base")
	if err != nil {
		return domain.SalaryInput{}, err
	}
	other, err := amount(cmd, "other-deductions")
	if err != nil {
		return domain.SalaryInput{}, err
	}
	region, err := regionFlag(cmd)
	if err != nil {
		return domain.SalaryInput{}, err
	}
	dependents, _ := cmd.Flags().GetInt("dependents")
	noInsurance, _ := cmd.Flags().GetBool("no-insurance")

	ins := domain.AllInsurance()
	if noInsurance {
		ins = domain.InsuranceOptions{}
	}
	return domain.SalaryInput{
		Gross:           gross,
		InsuranceBase:   insBase,
		Dependents:      dependents,
		Region:          region,
		Insurance:       ins,
		OtherDeductions: other,
	}, nil
}

func addSalaryFlags(cmd *cobra.Command) {
	cmd.Flags().String("gross", "0", "monthly gross salary in VND")
	cmd.Flags().String("insurance-base", "0", "declared insurance base (default: gross)")
	cmd.Flags().String("other-deductions", "0", "other monthly deductions (charity, voluntary pension)")
	cmd.Flags().Int("dependents", 0, "number of registered dependents")
	cmd.Flags().Int("region", 1, "minimum-wage region 1 to 4")
	cmd.Flags().Bool("no-insurance", false, "skip mandatory insurance contributions")
}

func salaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Calculate monthly PIT on employment income",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			input, err := salaryInputFromFlags(cmd)
			if err != nil {
				return err
			}
			res := calculation.NewSalaryCalculator(rs).Calculate(input)
			return emit(cmd, output.RenderSalary(res), res)
		},
	}
	addSalaryFlags(cmd)
	return cmd
}

func grossUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grossup",
		Short: "Find the gross salary that yields a target net",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			target, err := amount(cmd, "net")
			if err != nil {
				return err
			}
			template, err := salaryInputFromFlags(cmd)
			if err != nil {
				return err
			}
			res := calculation.NewSalaryCalculator(rs).GrossUp(target, template)
			return emit(cmd, output.RenderGrossUp(res), res)
		},
	}
	addSalaryFlags(cmd)
	cmd.Flags().String("net", "0", "target monthly net salary in VND")
	return cmd
}

func multiSourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finalize",
		Short: "Annual finalization for a main job plus withheld side payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			main, err := salaryInputFromFlags(cmd)
			if err != nil {
				return err
			}
			months, _ := cmd.Flags().GetInt("months")

			raw, _ := cmd.Flags().GetStringSlice("other")
			payments := make([]domain.OtherEmployerPayment, 0, len(raw))
			for _, a := range raw {
				d, err := parseListAmount(a)
				if err != nil {
					return fmt.Errorf("invalid --other amount %q: %w", a, err)
				}
				payments = append(payments, domain.OtherEmployerPayment{Amount: d})
			}

			res := calculation.MultiSource(domain.MultiSourceInput{
				Main:          main,
				Months:        months,
				OtherPayments: payments,
			}, rs)
			return emit(cmd, output.RenderMultiSource(res), res)
		},
	}
	addSalaryFlags(cmd)
	cmd.Flags().Int("months", 12, "months worked at the main employer")
	cmd.Flags().StringSlice("other", nil, "secondary payments withheld at the flat rate (repeatable)")
	return cmd
}

func severanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "severance",
		Short: "Tax a lump-sum severance payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			amt, err := amount(cmd, "amount")
			if err != nil {
				return err
			}
			mean, err := amount(cmd, "mean-salary")
			if err != nil {
				return err
			}
			years, err := amount(cmd, "years")
			if err != nil {
				return err
			}
			res := calculation.NewSalaryCalculator(rs).Severance(domain.SeveranceInput{
				Amount:            amt,
				MeanMonthlySalary: mean,
				YearsWorked:       years,
			})
			return emit(cmd, output.RenderFlat("Severance", res), res)
		},
	}
	cmd.Flags().String("amount", "0", "severance payment in VND")
	cmd.Flags().String("mean-salary", "0", "mean monthly salary of the last six months")
	cmd.Flags().String("years", "0", "years worked (fractional allowed)")
	return cmd
}
