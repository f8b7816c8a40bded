package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvquang/vnpit/internal/calculation"
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/logging"
	"github.com/nvquang/vnpit/internal/output"
)

func mortgageInputFromFlags(cmd *cobra.Command) (domain.MortgageInput, error) {
	loan, err := amount(cmd, "loan")
	if err != nil {
		return domain.MortgageInput{}, err
	}
	income, err := amount(cmd, "income")
	if err != nil {
		return domain.MortgageInput{}, err
	}
	prefRate, err := ratePercent(cmd, "pref-rate")
	if err != nil {
		return domain.MortgageInput{}, err
	}
	floatRate, err := ratePercent(cmd, "float-rate")
	if err != nil {
		return domain.MortgageInput{}, err
	}

	term, _ := cmd.Flags().GetInt("term")
	grace, _ := cmd.Flags().GetInt("grace")
	prefMonths, _ := cmd.Flags().GetInt("pref-months")
	straightLine, _ := cmd.Flags().GetBool("straight-line")

	if term <= 0 {
		return domain.MortgageInput{}, fmt.Errorf("--term must be positive")
	}

	method := domain.MethodAnnuity
	if straightLine {
		method = domain.MethodStraightLine
	}
	return domain.MortgageInput{
		LoanAmount:         loan,
		TermMonths:         term,
		GraceMonths:        grace,
		PreferentialMonths: prefMonths,
		PreferentialRate:   prefRate,
		FloatingRate:       floatRate,
		Method:             method,
		MonthlyIncome:      income,
	}, nil
}

func mortgageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Amortize a three-phase mortgage and stress the floating rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := mortgageInputFromFlags(cmd)
			if err != nil {
				return err
			}
			sched := calculation.BuildSchedule(input)
			sens := calculation.Sensitivity(input)

			if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
				data, err := output.MortgageCSV(sched)
				if err != nil {
					return err
				}
				if err := os.WriteFile(csvPath, []byte(data), 0o644); err != nil {
					return fmt.Errorf("failed to write schedule CSV: %w", err)
				}
				logging.Sugar.Infow("schedule exported", "path", csvPath, "rows", len(sched.Rows))
			}

			text := output.RenderMortgage(sched) + output.RenderSensitivity(sens)
			return emit(cmd, text, struct {
				Schedule    domain.MortgageSchedule      `json:"schedule"`
				Sensitivity []domain.RateSensitivityRow  `json:"sensitivity"`
			}{sched, sens})
		},
	}
	cmd.Flags().String("loan", "0", "loan amount in VND")
	cmd.Flags().Int("term", 240, "loan term in months")
	cmd.Flags().Int("grace", 0, "interest-only grace months")
	cmd.Flags().Int("pref-months", 0, "preferential-rate months after grace")
	cmd.Flags().String("pref-rate", "0", "preferential annual rate in percent, e.g. 7")
	cmd.Flags().String("float-rate", "0", "floating annual rate in percent, e.g. 10.5")
	cmd.Flags().Bool("straight-line", false, "repay equal principal instead of annuity")
	cmd.Flags().String("income", "0", "monthly income for the affordability ratio")
	cmd.Flags().String("csv", "", "write the full schedule to a CSV file")
	return cmd
}
