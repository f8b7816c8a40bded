package output

import (
	"fmt"
	"strings"

	"github.com/nvquang/vnpit/internal/domain"
)

const ruleWidth = 72

func header(sb *strings.Builder, title string) {
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
}

func line(sb *strings.Builder, label, value string) {
	sb.WriteString(fmt.Sprintf("%-34s %s\n", label+":", value))
}

// RenderSalary renders a monthly salary result as a console report.
func RenderSalary(res domain.SalaryResult) string {
	var sb strings.Builder
	header(&sb, "MONTHLY SALARY TAX")
	line(&sb, "Gross salary", FormatCurrency(res.Gross))
	line(&sb, "Social insurance (BHXH)", FormatCurrency(res.Insurance.BHXH))
	line(&sb, "Health insurance (BHYT)", FormatCurrency(res.Insurance.BHYT))
	line(&sb, "Unemployment insurance (BHTN)", FormatCurrency(res.Insurance.BHTN))
	line(&sb, "Personal deduction", FormatCurrency(res.PersonalDeduction))
	if res.DependentDeduction.IsPositive() {
		line(&sb, "Dependent deduction", FormatCurrency(res.DependentDeduction))
	}
	if res.OtherDeductions.IsPositive() {
		line(&sb, "Other deductions", FormatCurrency(res.OtherDeductions))
	}
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	line(&sb, "Taxable income", FormatCurrency(res.TaxableIncome))
	line(&sb, "Personal income tax", FormatCurrency(res.Tax))
	line(&sb, "Net salary", FormatCurrency(res.Net))
	line(&sb, "Effective rate", FormatPercent(res.EffectiveRate))
	line(&sb, "Marginal rate", FormatPercent(res.MarginalRate))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	line(&sb, "Annual tax", FormatCurrency(res.AnnualTax))
	line(&sb, "Annual net", FormatCurrency(res.AnnualNet))
	return sb.String()
}

// RenderFlat renders any single-rate result under a caption.
func RenderFlat(caption string, res domain.FlatRateResult) string {
	var sb strings.Builder
	header(&sb, strings.ToUpper(caption))
	line(&sb, "Gross amount", FormatCurrency(res.Gross))
	if res.Exempt() {
		line(&sb, "Tax", FormatCurrency(res.Tax))
		line(&sb, "Exempt", res.ExemptionReason)
	} else {
		line(&sb, "Taxable amount", FormatCurrency(res.Taxable))
		line(&sb, "Applied rate", FormatPercent(res.AppliedRate))
		line(&sb, "Tax", FormatCurrency(res.Tax))
	}
	line(&sb, "Net amount", FormatCurrency(res.Net))
	return sb.String()
}

// RenderSplit renders a combined PIT+VAT levy such as rental or household
// business income.
func RenderSplit(caption string, res domain.FlatRateResult, pit, vat string) string {
	var sb strings.Builder
	sb.WriteString(RenderFlat(caption, res))
	if !res.Exempt() {
		line(&sb, "  of which PIT", pit)
		line(&sb, "  of which VAT", vat)
	}
	return sb.String()
}

// RenderVATDeduction renders a credit-method VAT return.
func RenderVATDeduction(res domain.VATDeductionResult) string {
	var sb strings.Builder
	header(&sb, "VAT - DEDUCTION METHOD")
	line(&sb, "Output VAT", FormatCurrency(res.OutputVAT))
	line(&sb, "Input VAT", FormatCurrency(res.InputVAT))
	line(&sb, "VAT payable", FormatCurrency(res.VATPayable))
	if res.Carryforward.IsPositive() {
		line(&sb, "Credit carried forward", FormatCurrency(res.Carryforward))
	}
	return sb.String()
}

// RenderMultiSource renders a year-end finalization statement.
func RenderMultiSource(res domain.MultiSourceResult) string {
	var sb strings.Builder
	header(&sb, "YEAR-END TAX FINALIZATION")
	line(&sb, "Main employer gross", FormatCurrency(res.MainAnnual.Gross))
	line(&sb, "Main employer withheld", FormatCurrency(res.MainAnnual.Tax))
	line(&sb, "Other income", FormatCurrency(res.OtherGross))
	line(&sb, "Other income withheld", FormatCurrency(res.OtherWithheld))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	line(&sb, "Finalized taxable income", FormatCurrency(res.FinalizedTaxable))
	line(&sb, "Finalized tax", FormatCurrency(res.FinalizedTax))
	line(&sb, "Total withheld", FormatCurrency(res.TotalWithheld))
	if res.SettlementDue.IsPositive() {
		line(&sb, "Additional tax due", FormatCurrency(res.SettlementDue))
	} else {
		line(&sb, "Refund due", FormatCurrency(res.RefundDue))
	}
	line(&sb, "Effective annual rate", FormatPercent(res.EffectiveRateYear))
	return sb.String()
}

// RenderMortgage renders the schedule aggregates plus the first rows of each
// phase; the full table goes to CSV.
func RenderMortgage(sched domain.MortgageSchedule) string {
	var sb strings.Builder
	header(&sb, "MORTGAGE AMORTIZATION")
	line(&sb, "Months", fmt.Sprintf("%d", len(sched.Rows)))
	line(&sb, "First payment", FormatCurrency(sched.FirstPayment))
	line(&sb, "Peak payment", FormatCurrency(sched.PeakPayment))
	if sched.FloatingFirst.IsPositive() {
		line(&sb, "First floating payment", FormatCurrency(sched.FloatingFirst))
	}
	line(&sb, "Total interest", FormatCurrency(sched.TotalInterest))
	line(&sb, "Total paid", FormatCurrency(sched.TotalPaid))
	if sched.PaymentToIncome.IsPositive() {
		line(&sb, "Peak payment / income", FormatPercent(sched.PaymentToIncome))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%6s %-13s %16s %16s %16s %18s\n",
		"Month", "Phase", "Payment", "Principal", "Interest", "Balance"))
	sb.WriteString(strings.Repeat("-", ruleWidth+18) + "\n")
	var lastPhase domain.LoanPhase
	shown := 0
	for _, row := range sched.Rows {
		// Show the first three rows of every phase and the final row.
		if row.Phase != lastPhase {
			lastPhase = row.Phase
			shown = 0
		}
		if shown >= 3 && row.Month != len(sched.Rows) {
			continue
		}
		shown++
		sb.WriteString(fmt.Sprintf("%6d %-13s %16s %16s %16s %18s\n",
			row.Month, row.Phase,
			FormatNumber(row.Payment), FormatNumber(row.Principal),
			FormatNumber(row.Interest), FormatNumber(row.RemainingBalance)))
	}
	return sb.String()
}

// RenderSensitivity renders the rate stress table.
func RenderSensitivity(rows []domain.RateSensitivityRow) string {
	var sb strings.Builder
	header(&sb, "FLOATING RATE SENSITIVITY")
	sb.WriteString(fmt.Sprintf("%-10s %-10s %18s %18s\n", "Delta", "Rate", "Payment", "Total interest"))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-10s %-10s %18s %18s\n",
			"+"+FormatPercent(r.RateDelta),
			FormatPercent(r.FloatingRate),
			FormatNumber(r.MonthlyPayment),
			FormatNumber(r.TotalInterest)))
	}
	return sb.String()
}

// RenderGrossUp renders a net-to-gross inversion.
func RenderGrossUp(res domain.GrossUpResult) string {
	var sb strings.Builder
	header(&sb, "GROSS-UP (NET TO GROSS)")
	line(&sb, "Target net", FormatCurrency(res.TargetNet))
	line(&sb, "Required gross", FormatCurrency(res.Gross))
	line(&sb, "Tax at that gross", FormatCurrency(res.Result.Tax))
	line(&sb, "Insurance at that gross", FormatCurrency(res.Result.Insurance.Total))
	return sb.String()
}
