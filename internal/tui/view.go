package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvquang/vnpit/internal/output"
)

var salaryLabels = []string{
	"Gross salary (VND/month)",
	"Dependents",
	"Region (1-4)",
}

var mortgageLabels = []string{
	"Loan amount (VND)",
	"Term (months)",
	"Grace period (months)",
	"Preferential (months)",
	"Preferential rate (%)",
	"Floating rate (%)",
}

// View renders the current scene.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("vnpit"))
	sb.WriteString("  ")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	var form, results string
	if m.scene == sceneSalary {
		form = m.renderForm(salaryLabels, m.salaryInputs)
		results = m.renderSalaryResults()
	} else {
		form = m.renderForm(mortgageLabels, m.mortgageInputs)
		results = m.renderMortgageResults()
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(form),
		" ",
		panelStyle.Render(results)))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("tab: switch calculator - up/down: move - esc: quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderTabs() string {
	salary := tabStyle.Render("Salary")
	mortgage := tabStyle.Render("Mortgage")
	if m.scene == sceneSalary {
		salary = activeTabStyle.Render("Salary")
	} else {
		mortgage = activeTabStyle.Render("Mortgage")
	}
	return salary + mortgage
}

func (m Model) renderForm(labels []string, inputs []textinput.Model) string {
	var sb strings.Builder
	for i, label := range labels {
		style := fieldLabelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		sb.WriteString(style.Render(label))
		sb.WriteString(inputs[i].View())
		sb.WriteString("\n")
	}
	return sb.String()
}

func metric(label, value string) string {
	return metricLabelStyle.Render(label) + metricValueStyle.Render(value) + "\n"
}

func (m Model) renderSalaryResults() string {
	var sb strings.Builder
	res := m.salary
	sb.WriteString(metric("Insurance total", output.FormatCurrency(res.Insurance.Total)))
	sb.WriteString(metric("Taxable income", output.FormatCurrency(res.TaxableIncome)))
	sb.WriteString(metric("Personal income tax", output.FormatCurrency(res.Tax)))
	sb.WriteString(metric("Net salary", output.FormatCurrency(res.Net)))
	sb.WriteString(metric("Effective rate", output.FormatPercent(res.EffectiveRate)))
	sb.WriteString(metric("Marginal rate", output.FormatPercent(res.MarginalRate)))
	sb.WriteString(metric("Annual net", output.FormatCurrency(res.AnnualNet)))
	return sb.String()
}

func (m Model) renderMortgageResults() string {
	var sb strings.Builder
	sched := m.schedule
	sb.WriteString(metric("First payment", output.FormatCurrency(sched.FirstPayment)))
	if sched.FloatingFirst.IsPositive() {
		sb.WriteString(metric("First floating payment", output.FormatCurrency(sched.FloatingFirst)))
	}
	sb.WriteString(metric("Peak payment", output.FormatCurrency(sched.PeakPayment)))
	sb.WriteString(metric("Total interest", output.FormatCurrency(sched.TotalInterest)))
	sb.WriteString(metric("Total paid", output.FormatCurrency(sched.TotalPaid)))

	if len(m.sensitivity) > 0 {
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("Rate stress (floating phase)"))
		sb.WriteString("\n")
		for _, row := range m.sensitivity {
			label := fmt.Sprintf("  +%s -> %s", output.FormatPercent(row.RateDelta), output.FormatPercent(row.FloatingRate))
			sb.WriteString(metric(label, output.FormatCurrency(row.MonthlyPayment)))
		}
	}
	return sb.String()
}
