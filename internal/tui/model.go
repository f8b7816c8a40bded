// Package tui is an interactive explorer for the salary and mortgage
// calculators. Every keystroke recomputes from scratch; the calculators are
// pure, so there is nothing to cache or invalidate.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/calculation"
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/rules"
)

type scene int

const (
	sceneSalary scene = iota
	sceneMortgage
)

// Model is the bubbletea application state.
type Model struct {
	rules rules.RuleSet

	scene scene
	width int

	salaryInputs   []textinput.Model
	mortgageInputs []textinput.Model
	focus          int

	salary      domain.SalaryResult
	schedule    domain.MortgageSchedule
	sensitivity []domain.RateSensitivityRow
}

func newInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.SetValue(value)
	in.CharLimit = 18
	in.Width = 20
	return in
}

// Field order must match the render and read helpers.
const (
	salaryFieldGross = iota
	salaryFieldDependents
	salaryFieldRegion
	salaryFieldCount
)

const (
	mortFieldLoan = iota
	mortFieldTerm
	mortFieldGrace
	mortFieldPrefMonths
	mortFieldPrefRate
	mortFieldFloatRate
	mortFieldCount
)

// NewModel builds the initial model under one rule set.
func NewModel(rs rules.RuleSet) Model {
	m := Model{rules: rs}

	m.salaryInputs = []textinput.Model{
		newInput("gross VND/month", "30000000"),
		newInput("dependents", "0"),
		newInput("region 1-4", "1"),
	}
	m.mortgageInputs = []textinput.Model{
		newInput("loan VND", "2000000000"),
		newInput("term months", "240"),
		newInput("grace months", "0"),
		newInput("preferential months", "12"),
		newInput("preferential rate %", "7"),
		newInput("floating rate %", "10.5"),
	}
	m.salaryInputs[0].Focus()
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) inputs() []textinput.Model {
	if m.scene == sceneSalary {
		return m.salaryInputs
	}
	return m.mortgageInputs
}

func (m *Model) fieldCount() int {
	if m.scene == sceneSalary {
		return salaryFieldCount
	}
	return mortFieldCount
}

func parseAmount(in textinput.Model) decimal.Decimal {
	s := strings.TrimSpace(in.Value())
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseRatePercent(in textinput.Model) decimal.Decimal {
	s := strings.TrimSpace(in.Value())
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Div(decimal.NewFromInt(100))
}

func parseInt(in textinput.Model) int {
	n, err := strconv.Atoi(strings.TrimSpace(in.Value()))
	if err != nil {
		return 0
	}
	return n
}

// recompute reruns the calculators from the current field values. Invalid
// values read as zero and are clamped by the calculators.
func (m *Model) recompute() {
	region := domain.Region(parseInt(m.salaryInputs[salaryFieldRegion]))
	if !region.Valid() {
		region = domain.RegionI
	}
	m.salary = calculation.NewSalaryCalculator(m.rules).Calculate(domain.SalaryInput{
		Gross:      parseAmount(m.salaryInputs[salaryFieldGross]),
		Dependents: parseInt(m.salaryInputs[salaryFieldDependents]),
		Region:     region,
		Insurance:  domain.AllInsurance(),
	})

	mortgage := domain.MortgageInput{
		LoanAmount:         parseAmount(m.mortgageInputs[mortFieldLoan]),
		TermMonths:         parseInt(m.mortgageInputs[mortFieldTerm]),
		GraceMonths:        parseInt(m.mortgageInputs[mortFieldGrace]),
		PreferentialMonths: parseInt(m.mortgageInputs[mortFieldPrefMonths]),
		PreferentialRate:   parseRatePercent(m.mortgageInputs[mortFieldPrefRate]),
		FloatingRate:       parseRatePercent(m.mortgageInputs[mortFieldFloatRate]),
		Method:             domain.MethodAnnuity,
	}
	m.schedule = calculation.BuildSchedule(mortgage)
	m.sensitivity = calculation.Sensitivity(mortgage)
}
