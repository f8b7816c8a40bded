package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nvquang/vnpit/internal/domain"
)

var one = decimal.NewFromInt(1)

// monthlyRate converts an annual fraction rate to its monthly rate.
func monthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// annuityPayment is the level payment amortizing a balance over n months at
// a monthly rate: B*r*(1+r)^n / ((1+r)^n - 1). A zero rate degrades to
// straight division.
func annuityPayment(balance decimal.Decimal, rate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return balance
	}
	if rate.IsZero() {
		return balance.Div(decimal.NewFromInt(int64(months)))
	}
	growth := one.Add(rate).Pow(decimal.NewFromInt(int64(months)))
	return balance.Mul(rate).Mul(growth).Div(growth.Sub(one))
}

// BuildSchedule builds the full amortization schedule of a three-phase loan: an
// optional interest-only grace window, a fixed preferential-rate phase, then
// the floating rate to maturity. The annuity payment is recomputed at every
// phase boundary from the remaining balance and remaining months, so a rate
// step changes the payment rather than the term.
func BuildSchedule(input domain.MortgageInput) domain.MortgageSchedule {
	loan := domain.ClampNonNegative(input.LoanAmount)
	term := input.TermMonths
	if term <= 0 || loan.IsZero() {
		return domain.MortgageSchedule{}
	}

	grace := input.GraceMonths
	if grace < 0 {
		grace = 0
	}
	if grace > term {
		grace = term
	}
	prefEnd := grace + input.PreferentialMonths
	if prefEnd > term {
		prefEnd = term
	}

	method := input.Method
	if method == "" {
		method = domain.MethodAnnuity
	}

	sched := domain.MortgageSchedule{Rows: make([]domain.AmortizationRow, 0, term)}
	balance := loan
	var payment decimal.Decimal
	repayStart := 0 // first month index of the current repayment phase

	for m := 1; m <= term; m++ {
		var phase domain.LoanPhase
		var rate decimal.Decimal
		switch {
		case m <= grace:
			phase = domain.PhaseGrace
			rate = monthlyRate(input.PreferentialRate)
		case m <= prefEnd:
			phase = domain.PhasePreferential
			rate = monthlyRate(input.PreferentialRate)
		default:
			phase = domain.PhaseFloating
			rate = monthlyRate(input.FloatingRate)
		}

		interest := domain.RoundVND(balance.Mul(rate))

		var principal decimal.Decimal
		switch {
		case phase == domain.PhaseGrace:
			principal = decimal.Zero
		case method == domain.MethodStraightLine:
			if repayStart == 0 {
				repayStart = m
			}
			principal = domain.RoundVND(balance.Div(decimal.NewFromInt(int64(term - m + 1))))
		default:
			// Re-amortize at each phase boundary.
			if repayStart == 0 || (m == prefEnd+1 && m > grace+1) {
				repayStart = m
				payment = domain.RoundVND(annuityPayment(balance, rate, term-m+1))
			}
			principal = payment.Sub(interest)
		}

		if principal.GreaterThan(balance) {
			principal = balance
		}
		if principal.IsNegative() {
			principal = decimal.Zero
		}
		balance = balance.Sub(principal)
		// Snap sub-dong residue left by rounding into the final payment.
		if m == term && !balance.IsZero() {
			principal = principal.Add(balance)
			balance = decimal.Zero
		}

		row := domain.AmortizationRow{
			Month:            m,
			Phase:            phase,
			Payment:          principal.Add(interest),
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		}
		sched.Rows = append(sched.Rows, row)

		sched.TotalPaid = sched.TotalPaid.Add(row.Payment)
		sched.TotalInterest = sched.TotalInterest.Add(interest)
		if m == 1 {
			sched.FirstPayment = row.Payment
		}
		if row.Payment.GreaterThan(sched.PeakPayment) {
			sched.PeakPayment = row.Payment
		}
		if phase == domain.PhaseFloating && sched.FloatingFirst.IsZero() {
			sched.FloatingFirst = row.Payment
		}
	}

	if input.MonthlyIncome.IsPositive() {
		sched.PaymentToIncome = domain.SafeRatio(sched.PeakPayment, input.MonthlyIncome)
	}
	return sched
}

// Sensitivity reruns the schedule with the floating rate stressed by 0, +1
// and +2 percentage points and reports the floating-phase payment under
// each.
func Sensitivity(input domain.MortgageInput) []domain.RateSensitivityRow {
	deltas := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(0.01),
		decimal.NewFromFloat(0.02),
	}

	rows := make([]domain.RateSensitivityRow, 0, len(deltas))
	for _, delta := range deltas {
		stressed := input
		stressed.FloatingRate = input.FloatingRate.Add(delta)
		sched := BuildSchedule(stressed)

		row := domain.RateSensitivityRow{
			RateDelta:      delta,
			FloatingRate:   stressed.FloatingRate,
			MonthlyPayment: sched.FloatingFirst,
			TotalInterest:  sched.TotalInterest,
		}
		if row.MonthlyPayment.IsZero() {
			// No floating phase; fall back to the steady payment.
			row.MonthlyPayment = sched.PeakPayment
		}
		if input.MonthlyIncome.IsPositive() {
			row.PaymentToIncome = domain.SafeRatio(row.MonthlyPayment, input.MonthlyIncome)
		}
		rows = append(rows, row)
	}
	return rows
}
