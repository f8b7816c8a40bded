package breakeven

import (
	"context"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver locates the crossing of two net-income curves over a gross-income
// range.
type Solver struct {
	Options SolverOptions
}

// NewSolver creates a solver with the given options.
func NewSolver(options SolverOptions) *Solver {
	return &Solver{Options: options}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultSolverOptions())
}

// Find locates gross income in [low, high] where netA and netB cross. The
// two curves are expected to cross at most once (one treatment is
// proportional while the other's marginal rate rises), but that is not taken
// on faith: the solver first checks that the difference changes sign across
// the bounds and only then bisects; otherwise it falls back to a fixed-step
// scan and reports the first crossing, or fails if there is none.
func (s *Solver) Find(ctx context.Context, low, high decimal.Decimal, netA, netB NetFunc) (*Result, error) {
	if high.LessThanOrEqual(low) {
		return nil, &Error{Operation: "find", Message: "high bound must exceed low bound"}
	}

	diff := func(gross decimal.Decimal) decimal.Decimal {
		return netA(gross).Sub(netB(gross))
	}

	diffLow := diff(low)
	diffHigh := diff(high)
	if diffLow.IsZero() {
		return s.result(low, netA, netB, 0, "bisection"), nil
	}
	if diffHigh.IsZero() {
		return s.result(high, netA, netB, 0, "bisection"), nil
	}

	if diffLow.Sign() != diffHigh.Sign() {
		return s.bisect(ctx, low, high, diffLow, diff, netA, netB)
	}
	return s.scan(ctx, low, high, diffLow, diff, netA, netB)
}

// bisect narrows the bracket until it is inside tolerance.
func (s *Solver) bisect(ctx context.Context, low, high, diffLow decimal.Decimal, diff func(decimal.Decimal) decimal.Decimal, netA, netB NetFunc) (*Result, error) {
	iterations := 0
	for high.Sub(low).GreaterThan(s.Options.Tolerance) && iterations < s.Options.MaxIterations {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		iterations++

		mid := low.Add(high).Div(two)
		dm := diff(mid)
		if dm.IsZero() {
			return s.result(mid, netA, netB, iterations, "bisection"), nil
		}
		if dm.Sign() == diffLow.Sign() {
			low = mid
			diffLow = dm
		} else {
			high = mid
		}
	}

	mid := low.Add(high).Div(two)
	return s.result(mid, netA, netB, iterations, "bisection"), nil
}

// scan walks the range in fixed steps looking for the first sign change,
// then bisects inside that step. Used when the endpoints do not bracket a
// crossing, so a non-monotone difference cannot silently mislead bisection.
func (s *Solver) scan(ctx context.Context, low, high, diffLow decimal.Decimal, diff func(decimal.Decimal) decimal.Decimal, netA, netB NetFunc) (*Result, error) {
	step := s.Options.ScanStep
	if step.LessThanOrEqual(decimal.Zero) {
		step = DefaultSolverOptions().ScanStep
	}

	iterations := 0
	prev := low
	prevDiff := diffLow
	for x := low.Add(step); x.LessThanOrEqual(high); x = x.Add(step) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		iterations++

		d := diff(x)
		if d.IsZero() {
			return s.result(x, netA, netB, iterations, "scan"), nil
		}
		if d.Sign() != prevDiff.Sign() {
			res, err := s.bisect(ctx, prev, x, prevDiff, diff, netA, netB)
			if err != nil {
				return nil, err
			}
			res.Iterations += iterations
			res.Method = "scan"
			return res, nil
		}
		prev = x
		prevDiff = d
	}

	return nil, &Error{Operation: "scan", Message: "net income curves do not cross in range"}
}

func (s *Solver) result(gross decimal.Decimal, netA, netB NetFunc, iterations int, method string) *Result {
	return &Result{
		Gross:      gross.Round(0),
		NetA:       netA(gross),
		NetB:       netB(gross),
		Iterations: iterations,
		Method:     method,
	}
}
