// Package breakeven finds the gross income at which two tax treatments
// yield the same net income.
package breakeven

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NetFunc maps gross income to net income under one tax treatment. It must
// be pure; the solver calls it repeatedly.
type NetFunc func(gross decimal.Decimal) decimal.Decimal

// SolverOptions bound the search.
type SolverOptions struct {
	// Tolerance is the income interval below which the search stops.
	Tolerance decimal.Decimal
	// MaxIterations caps bisection steps.
	MaxIterations int
	// ScanStep is the stride of the linear-scan fallback used when the
	// difference function does not change sign across the range.
	ScanStep decimal.Decimal
}

// DefaultSolverOptions returns the defaults: 10,000 VND tolerance, 100
// iterations, 1,000,000 VND scan step.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(10_000),
		MaxIterations: 100,
		ScanStep:      decimal.NewFromInt(1_000_000),
	}
}

// Result is the located crossing.
type Result struct {
	Gross      decimal.Decimal `json:"gross"`
	NetA       decimal.Decimal `json:"netA"`
	NetB       decimal.Decimal `json:"netB"`
	Iterations int             `json:"iterations"`
	// Method is "bisection" or "scan" depending on which strategy resolved.
	Method string `json:"method"`
}

// Error is a typed solver failure.
type Error struct {
	Operation string
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("breakeven %s: %s", e.Operation, e.Message)
}
