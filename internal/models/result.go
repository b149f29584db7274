package models

import (
	"github.com/shopspring/decimal"
)

// SimulationResult is the outcome of one payoff simulation. It is a pure
// function output with no lifecycle of its own.
//
// InterestSaved is always measured against the minimum-only baseline: the
// interest each debt would accrue if paid off independently at its own
// minimum payment pace, with no reordering and no extra allocation. It can
// be negative and is never clamped.
type SimulationResult struct {
	// MonthsToPayoff is the number of simulated months until every debt
	// reached zero, or the circuit-breaker cap if the simulation did not
	// converge. Callers decide how to present capped values.
	MonthsToPayoff int `csv:"months_to_payoff" yaml:"months_to_payoff"`

	// InterestSaved is BaselineInterest minus TotalInterestPaid.
	InterestSaved decimal.Decimal `csv:"interest_saved" yaml:"interest_saved"`

	// TotalInterestPaid is the interest accrued across all debts during
	// the simulation.
	TotalInterestPaid decimal.Decimal `csv:"total_interest_paid" yaml:"total_interest_paid"`

	// BaselineInterest is the minimum-only baseline the saving is
	// measured against.
	BaselineInterest decimal.Decimal `csv:"baseline_interest" yaml:"baseline_interest"`

	// Schedule holds per-month snapshots when schedule collection was
	// requested, otherwise nil.
	Schedule []MonthSnapshot `csv:"-" yaml:"schedule,omitempty"`
}

// MonthSnapshot captures one simulated month for schedule output.
type MonthSnapshot struct {
	// Month is the 1-based month index.
	Month int `csv:"month" yaml:"month"`

	// InterestAccrued is the interest added across all debts this month.
	InterestAccrued decimal.Decimal `csv:"interest_accrued" yaml:"interest_accrued"`

	// TotalPaid is the sum of payments applied this month.
	TotalPaid decimal.Decimal `csv:"total_paid" yaml:"total_paid"`

	// Balances maps debt ID to the end-of-month balance for debts still
	// open at the start of the month.
	Balances map[string]decimal.Decimal `csv:"-" yaml:"balances"`
}

// StrategyOutcome pairs a strategy with the result it produced, for
// comparison runs.
type StrategyOutcome struct {
	Strategy Strategy         `yaml:"strategy"`
	Result   SimulationResult `yaml:"result"`
}
