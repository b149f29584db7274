// Package planner is the public facade of the debt-plan engine. It composes
// strategy recommendation, ordering and payoff simulation behind one type so
// host applications need a single import.
//
// The engine is stateless and referentially transparent: every method copies
// its inputs, mutates nothing the caller owns, and returns the same result
// for the same values. Concurrent calls need no coordination.
package planner

import (
	"fjacquet/debt-plan/internal/advisor"
	"fjacquet/debt-plan/internal/logging"
	"fjacquet/debt-plan/internal/models"
	"fjacquet/debt-plan/internal/orderer"
	"fjacquet/debt-plan/internal/simulator"

	"github.com/shopspring/decimal"
)

// Re-exported domain types, so hosts depend on this package only.
type (
	// Debt is one outstanding debt.
	Debt = models.DebtRecord
	// Strategy tags a repayment ordering.
	Strategy = models.Strategy
	// SimulationResult is the outcome of a payoff simulation.
	SimulationResult = models.SimulationResult
	// StrategyOutcome pairs a strategy with its simulation result.
	StrategyOutcome = models.StrategyOutcome
	// Options tune the simulator.
	Options = simulator.Options
	// Thresholds tune the advisor's heuristics.
	Thresholds = advisor.Thresholds
)

// Strategy tags.
const (
	Snowball        = models.StrategySnowball
	Avalanche       = models.StrategyAvalanche
	HighestBalance  = models.StrategyHighestBalance
	LowestBalance   = models.StrategyLowestBalance
	HighestInterest = models.StrategyHighestInterest
	Custom          = models.StrategyCustom
)

// ParseStrategy converts a strategy name into its tag.
func ParseStrategy(s string) (Strategy, error) {
	return models.ParseStrategy(s)
}

// Plan is the composed result of recommend -> order -> simulate.
type Plan struct {
	// Strategy is the ordering that was applied.
	Strategy Strategy
	// Ordered is the portfolio in payoff-priority order.
	Ordered []Debt
	// Result is the simulation outcome for that ordering.
	Result SimulationResult
}

// Planner runs the engine with a fixed set of options.
type Planner struct {
	advisor *advisor.Advisor
	sim     *simulator.Simulator
}

// New builds a Planner. A nil logger disables logging.
func New(opts Options, thresholds Thresholds, log logging.Logger) *Planner {
	return &Planner{
		advisor: advisor.New(thresholds, log),
		sim:     simulator.New(opts, log),
	}
}

// NewDefault builds a Planner with default options, default thresholds and
// no logging.
func NewDefault() *Planner {
	return New(simulator.DefaultOptions(), advisor.DefaultThresholds(), nil)
}

// Recommend returns the heuristically recommended strategy for the
// portfolio. An empty portfolio yields Snowball.
func (p *Planner) Recommend(portfolio []Debt) Strategy {
	return p.advisor.Recommend(portfolio)
}

// Order sorts the portfolio for the strategy. Custom returns the input
// order. The result is a permutation of the input; the input is not mutated.
func (p *Planner) Order(portfolio []Debt, strategy Strategy) []Debt {
	return orderer.Order(portfolio, strategy)
}

// Simulate runs the payoff simulation over an already-ordered portfolio.
func (p *Planner) Simulate(ordered []Debt, monthlyBudget decimal.Decimal) (SimulationResult, error) {
	return p.sim.Simulate(ordered, monthlyBudget)
}

// BuildPlan recommends a strategy, orders the portfolio with it and
// simulates the payoff, returning all three.
func (p *Planner) BuildPlan(portfolio []Debt, monthlyBudget decimal.Decimal) (Plan, error) {
	return p.BuildPlanWith(portfolio, p.advisor.Recommend(portfolio), monthlyBudget)
}

// BuildPlanWith is BuildPlan with a caller-forced strategy instead of the
// recommended one. InterestSaved stays relative to the minimum-only
// baseline regardless of the strategy chosen.
func (p *Planner) BuildPlanWith(portfolio []Debt, strategy Strategy, monthlyBudget decimal.Decimal) (Plan, error) {
	ordered := orderer.Order(portfolio, strategy)
	result, err := p.sim.Simulate(ordered, monthlyBudget)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Strategy: strategy,
		Ordered:  ordered,
		Result:   result,
	}, nil
}

// Compare simulates every non-custom strategy and returns the outcomes
// ranked fastest-payoff first.
func (p *Planner) Compare(portfolio []Debt, monthlyBudget decimal.Decimal) ([]StrategyOutcome, error) {
	return p.sim.Compare(portfolio, monthlyBudget)
}
