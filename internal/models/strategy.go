package models

import "fmt"

// Strategy identifies a repayment ordering strategy. The set is closed:
// every strategy the engine understands is declared below.
type Strategy string

const (
	// StrategySnowball pays the smallest balance first.
	StrategySnowball Strategy = "snowball"
	// StrategyAvalanche pays the highest interest rate first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategyHighestBalance pays the largest balance first.
	StrategyHighestBalance Strategy = "highest-balance"
	// StrategyLowestBalance pays the smallest balance first. Same ordering
	// as snowball, kept as a distinct tag because callers may select it
	// explicitly.
	StrategyLowestBalance Strategy = "lowest-balance"
	// StrategyHighestInterest pays the highest interest rate first. Same
	// ordering as avalanche.
	StrategyHighestInterest Strategy = "highest-interest"
	// StrategyCustom preserves the caller-supplied order untouched.
	StrategyCustom Strategy = "custom"
)

// NonCustomStrategies returns the strategies eligible for comparison runs,
// in canonical order. Custom is excluded because it has no ordering rule of
// its own.
func NonCustomStrategies() []Strategy {
	return []Strategy{
		StrategySnowball,
		StrategyAvalanche,
		StrategyHighestBalance,
		StrategyLowestBalance,
		StrategyHighestInterest,
	}
}

// ParseStrategy converts a string into a Strategy, accepting exactly the
// canonical names.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySnowball, StrategyAvalanche, StrategyHighestBalance,
		StrategyLowestBalance, StrategyHighestInterest, StrategyCustom:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown strategy: %q", s)
}

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	return string(s)
}

// Description returns a short human-readable summary of how the strategy
// orders debts.
func (s Strategy) Description() string {
	switch s {
	case StrategySnowball:
		return "Pay off the smallest balance first to build momentum"
	case StrategyAvalanche:
		return "Pay off the highest interest rate first to minimize total interest"
	case StrategyHighestBalance:
		return "Pay off the largest balance first"
	case StrategyLowestBalance:
		return "Pay off the smallest balance first"
	case StrategyHighestInterest:
		return "Pay off the highest interest rate first"
	case StrategyCustom:
		return "Pay off debts in the order you supplied them"
	default:
		return "Unknown strategy"
	}
}
