// Package orderer sorts a debt portfolio according to a repayment strategy.
// The first debt in the resulting order is the one extra payments target.
package orderer

import (
	"sort"

	"fjacquet/debt-plan/internal/models"
)

// lessFuncs maps each strategy to its sort predicate. Custom has no entry:
// it keeps the caller's order.
var lessFuncs = map[models.Strategy]func(a, b models.DebtRecord) bool{
	models.StrategySnowball: func(a, b models.DebtRecord) bool {
		return a.Balance.LessThan(b.Balance)
	},
	models.StrategyLowestBalance: func(a, b models.DebtRecord) bool {
		return a.Balance.LessThan(b.Balance)
	},
	models.StrategyHighestBalance: func(a, b models.DebtRecord) bool {
		return a.Balance.GreaterThan(b.Balance)
	},
	models.StrategyAvalanche: func(a, b models.DebtRecord) bool {
		return a.AnnualRatePercent > b.AnnualRatePercent
	},
	models.StrategyHighestInterest: func(a, b models.DebtRecord) bool {
		return a.AnnualRatePercent > b.AnnualRatePercent
	},
}

// Order returns a copy of the portfolio sorted for the given strategy. The
// input is never mutated and the output is a permutation of it: same
// records, reordered. The sort is stable, so debts with equal keys keep
// their relative input order. Custom (or an unknown strategy) preserves the
// input order entirely.
func Order(portfolio []models.DebtRecord, strategy models.Strategy) []models.DebtRecord {
	ordered := models.ClonePortfolio(portfolio)
	less, ok := lessFuncs[strategy]
	if !ok {
		return ordered
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return less(ordered[i], ordered[j])
	})
	return ordered
}
