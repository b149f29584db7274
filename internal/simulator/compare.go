package simulator

import (
	"sort"

	"fjacquet/debt-plan/internal/logging"
	"fjacquet/debt-plan/internal/models"
	"fjacquet/debt-plan/internal/orderer"

	"github.com/shopspring/decimal"
)

// Compare orders and simulates the portfolio once per non-custom strategy
// and returns the outcomes ranked by months to payoff, fastest first. The
// ranking sort is stable, so strategies that tie keep the canonical
// enumeration order. Nothing is cached: the workloads involved (tens of
// debts, hundreds of months) make recomputation cheap.
func (s *Simulator) Compare(portfolio []models.DebtRecord, monthlyBudget decimal.Decimal) ([]models.StrategyOutcome, error) {
	strategies := models.NonCustomStrategies()
	outcomes := make([]models.StrategyOutcome, 0, len(strategies))

	for _, strategy := range strategies {
		ordered := orderer.Order(portfolio, strategy)
		result, err := s.Simulate(ordered, monthlyBudget)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, models.StrategyOutcome{
			Strategy: strategy,
			Result:   result,
		})
	}

	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].Result.MonthsToPayoff < outcomes[j].Result.MonthsToPayoff
	})

	s.log.Debug("strategy comparison complete",
		logging.F("strategies", len(outcomes)),
		logging.F("fastest", outcomes[0].Strategy.String()),
	)
	return outcomes, nil
}
