package simulator

import (
	"testing"

	"fjacquet/debt-plan/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcomeFor(t *testing.T, outcomes []models.StrategyOutcome, strategy models.Strategy) models.SimulationResult {
	t.Helper()
	for _, o := range outcomes {
		if o.Strategy == strategy {
			return o.Result
		}
	}
	t.Fatalf("strategy %s missing from comparison", strategy)
	return models.SimulationResult{}
}

func TestCompare_CoversAllNonCustomStrategies(t *testing.T) {
	portfolio := []models.DebtRecord{
		debt("a", 2000, 22.0, 60),
		debt("b", 800, 3.0, 40),
	}

	outcomes, err := newTestSimulator().Compare(portfolio, decimal.NewFromInt(300))
	require.NoError(t, err)
	require.Len(t, outcomes, 5)

	seen := map[models.Strategy]bool{}
	for _, o := range outcomes {
		assert.NotEqual(t, models.StrategyCustom, o.Strategy)
		seen[o.Strategy] = true
	}
	assert.Len(t, seen, 5, "every strategy appears exactly once")
}

func TestCompare_RankedByMonthsAscending(t *testing.T) {
	portfolio := []models.DebtRecord{
		debt("a", 6000, 15.5, 180),
		debt("b", 1200, 4.0, 50),
		debt("c", 3500, 21.0, 110),
	}

	outcomes, err := newTestSimulator().Compare(portfolio, decimal.NewFromInt(600))
	require.NoError(t, err)

	for i := 1; i < len(outcomes); i++ {
		assert.LessOrEqual(t, outcomes[i-1].Result.MonthsToPayoff, outcomes[i].Result.MonthsToPayoff)
	}
}

func TestCompare_AvalancheBeatsSnowballWhenHighRateDominates(t *testing.T) {
	// One small cheap debt, one large expensive debt, with surplus budget:
	// targeting the expensive debt first must not pay off slower, and must
	// pay strictly less interest.
	portfolio := []models.DebtRecord{
		debt("small-cheap", 800, 3.0, 40),
		debt("large-dear", 2000, 22.0, 60),
	}
	budget := decimal.NewFromInt(300) // minimums total 100

	outcomes, err := newTestSimulator().Compare(portfolio, budget)
	require.NoError(t, err)

	avalanche := outcomeFor(t, outcomes, models.StrategyAvalanche)
	snowball := outcomeFor(t, outcomes, models.StrategySnowball)

	assert.LessOrEqual(t, avalanche.MonthsToPayoff, snowball.MonthsToPayoff)
	assert.True(t, avalanche.TotalInterestPaid.LessThan(snowball.TotalInterestPaid),
		"avalanche interest %s must beat snowball interest %s",
		avalanche.TotalInterestPaid.StringFixed(2), snowball.TotalInterestPaid.StringFixed(2))

	// Strategies sharing a sort key must agree exactly.
	highestInterest := outcomeFor(t, outcomes, models.StrategyHighestInterest)
	assert.Equal(t, avalanche.MonthsToPayoff, highestInterest.MonthsToPayoff)
	assert.True(t, avalanche.TotalInterestPaid.Equal(highestInterest.TotalInterestPaid))

	lowestBalance := outcomeFor(t, outcomes, models.StrategyLowestBalance)
	assert.Equal(t, snowball.MonthsToPayoff, lowestBalance.MonthsToPayoff)
	assert.True(t, snowball.TotalInterestPaid.Equal(lowestBalance.TotalInterestPaid))
}

func TestCompare_EmptyPortfolio(t *testing.T) {
	outcomes, err := newTestSimulator().Compare(nil, decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Len(t, outcomes, 5)

	for _, o := range outcomes {
		assert.Zero(t, o.Result.MonthsToPayoff)
		assert.True(t, o.Result.InterestSaved.IsZero())
	}
}

func TestCompare_InvalidDebtSurfacesError(t *testing.T) {
	portfolio := []models.DebtRecord{
		{ID: "broken", Name: "broken", Balance: decimal.NewFromInt(500)},
	}

	_, err := newTestSimulator().Compare(portfolio, decimal.NewFromInt(100))
	assert.Error(t, err)
}
