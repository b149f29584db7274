// Package advisor recommends a repayment strategy for a debt portfolio using
// a fixed, ordered set of heuristic rules over portfolio aggregates.
package advisor

import (
	"fjacquet/debt-plan/internal/logging"
	"fjacquet/debt-plan/internal/models"

	"github.com/shopspring/decimal"
)

// Thresholds are the tunable boundaries of the recommendation rules.
type Thresholds struct {
	// HighRatePercent is the annual rate above which a debt counts as
	// expensive (rule 1).
	HighRatePercent float64

	// LargeTotalBalance is the portfolio total above which expensive debt
	// triggers avalanche (rule 1).
	LargeTotalBalance decimal.Decimal

	// SmallBalance is the per-debt balance below which a debt counts as a
	// quick win (rule 2).
	SmallBalance decimal.Decimal

	// MinDebtsForSnowball is the portfolio size required for the quick-win
	// rule (rule 2).
	MinDebtsForSnowball int

	// MeanRatePercent is the average annual rate above which
	// highest-interest wins (rule 4).
	MeanRatePercent float64
}

// DefaultThresholds returns the standard rule boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighRatePercent:     15.0,
		LargeTotalBalance:   decimal.NewFromInt(10000),
		SmallBalance:        decimal.NewFromInt(1000),
		MinDebtsForSnowball: 3,
		MeanRatePercent:     10.0,
	}
}

// Advisor evaluates portfolios against its thresholds.
type Advisor struct {
	thresholds Thresholds
	log        logging.Logger
}

// New builds an Advisor. A nil logger is replaced with a no-op logger.
func New(thresholds Thresholds, log logging.Logger) *Advisor {
	return &Advisor{
		thresholds: thresholds,
		log:        logging.OrNop(log),
	}
}

// Recommend returns the strategy for the portfolio. Rules are evaluated in a
// fixed priority order and the first match wins; every predicate is an
// order-independent aggregate, so shuffling the input never changes the
// outcome. An empty portfolio yields the snowball default.
func (a *Advisor) Recommend(portfolio []models.DebtRecord) models.Strategy {
	if len(portfolio) == 0 {
		a.log.Debug("empty portfolio, recommending default strategy")
		return models.StrategySnowball
	}

	total := models.TotalBalance(portfolio)
	half := total.Div(decimal.NewFromInt(2))

	anyHighRate := false
	anySmallBalance := false
	anyDominantBalance := false
	rateSum := 0.0
	for _, d := range portfolio {
		if d.AnnualRatePercent > a.thresholds.HighRatePercent {
			anyHighRate = true
		}
		if d.Balance.LessThan(a.thresholds.SmallBalance) {
			anySmallBalance = true
		}
		if d.Balance.GreaterThan(half) {
			anyDominantBalance = true
		}
		rateSum += d.AnnualRatePercent
	}
	meanRate := rateSum / float64(len(portfolio))

	strategy := models.StrategySnowball
	switch {
	case anyHighRate && total.GreaterThan(a.thresholds.LargeTotalBalance):
		strategy = models.StrategyAvalanche
	case anySmallBalance && len(portfolio) >= a.thresholds.MinDebtsForSnowball:
		strategy = models.StrategySnowball
	case anyDominantBalance:
		strategy = models.StrategyHighestBalance
	case meanRate > a.thresholds.MeanRatePercent:
		strategy = models.StrategyHighestInterest
	}

	a.log.Debug("strategy recommended",
		logging.F("strategy", strategy.String()),
		logging.F("debts", len(portfolio)),
		logging.F("total_balance", total.StringFixed(2)),
	)
	return strategy
}

// Recommend evaluates the portfolio with the default thresholds.
func Recommend(portfolio []models.DebtRecord) models.Strategy {
	return New(DefaultThresholds(), nil).Recommend(portfolio)
}
