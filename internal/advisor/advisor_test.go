package advisor

import (
	"testing"

	"fjacquet/debt-plan/internal/logging"
	"fjacquet/debt-plan/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func debt(id string, balance float64, rate float64, minimum float64) models.DebtRecord {
	return models.DebtRecord{
		ID:                id,
		Name:              id,
		Balance:           decimal.NewFromFloat(balance),
		AnnualRatePercent: rate,
		MinimumPayment:    decimal.NewFromFloat(minimum),
	}
}

func TestRecommend_EmptyPortfolioDefaultsToSnowball(t *testing.T) {
	assert.Equal(t, models.StrategySnowball, Recommend(nil))
	assert.Equal(t, models.StrategySnowball, Recommend([]models.DebtRecord{}))
}

func TestRecommend_Rules(t *testing.T) {
	tests := []struct {
		name      string
		portfolio []models.DebtRecord
		want      models.Strategy
	}{
		{
			name: "high rate and large total picks avalanche",
			portfolio: []models.DebtRecord{
				debt("card", 8000, 19.99, 200),
				debt("loan", 7000, 6.0, 150),
			},
			want: models.StrategyAvalanche,
		},
		{
			name: "small balance in a portfolio of three picks snowball",
			portfolio: []models.DebtRecord{
				debt("a", 500, 9.0, 25),
				debt("b", 3000, 8.0, 90),
				debt("c", 4000, 7.0, 120),
			},
			want: models.StrategySnowball,
		},
		{
			name: "dominant balance picks highest-balance",
			portfolio: []models.DebtRecord{
				debt("big", 6000, 5.0, 180),
				debt("small", 2000, 5.0, 60),
			},
			want: models.StrategyHighestBalance,
		},
		{
			name: "high mean rate picks highest-interest",
			portfolio: []models.DebtRecord{
				debt("a", 3000, 12.0, 90),
				debt("b", 3000, 11.0, 90),
			},
			want: models.StrategyHighestInterest,
		},
		{
			name: "nothing matches falls back to snowball",
			portfolio: []models.DebtRecord{
				debt("a", 3000, 4.0, 90),
				debt("b", 3000, 5.0, 90),
			},
			want: models.StrategySnowball,
		},
		{
			name: "rule one outranks rule two",
			portfolio: []models.DebtRecord{
				debt("a", 500, 18.0, 25),
				debt("b", 6000, 6.0, 180),
				debt("c", 6000, 6.0, 180),
			},
			want: models.StrategyAvalanche,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.portfolio))
		})
	}
}

func TestRecommend_OrderIndependent(t *testing.T) {
	a := debt("a", 500, 9.0, 25)
	b := debt("b", 3000, 8.0, 90)
	c := debt("c", 4000, 7.0, 120)

	permutations := [][]models.DebtRecord{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}

	want := Recommend(permutations[0])
	for _, p := range permutations[1:] {
		assert.Equal(t, want, Recommend(p))
	}
}

func TestRecommend_DoesNotMutateInput(t *testing.T) {
	portfolio := []models.DebtRecord{
		debt("a", 500, 9.0, 25),
		debt("b", 3000, 8.0, 90),
	}
	before := models.ClonePortfolio(portfolio)

	Recommend(portfolio)

	assert.Equal(t, before, portfolio)
}

func TestRecommend_CustomThresholds(t *testing.T) {
	thresholds := DefaultThresholds()
	thresholds.HighRatePercent = 5.0
	thresholds.LargeTotalBalance = decimal.NewFromInt(100)

	a := New(thresholds, logging.NewMockLogger())
	portfolio := []models.DebtRecord{debt("a", 200, 6.0, 10)}

	assert.Equal(t, models.StrategyAvalanche, a.Recommend(portfolio))
}
