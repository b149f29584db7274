package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyRate(t *testing.T) {
	d := DebtRecord{AnnualRatePercent: 12.0}
	rate, _ := d.MonthlyRate().Float64()
	assert.InDelta(t, 0.01, rate, 1e-12)

	zero := DebtRecord{AnnualRatePercent: 0}
	assert.True(t, zero.MonthlyRate().IsZero())
}

func TestTotalBalanceAndMinimums(t *testing.T) {
	portfolio := []DebtRecord{
		{ID: "a", Balance: decimal.NewFromInt(1500), MinimumPayment: decimal.NewFromInt(50)},
		{ID: "b", Balance: decimal.NewFromInt(2500), MinimumPayment: decimal.NewFromInt(75)},
	}

	assert.True(t, TotalBalance(portfolio).Equal(decimal.NewFromInt(4000)))
	assert.True(t, TotalMinimumPayments(portfolio).Equal(decimal.NewFromInt(125)))

	assert.True(t, TotalBalance(nil).IsZero())
	assert.True(t, TotalMinimumPayments(nil).IsZero())
}

func TestClonePortfolio(t *testing.T) {
	original := []DebtRecord{
		{ID: "a", Balance: decimal.NewFromInt(100)},
		{ID: "b", Balance: decimal.NewFromInt(200)},
	}

	cloned := ClonePortfolio(original)
	require.Equal(t, original, cloned)

	cloned[0].Balance = decimal.NewFromInt(999)
	assert.True(t, original[0].Balance.Equal(decimal.NewFromInt(100)),
		"mutating the clone must not touch the original")
}
