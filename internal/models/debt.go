// Package models defines the core domain types shared across the debt-plan
// engine: debt records, repayment strategies and simulation results.
package models

import (
	"github.com/shopspring/decimal"
)

// DebtRecord describes a single outstanding debt as supplied by the host
// application. Records are value data: the engine never mutates a caller's
// DebtRecord and holds no reference to it after a call returns.
type DebtRecord struct {
	// ID is an opaque identifier, stable across calls. It is used for
	// identity only, never for ordering.
	ID string `csv:"id" yaml:"id"`

	// Name is a display label for the debt (e.g. "Visa", "Car loan").
	Name string `csv:"name" yaml:"name"`

	// Balance is the outstanding amount. Must be non-negative.
	Balance decimal.Decimal `csv:"balance" yaml:"balance"`

	// AnnualRatePercent is the yearly interest rate as a percentage,
	// e.g. 18.99 means 18.99% per year. Must be non-negative.
	AnnualRatePercent float64 `csv:"annual_rate_percent" yaml:"annual_rate_percent"`

	// MinimumPayment is the amount due each month. Must be positive for
	// any debt with a positive balance.
	MinimumPayment decimal.Decimal `csv:"minimum_payment" yaml:"minimum_payment"`
}

// MonthlyRate returns the simple monthly interest rate as a decimal factor
// (annual percentage / 100 / 12).
func (d DebtRecord) MonthlyRate() decimal.Decimal {
	return decimal.NewFromFloat(d.AnnualRatePercent / 100.0 / 12.0)
}

// TotalBalance sums the balances of a portfolio.
func TotalBalance(portfolio []DebtRecord) decimal.Decimal {
	total := decimal.Zero
	for _, d := range portfolio {
		total = total.Add(d.Balance)
	}
	return total
}

// TotalMinimumPayments sums the minimum payments of a portfolio.
func TotalMinimumPayments(portfolio []DebtRecord) decimal.Decimal {
	total := decimal.Zero
	for _, d := range portfolio {
		total = total.Add(d.MinimumPayment)
	}
	return total
}

// ClonePortfolio returns a copy of the portfolio slice. DebtRecord fields are
// value types (decimal.Decimal is immutable), so a shallow copy of the slice
// is a full copy of the data.
func ClonePortfolio(portfolio []DebtRecord) []DebtRecord {
	cp := make([]DebtRecord, len(portfolio))
	copy(cp, portfolio)
	return cp
}
