// Package explainer produces a natural-language explanation of a repayment
// plan, optionally backed by the Gemini API. Without an API key it falls
// back to a template so the CLI works offline.
package explainer

import (
	"context"

	"fjacquet/debt-plan/internal/models"

	"github.com/shopspring/decimal"
)

// PlanSummary is the input to an explanation: the chosen strategy and the
// headline numbers of its simulation.
type PlanSummary struct {
	Strategy      models.Strategy
	Debts         []models.DebtRecord
	MonthlyBudget decimal.Decimal
	Result        models.SimulationResult
}

// Explainer generates a short explanation of why a plan looks the way it
// does. Implementations must be safe for concurrent use.
type Explainer interface {
	Explain(ctx context.Context, summary PlanSummary) (string, error)
}
