package explainer

import (
	"context"
	"fmt"
)

// TemplateExplainer renders a deterministic explanation without any external
// service. It is the offline default and the fallback for API failures.
type TemplateExplainer struct{}

// Explain builds the explanation from the plan numbers alone.
func (TemplateExplainer) Explain(_ context.Context, summary PlanSummary) (string, error) {
	years := summary.Result.MonthsToPayoff / 12
	months := summary.Result.MonthsToPayoff % 12

	horizon := fmt.Sprintf("%d months", summary.Result.MonthsToPayoff)
	if years > 0 {
		horizon = fmt.Sprintf("%d months (%d years, %d months)", summary.Result.MonthsToPayoff, years, months)
	}

	saved := summary.Result.InterestSaved
	savings := fmt.Sprintf("saves %s in interest compared to paying minimums only", saved.StringFixed(2))
	if saved.IsNegative() {
		savings = fmt.Sprintf("pays %s more interest than the minimum-only baseline; consider raising the budget or comparing strategies", saved.Abs().StringFixed(2))
	}

	return fmt.Sprintf("The %s strategy (%s) clears %d debts in %s at a budget of %s per month. It %s.",
		summary.Strategy,
		summary.Strategy.Description(),
		len(summary.Debts),
		horizon,
		summary.MonthlyBudget.StringFixed(2),
		savings), nil
}
