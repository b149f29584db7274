// Package planerror defines the typed errors the engine reports for invalid
// caller input. All errors are synchronous and local to a single call; there
// is no retry or recovery surface.
package planerror

import "fmt"

// InvalidMinimumPaymentError reports a debt whose minimum payment is zero or
// negative while it still carries a balance. Such a debt can never be paid
// off at its minimum pace, so the baseline is undefined and the whole call
// is rejected rather than silently contributing zero.
type InvalidMinimumPaymentError struct {
	DebtID         string
	Name           string
	MinimumPayment string
}

func (e *InvalidMinimumPaymentError) Error() string {
	return fmt.Sprintf("debt %q (%s): minimum payment %s must be positive while a balance remains",
		e.DebtID, e.Name, e.MinimumPayment)
}

// InvalidDebtError reports a debt field that violates the input contract,
// e.g. a negative balance or rate in a CSV row.
type InvalidDebtError struct {
	DebtID string
	Field  string
	Value  string
	Reason string
}

func (e *InvalidDebtError) Error() string {
	return fmt.Sprintf("debt %q: invalid %s=%s: %s", e.DebtID, e.Field, e.Value, e.Reason)
}
