package planerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidMinimumPaymentError(t *testing.T) {
	err := &InvalidMinimumPaymentError{
		DebtID:         "card",
		Name:           "Visa",
		MinimumPayment: "0",
	}

	assert.Contains(t, err.Error(), "card")
	assert.Contains(t, err.Error(), "Visa")
	assert.Contains(t, err.Error(), "must be positive")

	wrapped := fmt.Errorf("simulate: %w", err)
	var target *InvalidMinimumPaymentError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "card", target.DebtID)
}

func TestInvalidDebtError(t *testing.T) {
	err := &InvalidDebtError{
		DebtID: "loan",
		Field:  "balance",
		Value:  "-100",
		Reason: "must be non-negative",
	}

	assert.Contains(t, err.Error(), "loan")
	assert.Contains(t, err.Error(), "balance")
	assert.Contains(t, err.Error(), "-100")
}
