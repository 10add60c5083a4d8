package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("order validation failed",
		ValidationDetail{Field: "customerName", Message: "required"})

	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "order validation failed", ve.Error())
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "customerName", ve.Details[0].Field)

	_, ok = IsValidationError(fmt.Errorf("other"))
	assert.False(t, ok)
}

func TestEmptyCartError(t *testing.T) {
	assert.True(t, IsEmptyCartError(NewEmptyCartError()))
	assert.False(t, IsEmptyCartError(fmt.Errorf("other")))
}

func TestInsufficientStockError(t *testing.T) {
	err := NewInsufficientStockError(9, "Chả mực Hạ Long", 2, 3)

	ise, ok := IsInsufficientStockError(err)
	require.True(t, ok)
	assert.Equal(t, uint(9), ise.ProductID)
	assert.Equal(t, 2, ise.Available)
	assert.Equal(t, 3, ise.Requested)
	assert.Contains(t, err.Error(), "available 2")
	assert.Contains(t, err.Error(), "requested 3")
}

func TestInvalidTransitionError(t *testing.T) {
	err := NewInvalidTransitionError("DELIVERED", "SHIPPED")

	ite, ok := IsInvalidTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, "DELIVERED", ite.From)
	assert.Equal(t, "SHIPPED", ite.To)
	assert.Contains(t, err.Error(), "DELIVERED")
	assert.Contains(t, err.Error(), "SHIPPED")
}

func TestCartInvalidError(t *testing.T) {
	err := NewCartInvalidError(4, "Nem chua Thanh Hóa", "product is no longer available")

	cie, ok := IsCartInvalidError(err)
	require.True(t, ok)
	assert.Equal(t, uint(4), cie.ProductID)
	assert.Contains(t, err.Error(), "Nem chua Thanh Hóa")
}

func TestReconciliationErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := NewReconciliationError("committing payment transaction", cause)

	re, ok := IsReconciliationError(err)
	require.True(t, ok)
	assert.ErrorIs(t, re, cause)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "committing payment transaction")
}

func TestNotOwnerError(t *testing.T) {
	err := NewNotOwnerError("order 5 does not belong to user 9")
	_, ok := IsNotOwnerError(err)
	assert.True(t, ok)
}

func TestProductUnavailableError(t *testing.T) {
	err := NewProductUnavailableError(11, "Bánh đậu xanh")
	pue, ok := IsProductUnavailableError(err)
	require.True(t, ok)
	assert.Equal(t, uint(11), pue.ProductID)
}

func TestDeadlockError(t *testing.T) {
	err := NewDeadlockError("max retries exceeded")
	_, ok := IsDeadlockError(err)
	assert.True(t, ok)
}
