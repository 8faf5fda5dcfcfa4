package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"oja/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("user", 7, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: user 7 (cause: connection reset)", err.Error())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("ValueIsInvalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("cart", errors.New("spans several stores"))
		assert.Equal(t, "value is invalid: cart (cause: spans several stores)", err.Error())
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("ValueIsRequired", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("email")
		assert.Equal(t, "value is required: email", err.Error())
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("ValueIsOutOfRange strips newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", "5\n6", 1, 5)
		assert.Equal(t, "value is out of range: rating is 5 6, min value is 1, max value is 5", err.Error())
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("domain errors are not validation errors", func(t *testing.T) {
		assert.False(t, errs.IsValidation(errs.NewOutOfStockError("i", 2, 1)))
		assert.False(t, errs.IsValidation(errs.NewInsufficientFundsError(2, 1)))
	})
}

func TestDomainErrors(t *testing.T) {
	t.Run("InsufficientFunds", func(t *testing.T) {
		err := errs.NewInsufficientFundsError(11500, 10000)
		assert.Equal(t, "insufficient funds: required 11500, available 10000", err.Error())
		require.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})

	t.Run("OutOfStock", func(t *testing.T) {
		err := errs.NewOutOfStockError("item-1", 3, 2)
		assert.Equal(t, "out of stock: item item-1 requested 3, available 2", err.Error())
		require.ErrorIs(t, err, errs.ErrOutOfStock)
	})

	t.Run("InvalidTransition", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("Delivered", "accept delivery")
		assert.Equal(t, "invalid status transition: cannot accept delivery from Delivered", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("place order: %w", errs.NewOutOfStockError("item-9", 1, 0))

	require.ErrorIs(t, wrapped, errs.ErrOutOfStock)

	var target *errs.OutOfStockError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "item-9", target.ItemID)
}
