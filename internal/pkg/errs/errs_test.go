package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("bookingId", "BKG7")

		assert.Equal(t, "bookingId", err.ParamName)
		assert.Equal(t, "BKG7", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: BKG7", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("registry is closed")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", "DRV1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverId, ID is: DRV1 (cause: registry is closed)",
			err.Error())
	})

	t.Run("non string ids keep fmt verb output", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("seq", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("ValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("pickup", errors.New("expected lat,lng"))

		assert.Equal(t, "pickup", err.ParamName)
		assert.Equal(t, "value is invalid: pickup (cause: expected lat,lng)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("ValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("lat", 95.5, -90.0, 90.0)

		assert.Equal(t, 95.5, err.Value)
		assert.Equal(t, "value is invalid: 95.5 is lat, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("ValueIsOutOfRangeError with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("cod", -5, 0, 100, errors.New("negative"))
		assert.Equal(t,
			"value is invalid: -5 is cod, min value is 0, max value is 100 (cause: negative)",
			err.Error())
	})

	t.Run("messages are single line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("ValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerPhone")

		assert.Equal(t, "value is required: customerPhone", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
		require.ErrorIs(t, err, errs.ErrValidation)

		withCause := errs.NewValueIsRequiredErrorWithCause("phone", errors.New("empty body"))
		assert.Equal(t, "value is required: phone (cause: empty body)", withCause.Error())
	})

	t.Run("joined validation errors still classify", func(t *testing.T) {
		err := errors.Join(errs.NewValueIsRequiredError("pickup"), errs.NewValueIsRequiredError("drop"))
		require.ErrorIs(t, err, errs.ErrValidation)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDomainErrors(t *testing.T) {
	t.Run("ForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("not your task")

		assert.Equal(t, "forbidden: not your task", err.Error())
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.NotErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("StatusIsInvalidError", func(t *testing.T) {
		err := errs.NewStatusIsInvalidError("TELEPORTED")
		assert.Equal(t, "status is invalid: TELEPORTED", err.Error())
		require.ErrorIs(t, err, errs.ErrStatusIsInvalid)

		withCause := errs.NewStatusIsInvalidErrorWithCause("PICKED_UP", errors.New("booking is DELIVERED"))
		assert.Equal(t, "status is invalid: PICKED_UP (cause: booking is DELIVERED)", withCause.Error())
	})

	t.Run("ConflictError", func(t *testing.T) {
		err := errs.NewConflictError("no drivers online")
		assert.Equal(t, "conflict: no drivers online", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		err := fmt.Errorf("dispatch BKG1: %w", errs.NewConflictError("no drivers online"))
		require.ErrorIs(t, err, errs.ErrConflict)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "no drivers online", conflict.Reason)
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "forbidden", errs.ErrForbidden.Error())
	assert.Equal(t, "status is invalid", errs.ErrStatusIsInvalid.Error())
	assert.Equal(t, "conflict", errs.ErrConflict.Error())
}
