package errs_test

import (
	"errors"
	"testing"

	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("locker", "L001")

		assert.Equal(t, "locker", err.ParamName)
		assert.Equal(t, "L001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: L001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("file is empty")
		err := errs.NewObjectNotFoundErrorWithCause("locker", "L001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: locker, ID is: L001 (cause: file is empty)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("email", errors.New("invalid format"))

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 91.5, err.Value)
		assert.Equal(t,
			"value is out of range: 91.5 is latitude, min value is -90, max value is 90",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("filename")

	assert.Equal(t, "value is required: filename", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestConversionError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewConversionError("delivery", "sent_date", true)

		assert.Equal(t, "conversion failed: delivery.sent_date has unsupported value true (bool)", err.Error())
		require.ErrorIs(t, err, errs.ErrConversionFailed)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewConversionErrorWithCause("delivery", "sent_date", "01/12/2023", errors.New("bad layout"))

		assert.Contains(t, err.Error(), "(cause: bad layout)")

		var target *errs.ConversionError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "sent_date", target.Field)
	})

	t.Run("whole record", func(t *testing.T) {
		err := errs.NewConversionError("parcel", "", 7)

		assert.Equal(t, "conversion failed: parcel has unsupported value 7 (int)", err.Error())
	})
}
