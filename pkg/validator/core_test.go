package validator_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/utilkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "phone", Message: "too short"})

		assert.Equal(t, "validation failed: email: is required; phone: too short", errs.Error())
	})

	t.Run("field helpers", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "a", Message: "one"},
			{Field: "b", Message: "two"},
			{Field: "a", Message: "three"},
		}

		assert.True(t, errs.Has("a"))
		assert.False(t, errs.Has("c"))
		assert.Equal(t, []string{"one", "three"}, errs.Get("a"))
		assert.Equal(t, []string{"a", "b"}, errs.Fields())
		assert.False(t, errs.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Check("email", "user@example.com", validator.Email),
			validator.Check("phone", "13812345678", validator.Phone),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Check("email", "nope", validator.Email),
			validator.Check("phone", "13812345678", validator.Phone),
			validator.Check("name", "a", validator.Length(2, 10, "name", false)),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"email", "name"}, verrs.Fields())
		assert.Equal(t, []string{validator.MsgEmail}, verrs.Get("email"))
		assert.Equal(t, []string{"name length must be at least 2"}, verrs.Get("name"))
	})

	t.Run("extract from wrapped error", func(t *testing.T) {
		err := validator.Apply(validator.Check("url", "x", validator.HTTP))
		wrapped := fmt.Errorf("submit form: %w", err)

		verrs := validator.ExtractValidationErrors(wrapped)
		require.Len(t, verrs, 1)
		assert.Equal(t, "url", verrs[0].Field)
	})

	t.Run("non validation errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestValidate(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		assert.NoError(t, validator.Validate("abc123", validator.OnlyNumAndEn, validator.Length(3, 10, "", false)))
	})

	t.Run("returns first failure", func(t *testing.T) {
		err := validator.Validate("a!", validator.NoSpecial, validator.Length(3, 10, "", false))
		require.Error(t, err)
		assert.Equal(t, validator.MsgNoSpecial, err.Error())
		assert.ErrorIs(t, err, validator.ErrInvalidValue)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Empty(t, verr.Field)
	})

	t.Run("no validators", func(t *testing.T) {
		assert.NoError(t, validator.Validate("anything"))
	})
}

func TestIsNull(t *testing.T) {
	var nilPtr *int

	assert.True(t, validator.IsNull(nil))
	assert.True(t, validator.IsNull(nilPtr))
	assert.True(t, validator.IsNull("null"))
	assert.True(t, validator.IsNull(" NULL "))
	assert.True(t, validator.IsNull("Undefined"))
	assert.False(t, validator.IsNull(""))
	assert.False(t, validator.IsNull("nullable"))
	assert.False(t, validator.IsNull(0))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, validator.IsEmpty(nil))
	assert.True(t, validator.IsEmpty(""))
	assert.True(t, validator.IsEmpty("   "))
	assert.True(t, validator.IsEmpty("{}"))
	assert.True(t, validator.IsEmpty("[]"))
	assert.True(t, validator.IsEmpty("undefined"))
	assert.True(t, validator.IsEmpty(map[string]any{}))
	assert.True(t, validator.IsEmpty([]int{}))
	assert.True(t, validator.IsEmpty(struct{}{}))

	assert.False(t, validator.IsEmpty("x"))
	assert.False(t, validator.IsEmpty(0))
	assert.False(t, validator.IsEmpty(map[string]any{"a": 1}))
	assert.False(t, validator.IsEmpty([]int{1}))
}

func TestIsInteger(t *testing.T) {
	assert.True(t, validator.IsInteger(42))
	assert.True(t, validator.IsInteger(uint8(1)))
	assert.True(t, validator.IsInteger(3.0))
	assert.True(t, validator.IsInteger("12"))
	assert.True(t, validator.IsInteger(" -7 "))
	assert.True(t, validator.IsInteger("1e3"))

	assert.False(t, validator.IsInteger(3.5))
	assert.False(t, validator.IsInteger("3.5"))
	assert.False(t, validator.IsInteger("abc"))
	assert.False(t, validator.IsInteger(math.NaN()))
	assert.False(t, validator.IsInteger(math.Inf(1)))
	assert.False(t, validator.IsInteger(nil))
}
