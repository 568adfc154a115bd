package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"Negative amount", ErrNegativeAmount, CodeInvalidAmount},
		{"Validation", ErrValidation, CodeValidation},
		{"Field validation", NewValidationError("amount", "must not be empty"), CodeValidation},
		{"Invalid contract type", ErrInvalidContractType, CodeValidation},
		{"Unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"Session expired", ErrSessionExpired, CodeUnauthorized},
		{"Contract not found", ErrContractNotFound, CodeNotFound},
		{"User not found", ErrUserNotFound, CodeNotFound},
		{"Constraint violation", ErrConstraintViolation, CodeConstraintViolation},
		{"Duplicate user", ErrDuplicateUser, CodeConstraintViolation},
		{"Duplicate referral code", ErrDuplicateReferralCode, CodeConstraintViolation},
		{"Internal server", ErrInternalServer, CodeInternalServer},
		{"Unknown error", errors.New("something else"), CodeInternalServer},
		{"Wrapped not-found", fmt.Errorf("loading: %w", ErrSavingsGoalNotFound), CodeNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("signatureData", "must not be empty")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "signatureData")

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "signatureData", vErr.Field)
	assert.Equal(t, CodeValidation, vErr.LogFields()["error_code"])
}

func TestNotificationError(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := &NotificationError{Channel: "telegram", Event: "service_alert", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "telegram")
	assert.Equal(t, "service_alert", err.LogFields()["event"])
}

func TestErrorClassifiers(t *testing.T) {
	t.Run("IsNotFoundError", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrNotFound))
		assert.True(t, IsNotFoundError(ErrContractNotFound))
		assert.True(t, IsNotFoundError(ErrSessionNotFound))
		assert.False(t, IsNotFoundError(ErrUnauthorized))
	})

	t.Run("IsValidationError", func(t *testing.T) {
		assert.True(t, IsValidationError(ErrInvalidAmount))
		assert.True(t, IsValidationError(NewValidationError("x", "y")))
		assert.False(t, IsValidationError(ErrUserNotFound))
	})

	t.Run("IsUnauthorizedError", func(t *testing.T) {
		assert.True(t, IsUnauthorizedError(ErrUnauthorized))
		assert.True(t, IsUnauthorizedError(ErrSessionExpired))
		assert.False(t, IsUnauthorizedError(ErrValidation))
	})
}
