package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeInvalidAmount       = 4002
	CodeConstraintViolation = 4005
	CodeUnauthorized        = 4010
	CodeNotFound            = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned when request input fails shape or field validation
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when a monetary amount is not a valid decimal string
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrUnauthorized is returned when no valid session accompanies the request
	ErrUnauthorized = errors.New("authentication required")

	// ErrSessionExpired is returned when the session exists but is past its expiry
	ErrSessionExpired = errors.New("session expired")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrContractNotFound is returned when a contract is absent or owned by another user.
	// Ownership violations are deliberately indistinguishable from absence.
	ErrContractNotFound = errors.New("contract not found")

	// ErrFundingRequestNotFound is returned when the requested funding request doesn't exist
	ErrFundingRequestNotFound = errors.New("funding request not found")

	// ErrSavingsGoalNotFound is returned when the requested savings goal doesn't exist
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrInvestmentOfferNotFound is returned when the requested investment offer doesn't exist
	ErrInvestmentOfferNotFound = errors.New("investment offer not found")

	// ErrSessionNotFound is returned when the session id has no matching row
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUser is returned when a unique user constraint is violated
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateReferralCode is returned when a generated referral code collides
	ErrDuplicateReferralCode = errors.New("referral code already taken")

	// ErrInvalidContractType is returned when a contract carries an unknown type tag
	ErrInvalidContractType = errors.New("invalid contract type")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidContractType):
		return CodeValidation
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionExpired):
		return CodeUnauthorized
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrDuplicateUser),
		errors.Is(err, ErrDuplicateReferralCode):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// ValidationError carries the field that failed validation
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotificationError describes a failed best-effort notification dispatch.
// It is only ever logged, never surfaced to API callers.
type NotificationError struct {
	Channel string // "email" or "telegram"
	Event   string // e.g. "service_alert", "signed_contract"
	Err     error
}

// Error implements the error interface for NotificationError
func (e *NotificationError) Error() string {
	return fmt.Sprintf("%s notification %q failed: %v", e.Channel, e.Event, e.Err)
}

// Unwrap returns the underlying error
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *NotificationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "notification_error",
		"channel":    e.Channel,
		"event":      e.Event,
		"error":      e.Err.Error(),
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrContractNotFound) ||
		errors.Is(err, ErrFundingRequestNotFound) ||
		errors.Is(err, ErrSavingsGoalNotFound) ||
		errors.Is(err, ErrInvestmentOfferNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsValidationError checks if the error is a validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount)
}

// IsUnauthorizedError checks if the error is an authentication failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrSessionExpired)
}
