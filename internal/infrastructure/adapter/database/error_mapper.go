package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/flouscash/platform/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeFundingRequest represents the funding request entity
	EntityTypeFundingRequest EntityType = "funding_request"
	// EntityTypeSavingsGoal represents the savings goal entity
	EntityTypeSavingsGoal EntityType = "savings_goal"
	// EntityTypeInvestmentOffer represents the investment offer entity
	EntityTypeInvestmentOffer EntityType = "investment_offer"
	// EntityTypeReferral represents the referral entity
	EntityTypeReferral EntityType = "referral"
	// EntityTypeContract represents the contract entity
	EntityTypeContract EntityType = "contract"
	// EntityTypeSession represents the login session entity
	EntityTypeSession EntityType = "session"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Check for common GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	// Check for PostgreSQL specific errors
	errMsg := strings.ToLower(err.Error())

	switch {
	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		if strings.Contains(errMsg, "referral_code") {
			return domainErr.ErrDuplicateReferralCode
		}
		return domainErr.ErrDuplicateUser

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrConstraintViolation

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	// Default error
	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return domainErr.ErrUserNotFound
		case EntityTypeFundingRequest:
			return domainErr.ErrFundingRequestNotFound
		case EntityTypeSavingsGoal:
			return domainErr.ErrSavingsGoalNotFound
		case EntityTypeInvestmentOffer:
			return domainErr.ErrInvestmentOfferNotFound
		case EntityTypeContract:
			return domainErr.ErrContractNotFound
		case EntityTypeSession:
			return domainErr.ErrSessionNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
