package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"gorm.io/gorm"
)

// ReferralRepository implements the ReferralRepository interface using GORM
type ReferralRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReferralRepository creates a new ReferralRepository instance
func NewReferralRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ReferralRepository {
	return &ReferralRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *ReferralRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new referral and fills its generated id
func (r *ReferralRepository) Create(ctx context.Context, referral *entity.Referral) error {
	if err := r.db.WithContext(ctx).Create(referral).Error; err != nil {
		return r.handleDatabaseError("creating referral", err)
	}

	r.logger.Debug("Referral created", map[string]any{
		"referral_id": referral.ID,
		"referrer_id": referral.ReferrerID,
		"referred_id": referral.ReferredUserID,
	})
	return nil
}

// ListByReferrer returns referrals attributed to the user, newest first
func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error) {
	var referrals []*entity.Referral
	result := r.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("created_at desc").
		Find(&referrals)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing referrals", result.Error)
	}

	return referrals, nil
}
