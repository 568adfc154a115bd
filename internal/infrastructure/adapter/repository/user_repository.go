package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"gorm.io/gorm"
)

// UserRepository implements the UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), "referral_code") {
			return errs.ErrDuplicateReferralCode
		}
		r.logger.Warn("Duplicate user operation", map[string]any{
			"user_id": userID,
		})
		return errs.ErrDuplicateUser
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by identity-provider id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var user entity.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return &user, nil
}

// GetByReferralCode retrieves the user owning the given referral code
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	r.logger.Debug("Getting user by referral code", map[string]any{
		"referral_code": code,
	})

	var user entity.User
	result := r.db.WithContext(ctx).First(&user, "referral_code = ?", code)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by referral code", result.Error, "")
	}

	return &user, nil
}

// Upsert inserts the user or overwrites its mutable fields. The referral code
// and referral attribution are only written on insert; existing rows keep
// theirs. Returns the stored row and whether it was inserted.
func (r *UserRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	var existing entity.User
	result := r.db.WithContext(ctx).First(&existing, "id = ?", user.ID)

	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, r.handleDatabaseError("looking up user for upsert", result.Error, user.ID)
		}

		if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
			return nil, false, r.handleDatabaseError("creating user", err, user.ID)
		}

		r.logger.Debug("User created", map[string]any{
			"user_id": user.ID,
		})
		return user, true, nil
	}

	now := r.timeProvider.Now()
	updates := map[string]any{
		"email":             user.Email,
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"full_name":         user.FullName,
		"phone":             user.Phone,
		"national_id":       user.NationalID,
		"address":           user.Address,
		"job":               user.Job,
		"profile_image_url": user.ProfileImageURL,
		"updated_at":        now,
	}

	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return nil, false, r.handleDatabaseError("updating user", err, user.ID)
	}

	existing.Email = user.Email
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.FullName = user.FullName
	existing.Phone = user.Phone
	existing.NationalID = user.NationalID
	existing.Address = user.Address
	existing.Job = user.Job
	existing.ProfileImageURL = user.ProfileImageURL
	existing.UpdatedAt = now

	r.logger.Debug("User updated", map[string]any{
		"user_id": user.ID,
	})
	return &existing, false, nil
}
