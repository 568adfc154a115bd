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

// SavingsGoalRepository implements the SavingsGoalRepository interface using GORM
type SavingsGoalRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSavingsGoalRepository creates a new SavingsGoalRepository instance
func NewSavingsGoalRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SavingsGoalRepository {
	return &SavingsGoalRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *SavingsGoalRepository) handleDatabaseError(operation string, err error, id uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"savings_goal_id": id,
		"error":           err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrSavingsGoalNotFound
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new savings goal and fills its generated id
func (r *SavingsGoalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return r.handleDatabaseError("creating savings goal", err, 0)
	}

	r.logger.Debug("Savings goal created", map[string]any{
		"savings_goal_id": goal.ID,
		"user_id":         goal.UserID,
		"target_amount":   goal.TargetAmount,
	})
	return nil
}

// ListByUser returns the user's savings goals, newest first
func (r *SavingsGoalRepository) ListByUser(ctx context.Context, userID string) ([]*entity.SavingsGoal, error) {
	var goals []*entity.SavingsGoal
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&goals)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing savings goals", result.Error, 0)
	}

	return goals, nil
}

// GetByID retrieves a savings goal by id
func (r *SavingsGoalRepository) GetByID(ctx context.Context, id uint64) (*entity.SavingsGoal, error) {
	var goal entity.SavingsGoal
	result := r.db.WithContext(ctx).First(&goal, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting savings goal", result.Error, id)
	}

	return &goal, nil
}

// UpdateCurrentAmount replaces the goal's saved amount
func (r *SavingsGoalRepository) UpdateCurrentAmount(ctx context.Context, id uint64, amount string) (*entity.SavingsGoal, error) {
	var goal entity.SavingsGoal
	result := r.db.WithContext(ctx).First(&goal, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting savings goal for amount update", result.Error, id)
	}

	now := r.timeProvider.Now()
	updates := map[string]any{
		"current_amount": amount,
		"updated_at":     now,
	}

	if err := r.db.WithContext(ctx).Model(&goal).Updates(updates).Error; err != nil {
		return nil, r.handleDatabaseError("updating savings goal amount", err, id)
	}

	goal.CurrentAmount = amount
	goal.UpdatedAt = now

	r.logger.Debug("Savings goal amount updated", map[string]any{
		"savings_goal_id": id,
		"current_amount":  amount,
	})
	return &goal, nil
}
