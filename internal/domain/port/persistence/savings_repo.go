package persistence

import (
	"context"

	"github.com/flouscash/platform/internal/domain/entity"
)

// SavingsGoalRepository defines storage operations for savings goals
type SavingsGoalRepository interface {
	// Create persists a new savings goal and fills its generated id
	Create(ctx context.Context, goal *entity.SavingsGoal) error
	// ListByUser returns the user's savings goals, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.SavingsGoal, error)
	// GetByID retrieves a savings goal by id
	GetByID(ctx context.Context, id uint64) (*entity.SavingsGoal, error)
	// UpdateCurrentAmount replaces the goal's saved amount
	UpdateCurrentAmount(ctx context.Context, id uint64, amount string) (*entity.SavingsGoal, error)
}
