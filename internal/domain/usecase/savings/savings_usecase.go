package savings

import (
	"context"

	"github.com/flouscash/platform/internal/domain/entity"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/notifier"
	"github.com/flouscash/platform/internal/domain/port/persistence"
	"github.com/flouscash/platform/internal/domain/port/usecase"
)

// SavingsUseCase handles savings goal submission and listing
type SavingsUseCase struct {
	savingsRepo  persistence.SavingsGoalRepository
	userRepo     persistence.UserRepository
	dispatcher   notifier.Dispatcher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSavingsUseCase creates a new SavingsUseCase
func NewSavingsUseCase(
	savingsRepo persistence.SavingsGoalRepository,
	userRepo persistence.UserRepository,
	dispatcher notifier.Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *SavingsUseCase {
	return &SavingsUseCase{
		savingsRepo:  savingsRepo,
		userRepo:     userRepo,
		dispatcher:   dispatcher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create validates the submission, persists the goal and fires a detached
// service alert. Savings goals never get a companion contract; the asymmetry
// with funding and investment flows is intentional.
func (u *SavingsUseCase) Create(ctx context.Context, userID string, input usecase.CreateSavingsInput) (*entity.SavingsGoal, error) {
	goal, err := entity.NewSavingsGoal(userID, input.GoalName, input.TargetAmount, input.MonthlyContribution, input.TargetDate, u.timeProvider)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.savingsRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	u.logger.Info("Savings goal created", map[string]any{
		"user_id":       userID,
		"goal_id":       goal.ID,
		"target_amount": goal.TargetAmount,
	})

	u.dispatcher.ServiceAlert(user, "هدف ادخار - "+goal.GoalName, goal.TargetAmount)

	return goal, nil
}

// List returns the caller's savings goals, newest first
func (u *SavingsUseCase) List(ctx context.Context, userID string) ([]*entity.SavingsGoal, error) {
	return u.savingsRepo.ListByUser(ctx, userID)
}

// UpdateAmount replaces a goal's saved amount. No route exercises this yet;
// it backs the contribution tracking flow.
func (u *SavingsUseCase) UpdateAmount(ctx context.Context, id uint64, amount string) (*entity.SavingsGoal, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}
	return u.savingsRepo.UpdateCurrentAmount(ctx, id, amount)
}
