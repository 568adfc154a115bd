package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
)

// SavingsStatus represents the lifecycle state of a savings goal
type SavingsStatus string

const (
	SavingsStatusActive    SavingsStatus = "active"
	SavingsStatusCompleted SavingsStatus = "completed"
	SavingsStatusPaused    SavingsStatus = "paused"
)

// IsValid checks whether the status is one of the allowed values
func (s SavingsStatus) IsValid() bool {
	switch s {
	case SavingsStatusActive, SavingsStatusCompleted, SavingsStatusPaused:
		return true
	}
	return false
}

// SavingsGoal is a user's saving plan. Unlike funding requests and investment
// offers it never gets a companion contract; that asymmetry is intentional.
type SavingsGoal struct {
	ID                  uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID              string        `json:"userId" gorm:"index;not null"`
	GoalName            string        `json:"goalName" gorm:"not null"`
	TargetAmount        string        `json:"targetAmount" gorm:"type:decimal(10,2);not null"`
	CurrentAmount       string        `json:"currentAmount" gorm:"type:decimal(10,2);default:0"`
	MonthlyContribution string        `json:"monthlyContribution" gorm:"type:decimal(10,2);not null"`
	TargetDate          *time.Time    `json:"targetDate"`
	Status              SavingsStatus `json:"status" gorm:"default:active"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// TableName specifies the table name for SavingsGoal
func (SavingsGoal) TableName() string {
	return "savings_goals"
}

// NewSavingsGoal validates the submitted fields and builds an active goal
// with a zero current amount.
func NewSavingsGoal(userID, goalName, targetAmount, monthlyContribution string, targetDate *time.Time, timeProvider coreport.TimeProvider) (*SavingsGoal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.NewValidationError("userId", "must not be empty")
	}
	if strings.TrimSpace(goalName) == "" {
		return nil, errs.NewValidationError("goalName", "must not be empty")
	}
	if err := ValidateAmount(targetAmount); err != nil {
		return nil, err
	}
	if err := ValidateAmount(monthlyContribution); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &SavingsGoal{
		UserID:              userID,
		GoalName:            goalName,
		TargetAmount:        targetAmount,
		CurrentAmount:       "0",
		MonthlyContribution: monthlyContribution,
		TargetDate:          targetDate,
		Status:              SavingsStatusActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// Progress returns the saved percentage (current/target * 100). A zero or
// unparseable target clamps to 0 instead of propagating a division artifact.
func (g *SavingsGoal) Progress() float64 {
	target, err := decimal.NewFromString(strings.TrimSpace(g.TargetAmount))
	if err != nil || target.IsZero() {
		return 0
	}
	current, err := decimal.NewFromString(strings.TrimSpace(g.CurrentAmount))
	if err != nil {
		return 0
	}

	progress, _ := current.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	return progress
}

// SetCurrentAmount replaces the saved amount
func (g *SavingsGoal) SetCurrentAmount(amount string, timeProvider coreport.TimeProvider) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	g.CurrentAmount = amount
	g.UpdatedAt = timeProvider.Now()
	return nil
}
