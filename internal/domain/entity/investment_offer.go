package entity

import (
	"strings"
	"time"

	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
)

// InvestmentStatus represents the lifecycle state of an investment offer
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "pending"
	InvestmentStatusActive    InvestmentStatus = "active"
	InvestmentStatusCompleted InvestmentStatus = "completed"
	InvestmentStatusCancelled InvestmentStatus = "cancelled"
)

// IsValid checks whether the status is one of the allowed values
func (s InvestmentStatus) IsValid() bool {
	switch s {
	case InvestmentStatusPending, InvestmentStatusActive,
		InvestmentStatusCompleted, InvestmentStatusCancelled:
		return true
	}
	return false
}

// DefaultInvestmentDuration is the plan duration, in days, applied when the
// submission omits one.
const DefaultInvestmentDuration = 10

// InvestmentOffer is a user's subscription to an investment plan
type InvestmentOffer struct {
	ID               uint64           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           string           `json:"userId" gorm:"index;not null"`
	PlanName         string           `json:"planName" gorm:"not null"`
	InvestmentAmount string           `json:"investmentAmount" gorm:"type:decimal(10,2);not null"`
	ExpectedReturn   string           `json:"expectedReturn" gorm:"type:decimal(5,2);not null"`
	Duration         int              `json:"duration" gorm:"not null;default:10"`
	Status           InvestmentStatus `json:"status" gorm:"default:pending"`
	ContractURL      string           `json:"contractUrl"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// TableName specifies the table name for InvestmentOffer
func (InvestmentOffer) TableName() string {
	return "investment_offers"
}

// NewInvestmentOffer validates the submitted fields and builds a pending offer.
// A non-positive duration falls back to DefaultInvestmentDuration.
func NewInvestmentOffer(userID, planName, investmentAmount, expectedReturn string, duration int, timeProvider coreport.TimeProvider) (*InvestmentOffer, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.NewValidationError("userId", "must not be empty")
	}
	if strings.TrimSpace(planName) == "" {
		return nil, errs.NewValidationError("planName", "must not be empty")
	}
	if err := ValidateAmount(investmentAmount); err != nil {
		return nil, err
	}
	if err := ValidateAmount(expectedReturn); err != nil {
		return nil, err
	}
	if duration <= 0 {
		duration = DefaultInvestmentDuration
	}

	now := timeProvider.Now()
	return &InvestmentOffer{
		UserID:           userID,
		PlanName:         planName,
		InvestmentAmount: investmentAmount,
		ExpectedReturn:   expectedReturn,
		Duration:         duration,
		Status:           InvestmentStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// SetStatus applies an administrative status change
func (o *InvestmentOffer) SetStatus(status InvestmentStatus, contractURL string, timeProvider coreport.TimeProvider) error {
	if !status.IsValid() {
		return errs.NewValidationError("status", "must be pending, active, completed or cancelled")
	}
	o.Status = status
	if contractURL != "" {
		o.ContractURL = contractURL
	}
	o.UpdatedAt = timeProvider.Now()
	return nil
}
