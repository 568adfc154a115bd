package entity

import (
	"strings"
	"time"

	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
)

// FundingStatus represents the lifecycle state of a funding request
type FundingStatus string

const (
	FundingStatusPending  FundingStatus = "pending"
	FundingStatusApproved FundingStatus = "approved"
	FundingStatusRejected FundingStatus = "rejected"
)

// IsValid checks whether the status is one of the allowed values
func (s FundingStatus) IsValid() bool {
	switch s {
	case FundingStatusPending, FundingStatusApproved, FundingStatusRejected:
		return true
	}
	return false
}

// FundingRequest is a user's application for financing. Status is only
// mutated through an administrative update path; requests are never deleted.
type FundingRequest struct {
	ID            uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        string        `json:"userId" gorm:"index;not null"`
	Amount        string        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Purpose       string        `json:"purpose" gorm:"type:text;not null"`
	MonthlyIncome string        `json:"monthlyIncome" gorm:"type:decimal(10,2);not null"`
	Status        FundingStatus `json:"status" gorm:"default:pending"`
	ContractURL   string        `json:"contractUrl"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// TableName specifies the table name for FundingRequest
func (FundingRequest) TableName() string {
	return "funding_requests"
}

// NewFundingRequest validates the submitted fields and builds a pending request
func NewFundingRequest(userID, amount, purpose, monthlyIncome string, timeProvider coreport.TimeProvider) (*FundingRequest, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.NewValidationError("userId", "must not be empty")
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(purpose) == "" {
		return nil, errs.NewValidationError("purpose", "must not be empty")
	}
	if err := ValidateAmount(monthlyIncome); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &FundingRequest{
		UserID:        userID,
		Amount:        amount,
		Purpose:       purpose,
		MonthlyIncome: monthlyIncome,
		Status:        FundingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SetStatus applies an administrative status change
func (r *FundingRequest) SetStatus(status FundingStatus, contractURL string, timeProvider coreport.TimeProvider) error {
	if !status.IsValid() {
		return errs.NewValidationError("status", "must be pending, approved or rejected")
	}
	r.Status = status
	if contractURL != "" {
		r.ContractURL = contractURL
	}
	r.UpdatedAt = timeProvider.Now()
	return nil
}
