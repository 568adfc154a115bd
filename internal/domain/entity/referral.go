package entity

import (
	"strings"
	"time"

	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
)

// ReferralStatus represents the payout state of a referral reward
type ReferralStatus string

const (
	ReferralStatusPending ReferralStatus = "pending"
	ReferralStatusPaid    ReferralStatus = "paid"
)

// DefaultReferralReward is the flat reward credited per attributed signup
const DefaultReferralReward = "100.00"

// Referral links a referrer to a referred user with a flat reward
type Referral struct {
	ID             uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	ReferrerID     string         `json:"referrerId" gorm:"index;not null"`
	ReferredUserID string         `json:"referredUserId" gorm:"not null"`
	Reward         string         `json:"reward" gorm:"type:decimal(10,2);default:100.00"`
	Status         ReferralStatus `json:"status" gorm:"default:pending"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// TableName specifies the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}

// NewReferral creates a pending referral with the default reward
func NewReferral(referrerID, referredUserID string, timeProvider coreport.TimeProvider) (*Referral, error) {
	if strings.TrimSpace(referrerID) == "" {
		return nil, errs.NewValidationError("referrerId", "must not be empty")
	}
	if strings.TrimSpace(referredUserID) == "" {
		return nil, errs.NewValidationError("referredUserId", "must not be empty")
	}
	if referrerID == referredUserID {
		return nil, errs.NewValidationError("referredUserId", "users cannot refer themselves")
	}

	return &Referral{
		ReferrerID:     referrerID,
		ReferredUserID: referredUserID,
		Reward:         DefaultReferralReward,
		Status:         ReferralStatusPending,
		CreatedAt:      timeProvider.Now(),
	}, nil
}

// ReferralStats aggregates a referrer's attributed signups
type ReferralStats struct {
	Count         int    `json:"count"`
	TotalEarnings string `json:"totalEarnings"`
}

// ComputeReferralStats reduces a referrer's rows into count and earnings.
// Zero referrals yield {0, "0.00"}.
func ComputeReferralStats(referrals []*Referral) ReferralStats {
	rewards := make([]string, 0, len(referrals))
	for _, r := range referrals {
		rewards = append(rewards, r.Reward)
	}
	return ReferralStats{
		Count:         len(referrals),
		TotalEarnings: SumAmounts(rewards),
	}
}
