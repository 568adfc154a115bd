package persistence

import (
	"context"

	"github.com/flouscash/platform/internal/domain/entity"
)

// ReferralRepository defines storage operations for referrals
type ReferralRepository interface {
	// Create persists a new referral and fills its generated id
	Create(ctx context.Context, referral *entity.Referral) error
	// ListByReferrer returns referrals attributed to the user, newest first
	ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error)
}
