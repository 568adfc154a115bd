package persistence

import (
	"context"

	"github.com/flouscash/platform/internal/domain/entity"
)

// UserRepository defines storage operations for users
type UserRepository interface {
	// GetByID retrieves a user by identity-provider id
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByReferralCode retrieves the user owning the given referral code
	GetByReferralCode(ctx context.Context, code string) (*entity.User, error)
	// Upsert inserts the user or overwrites its mutable fields, bumping the
	// updated timestamp. Returns the stored row and whether it was inserted.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, bool, error)
}
