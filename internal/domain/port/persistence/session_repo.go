package persistence

import (
	"context"

	"github.com/flouscash/platform/internal/domain/entity"
)

// SessionRepository defines storage operations for login sessions
type SessionRepository interface {
	// Create persists a new session
	Create(ctx context.Context, session *entity.Session) error
	// GetBySID retrieves a session by its identifier
	GetBySID(ctx context.Context, sid string) (*entity.Session, error)
	// Delete removes a session
	Delete(ctx context.Context, sid string) error
	// DeleteExpired removes sessions past their expiry, returning the count
	DeleteExpired(ctx context.Context) (int64, error)
}
