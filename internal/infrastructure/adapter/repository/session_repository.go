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

// SessionRepository implements the SessionRepository interface using GORM
type SessionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SessionRepository {
	return &SessionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *SessionRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrSessionNotFound
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new session
func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return r.handleDatabaseError("creating session", err)
	}

	r.logger.Debug("Session created", map[string]any{
		"user_id":    session.UserID,
		"expires_at": session.ExpiresAt,
	})
	return nil
}

// GetBySID retrieves a session by its identifier
func (r *SessionRepository) GetBySID(ctx context.Context, sid string) (*entity.Session, error) {
	var session entity.Session
	result := r.db.WithContext(ctx).First(&session, "sid = ?", sid)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting session", result.Error)
	}

	return &session, nil
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Session{}, "sid = ?", sid)
	if result.Error != nil {
		return r.handleDatabaseError("deleting session", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.ErrSessionNotFound
	}

	return nil
}

// DeleteExpired removes sessions past their expiry, returning the count
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.timeProvider.Now()).
		Delete(&entity.Session{})

	if result.Error != nil {
		return 0, r.handleDatabaseError("purging expired sessions", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired sessions purged", map[string]any{
			"count": result.RowsAffected,
		})
	}

	return result.RowsAffected, nil
}
