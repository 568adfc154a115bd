package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
)

// Session is a server-side login session referenced by the session cookie
type Session struct {
	SID       string    `json:"sid" gorm:"primaryKey;column:sid"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// NewSession mints a session for the given user with the configured lifetime
func NewSession(userID string, ttl time.Duration, timeProvider coreport.TimeProvider) (*Session, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.NewValidationError("userId", "must not be empty")
	}
	if ttl <= 0 {
		return nil, errs.NewValidationError("ttl", "must be positive")
	}

	now := timeProvider.Now()
	return &Session{
		SID:       uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

// Expired reports whether the session is past its expiry at the given instant
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
