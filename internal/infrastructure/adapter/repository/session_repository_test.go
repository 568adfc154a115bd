package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	"github.com/flouscash/platform/internal/infrastructure/adapter/database"
)

func seedSession(t *testing.T, repo *SessionRepository, sid, userID string, expiresAt time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entity.Session{
		SID:       sid,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: testNow,
	}))
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, timeProv, logger := newRepoDeps(t)
	repo := NewSessionRepository(db, timeProv, logger)
	database.SeedTestUser(t, db, "user-1", "ahmed@example.com", "AB12CD")

	seedSession(t, repo, "sid-1", "user-1", testNow.Add(time.Hour))

	t.Run("Stored session comes back intact", func(t *testing.T) {
		session, err := repo.GetBySID(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", session.UserID)
		assert.True(t, session.ExpiresAt.Equal(testNow.Add(time.Hour)))
	})

	t.Run("Unknown sid maps to the domain error", func(t *testing.T) {
		_, err := repo.GetBySID(ctx, "sid-unknown")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestSessionRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	db, timeProv, logger := newRepoDeps(t)
	repo := NewSessionRepository(db, timeProv, logger)
	database.SeedTestUser(t, db, "user-1", "ahmed@example.com", "AB12CD")

	seedSession(t, repo, "sid-1", "user-1", testNow.Add(time.Hour))

	t.Run("Deleting an existing session removes it", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "sid-1"))

		_, err := repo.GetBySID(ctx, "sid-1")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("Deleting twice reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, "sid-1")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestSessionRepositoryDeleteExpired(t *testing.T) {
	ctx := context.Background()
	db, timeProv, logger := newRepoDeps(t)
	repo := NewSessionRepository(db, timeProv, logger)
	database.SeedTestUser(t, db, "user-1", "ahmed@example.com", "AB12CD")

	seedSession(t, repo, "sid-live", "user-1", testNow.Add(time.Hour))
	seedSession(t, repo, "sid-dead-1", "user-1", testNow.Add(-time.Hour))
	seedSession(t, repo, "sid-dead-2", "user-1", testNow.Add(-time.Minute))
	// Expiring exactly now counts as expired
	seedSession(t, repo, "sid-boundary", "user-1", testNow)

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)

	_, err = repo.GetBySID(ctx, "sid-live")
	assert.NoError(t, err)
	_, err = repo.GetBySID(ctx, "sid-dead-1")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)
}
