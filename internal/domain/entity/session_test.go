package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/flouscash/platform/internal/domain/error"
	coremocks "github.com/flouscash/platform/mocks/port/core"
)

func TestNewSession(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Mints a session with the configured lifetime", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		session, err := NewSession("user-1", 7*24*time.Hour, mockTime)
		require.NoError(t, err)
		assert.NotEmpty(t, session.SID)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, fixedTime.Add(7*24*time.Hour), session.ExpiresAt)
		assert.Equal(t, fixedTime, session.CreatedAt)
	})

	t.Run("Each session gets a distinct identifier", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		a, err := NewSession("user-1", time.Hour, mockTime)
		require.NoError(t, err)
		b, err := NewSession("user-1", time.Hour, mockTime)
		require.NoError(t, err)
		assert.NotEqual(t, a.SID, b.SID)
	})

	t.Run("Rejects blank user and non-positive lifetime", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewSession("  ", time.Hour, mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewSession("user-1", 0, mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestSessionExpired(t *testing.T) {
	expiry := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	session := &Session{ExpiresAt: expiry}

	assert.False(t, session.Expired(expiry.Add(-time.Second)))
	assert.True(t, session.Expired(expiry), "expiry instant itself counts as expired")
	assert.True(t, session.Expired(expiry.Add(time.Second)))
}
