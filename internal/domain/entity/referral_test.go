package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/flouscash/platform/internal/domain/error"
	coremocks "github.com/flouscash/platform/mocks/port/core"
)

func TestGenerateReferralCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateReferralCode()
		require.NoError(t, err)
		assert.Len(t, code, ReferralCodeLength)
		for _, r := range code {
			assert.Contains(t, referralCodeCharset, string(r))
		}
		seen[code] = true
	}
	// 50 draws from a 36^6 space colliding down to a handful would mean a
	// broken generator
	assert.Greater(t, len(seen), 40)
}

func TestNewReferral(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates a pending referral with the default reward", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		referral, err := NewReferral("referrer-1", "referred-2", mockTime)
		require.NoError(t, err)
		assert.Equal(t, DefaultReferralReward, referral.Reward)
		assert.Equal(t, ReferralStatusPending, referral.Status)
		assert.Equal(t, fixedTime, referral.CreatedAt)
	})

	t.Run("Rejects self referral", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewReferral("user-1", "user-1", mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Rejects blank participants", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewReferral("", "referred-2", mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewReferral("referrer-1", "  ", mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestComputeReferralStats(t *testing.T) {
	t.Run("No referrals yield zero count and 0.00 earnings", func(t *testing.T) {
		stats := ComputeReferralStats(nil)
		assert.Equal(t, 0, stats.Count)
		assert.Equal(t, "0.00", stats.TotalEarnings)
	})

	t.Run("Sums rewards across rows", func(t *testing.T) {
		stats := ComputeReferralStats([]*Referral{
			{Reward: "100.00"},
			{Reward: "100.00"},
			{Reward: "50.50"},
		})
		assert.Equal(t, 3, stats.Count)
		assert.Equal(t, "250.50", stats.TotalEarnings)
	})
}
