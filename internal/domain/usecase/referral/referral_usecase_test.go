package referral

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coremocks "github.com/flouscash/platform/mocks/port/core"
	persistencemocks "github.com/flouscash/platform/mocks/port/persistence"
)

func TestReferralStats(t *testing.T) {
	ctx := context.Background()

	t.Run("No referrals yield zero count and 0.00 earnings", func(t *testing.T) {
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockReferralRepo.EXPECT().ListByReferrer(mock.Anything, "user-1").Return(nil, nil).Once()

		referralUseCase := NewReferralUseCase(mockReferralRepo, mockUserRepo, mockTime, mockLogger)

		stats, err := referralUseCase.Stats(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Count)
		assert.Equal(t, "0.00", stats.TotalEarnings)
	})

	t.Run("Aggregates rewards", func(t *testing.T) {
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockReferralRepo.EXPECT().ListByReferrer(mock.Anything, "user-1").Return([]*entity.Referral{
			{Reward: "100.00"},
			{Reward: "100.00"},
		}, nil).Once()

		referralUseCase := NewReferralUseCase(mockReferralRepo, mockUserRepo, mockTime, mockLogger)

		stats, err := referralUseCase.Stats(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Count)
		assert.Equal(t, "200.00", stats.TotalEarnings)
	})
}

func TestValidateCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Known code resolves to its owner", func(t *testing.T) {
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByReferralCode(mock.Anything, "AB12CD").
			Return(&entity.User{ID: "referrer-1", ReferralCode: "AB12CD"}, nil).Once()

		referralUseCase := NewReferralUseCase(mockReferralRepo, mockUserRepo, mockTime, mockLogger)

		result, err := referralUseCase.ValidateCode(ctx, "AB12CD")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "referrer-1", result.ReferrerID)
	})

	t.Run("Codes are normalized to uppercase", func(t *testing.T) {
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByReferralCode(mock.Anything, "AB12CD").
			Return(&entity.User{ID: "referrer-1"}, nil).Once()

		referralUseCase := NewReferralUseCase(mockReferralRepo, mockUserRepo, mockTime, mockLogger)

		result, err := referralUseCase.ValidateCode(ctx, "  ab12cd ")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("Unknown code is invalid, not an error", func(t *testing.T) {
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByReferralCode(mock.Anything, "ZZZZZZ").Return(nil, errs.ErrUserNotFound).Once()

		referralUseCase := NewReferralUseCase(mockReferralRepo, mockUserRepo, mockTime, mockLogger)

		result, err := referralUseCase.ValidateCode(ctx, "ZZZZZZ")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Empty(t, result.ReferrerID)
	})

	t.Run("Blank code is invalid without a lookup", func(t *testing.T) {
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		referralUseCase := NewReferralUseCase(mockReferralRepo, mockUserRepo, mockTime, mockLogger)

		result, err := referralUseCase.ValidateCode(ctx, "   ")
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("Storage failures surface", func(t *testing.T) {
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByReferralCode(mock.Anything, "AB12CD").Return(nil, errs.ErrDatabaseConnection).Once()

		referralUseCase := NewReferralUseCase(mockReferralRepo, mockUserRepo, mockTime, mockLogger)

		_, err := referralUseCase.ValidateCode(ctx, "AB12CD")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestAttribute(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Records the referral with the default reward", func(t *testing.T) {
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime)
		mockReferralRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *entity.Referral) bool {
			return r.ReferrerID == "referrer-1" && r.Reward == entity.DefaultReferralReward
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		referralUseCase := NewReferralUseCase(mockReferralRepo, mockUserRepo, mockTime, mockLogger)

		referral, err := referralUseCase.Attribute(ctx, "referrer-1", "referred-2")
		require.NoError(t, err)
		assert.Equal(t, entity.ReferralStatusPending, referral.Status)
	})

	t.Run("Self referral is rejected", func(t *testing.T) {
		mockReferralRepo := persistencemocks.NewMockReferralRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		referralUseCase := NewReferralUseCase(mockReferralRepo, mockUserRepo, mockTime, mockLogger)

		_, err := referralUseCase.Attribute(ctx, "user-1", "user-1")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
