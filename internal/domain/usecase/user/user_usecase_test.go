package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	coremocks "github.com/flouscash/platform/mocks/port/core"
	persistencemocks "github.com/flouscash/platform/mocks/port/persistence"
)

type userFixture struct {
	userRepo *persistencemocks.MockUserRepository
	timeProv *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
	useCase  *UserUseCase
}

func newUserFixture(t *testing.T) *userFixture {
	f := &userFixture{
		userRepo: persistencemocks.NewMockUserRepository(t),
		timeProv: coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}
	f.useCase = NewUserUseCase(f.userRepo, f.timeProv, f.logger)
	return f
}

func sampleClaims() usecase.IdentityClaims {
	return usecase.IdentityClaims{
		ID:       "user-1",
		Email:    "ahmed@example.com",
		FullName: "Ahmed Hassan",
		Phone:    "+201001234567",
	}
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored profile", func(t *testing.T) {
		f := newUserFixture(t)
		expected := &entity.User{ID: "user-1", Email: "ahmed@example.com"}
		f.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(expected, nil).Once()

		user, err := f.useCase.GetUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("Empty id is rejected without a lookup", func(t *testing.T) {
		f := newUserFixture(t)
		_, err := f.useCase.GetUser(ctx, "")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestUpsertUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("First-time insert mints a referral code", func(t *testing.T) {
		f := newUserFixture(t)
		f.timeProv.EXPECT().Now().Return(fixedTime)
		f.userRepo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.ID == "user-1" &&
				user.Email == "ahmed@example.com" &&
				user.FullName == "Ahmed Hassan" &&
				len(user.ReferralCode) == 6
		})).RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, bool, error) {
			return user, true, nil
		}).Once()
		f.logger.EXPECT().Info("User created", mock.Anything).Once()

		stored, created, err := f.useCase.Upsert(ctx, sampleClaims())
		require.NoError(t, err)
		assert.True(t, created)
		assert.Len(t, stored.ReferralCode, 6)
		assert.Equal(t, fixedTime, stored.CreatedAt)
	})

	t.Run("Returning user is updated quietly", func(t *testing.T) {
		f := newUserFixture(t)
		f.timeProv.EXPECT().Now().Return(fixedTime)
		stored := &entity.User{ID: "user-1", Email: "ahmed@example.com", ReferralCode: "AB12CD"}
		f.userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(stored, false, nil).Once()

		got, created, err := f.useCase.Upsert(ctx, sampleClaims())
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "AB12CD", got.ReferralCode)
	})

	t.Run("Referral code collision retries with a fresh code", func(t *testing.T) {
		f := newUserFixture(t)
		f.timeProv.EXPECT().Now().Return(fixedTime)
		f.logger.EXPECT().Warn("Referral code collision, regenerating", mock.Anything).Once()

		var codes []string
		f.userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, bool, error) {
			codes = append(codes, user.ReferralCode)
			if len(codes) == 1 {
				return nil, false, errs.ErrDuplicateReferralCode
			}
			return user, true, nil
		}).Twice()
		f.logger.EXPECT().Info("User created", mock.Anything).Once()

		_, created, err := f.useCase.Upsert(ctx, sampleClaims())
		require.NoError(t, err)
		assert.True(t, created)
		require.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1])
	})

	t.Run("Gives up after exhausting collision retries", func(t *testing.T) {
		f := newUserFixture(t)
		f.timeProv.EXPECT().Now().Return(fixedTime)
		f.userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil, false, errs.ErrDuplicateReferralCode).Times(5)
		f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Times(5)

		_, _, err := f.useCase.Upsert(ctx, sampleClaims())
		assert.ErrorIs(t, err, errs.ErrDuplicateReferralCode)
	})

	t.Run("Blank email is rejected before storage", func(t *testing.T) {
		f := newUserFixture(t)
		claims := sampleClaims()
		claims.Email = ""

		_, _, err := f.useCase.Upsert(ctx, claims)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Other storage failures surface unchanged", func(t *testing.T) {
		f := newUserFixture(t)
		f.timeProv.EXPECT().Now().Return(fixedTime)
		dbErr := errors.New("connection reset")
		f.userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil, false, dbErr).Once()

		_, _, err := f.useCase.Upsert(ctx, sampleClaims())
		assert.ErrorIs(t, err, dbErr)
	})
}
