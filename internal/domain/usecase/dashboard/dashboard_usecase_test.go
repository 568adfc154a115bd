package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flouscash/platform/internal/domain/entity"
	coremocks "github.com/flouscash/platform/mocks/port/core"
	persistencemocks "github.com/flouscash/platform/mocks/port/persistence"
)

type dashboardFixture struct {
	fundingRepo    *persistencemocks.MockFundingRequestRepository
	savingsRepo    *persistencemocks.MockSavingsGoalRepository
	investmentRepo *persistencemocks.MockInvestmentOfferRepository
	referralRepo   *persistencemocks.MockReferralRepository
	useCase        *DashboardUseCase
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	f := &dashboardFixture{
		fundingRepo:    persistencemocks.NewMockFundingRequestRepository(t),
		savingsRepo:    persistencemocks.NewMockSavingsGoalRepository(t),
		investmentRepo: persistencemocks.NewMockInvestmentOfferRepository(t),
		referralRepo:   persistencemocks.NewMockReferralRepository(t),
	}
	f.useCase = NewDashboardUseCase(f.fundingRepo, f.savingsRepo, f.investmentRepo, f.referralRepo, coremocks.NewMockLogger(t))
	return f
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Reduces every collection with the right filters", func(t *testing.T) {
		f := newDashboardFixture(t)

		f.fundingRepo.EXPECT().ListByUser(mock.Anything, "user-1").Return([]*entity.FundingRequest{
			{ID: 1, Amount: "5000.00", Status: entity.FundingStatusApproved},
			{ID: 2, Amount: "3000.00", Status: entity.FundingStatusPending},
			{ID: 3, Amount: "1500.50", Status: entity.FundingStatusApproved},
		}, nil).Once()
		f.savingsRepo.EXPECT().ListByUser(mock.Anything, "user-1").Return([]*entity.SavingsGoal{
			{ID: 4, GoalName: "New car", TargetAmount: "20000", CurrentAmount: "5000"},
			{ID: 5, GoalName: "Hajj", TargetAmount: "8000", CurrentAmount: "8000"},
		}, nil).Once()
		f.investmentRepo.EXPECT().ListByUser(mock.Anything, "user-1").Return([]*entity.InvestmentOffer{
			{ID: 6, InvestmentAmount: "10000.00", Status: entity.InvestmentStatusActive},
			{ID: 7, InvestmentAmount: "9999.00", Status: entity.InvestmentStatusCompleted},
		}, nil).Once()
		f.referralRepo.EXPECT().ListByReferrer(mock.Anything, "user-1").Return([]*entity.Referral{
			{ID: 8, Reward: "100.00"},
			{ID: 9, Reward: "150.50"},
		}, nil).Once()

		stats, err := f.useCase.Stats(ctx, "user-1")
		require.NoError(t, err)

		assert.Equal(t, "6500.50", stats.TotalFunded)
		assert.Equal(t, "13000.00", stats.TotalSavings)
		assert.Equal(t, "10000.00", stats.TotalInvestments)
		assert.Equal(t, 2, stats.ReferralCount)
		assert.Equal(t, "250.50", stats.ReferralEarnings)

		require.Len(t, stats.SavingsProgress, 2)
		assert.Equal(t, entity.GoalProgress{ID: 4, Name: "New car", Progress: 25}, stats.SavingsProgress[0])
		assert.Equal(t, entity.GoalProgress{ID: 5, Name: "Hajj", Progress: 100}, stats.SavingsProgress[1])
	})

	t.Run("Fresh account yields zeroed totals", func(t *testing.T) {
		f := newDashboardFixture(t)

		f.fundingRepo.EXPECT().ListByUser(mock.Anything, "user-2").Return(nil, nil).Once()
		f.savingsRepo.EXPECT().ListByUser(mock.Anything, "user-2").Return(nil, nil).Once()
		f.investmentRepo.EXPECT().ListByUser(mock.Anything, "user-2").Return(nil, nil).Once()
		f.referralRepo.EXPECT().ListByReferrer(mock.Anything, "user-2").Return(nil, nil).Once()

		stats, err := f.useCase.Stats(ctx, "user-2")
		require.NoError(t, err)

		assert.Equal(t, "0.00", stats.TotalFunded)
		assert.Equal(t, "0.00", stats.TotalSavings)
		assert.Equal(t, "0.00", stats.TotalInvestments)
		assert.Zero(t, stats.ReferralCount)
		assert.Equal(t, "0.00", stats.ReferralEarnings)
		assert.Empty(t, stats.SavingsProgress)
	})

	t.Run("A single failing fetch fails the whole view", func(t *testing.T) {
		f := newDashboardFixture(t)
		dbErr := errors.New("connection reset")

		f.fundingRepo.EXPECT().ListByUser(mock.Anything, "user-1").Return(nil, nil).Maybe()
		f.savingsRepo.EXPECT().ListByUser(mock.Anything, "user-1").Return(nil, dbErr).Once()
		f.investmentRepo.EXPECT().ListByUser(mock.Anything, "user-1").Return(nil, nil).Maybe()
		f.referralRepo.EXPECT().ListByReferrer(mock.Anything, "user-1").Return(nil, nil).Maybe()

		_, err := f.useCase.Stats(ctx, "user-1")
		assert.ErrorIs(t, err, dbErr)
	})
}
