package investment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	coremocks "github.com/flouscash/platform/mocks/port/core"
	notifiermocks "github.com/flouscash/platform/mocks/port/notifier"
	persistencemocks "github.com/flouscash/platform/mocks/port/persistence"
)

func TestCreateInvestmentOffer(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	owner := &entity.User{ID: "user-1", Email: "omar@example.com", FullName: "Omar Said"}

	validInput := usecase.CreateInvestmentInput{
		PlanName:         "Gold Plan",
		InvestmentAmount: "10000.00",
		ExpectedReturn:   "12.50",
		Duration:         30,
	}

	t.Run("Creates offer plus companion contract and fires alert", func(t *testing.T) {
		mockInvestmentRepo := persistencemocks.NewMockInvestmentOfferRepository(t)
		mockContractRepo := persistencemocks.NewMockContractRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockDispatcher := notifiermocks.NewMockDispatcher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime)
		mockUserRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(owner, nil).Once()
		mockInvestmentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.InvestmentOffer")).
			Run(func(ctx context.Context, offer *entity.InvestmentOffer) {
				offer.ID = 21
			}).Return(nil).Once()
		mockContractRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Contract) bool {
			data := c.Data.Data()
			return c.ReferenceID == 21 &&
				c.Type == entity.ContractTypeInvestment &&
				data.Investment != nil &&
				data.Investment.Duration == 30
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		mockDispatcher.EXPECT().ServiceAlert(owner, "استثمار - Gold Plan", "10000.00").Once()

		investmentUseCase := NewInvestmentUseCase(mockInvestmentRepo, mockContractRepo, mockUserRepo, mockDispatcher, mockTime, mockLogger)

		offer, contract, err := investmentUseCase.Create(ctx, "user-1", validInput)
		require.NoError(t, err)
		assert.Equal(t, entity.InvestmentStatusPending, offer.Status)
		assert.Equal(t, uint64(21), contract.ReferenceID)
	})

	t.Run("Omitted duration falls back to the default", func(t *testing.T) {
		mockInvestmentRepo := persistencemocks.NewMockInvestmentOfferRepository(t)
		mockContractRepo := persistencemocks.NewMockContractRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockDispatcher := notifiermocks.NewMockDispatcher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime)
		mockUserRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(owner, nil).Once()
		mockInvestmentRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, offer *entity.InvestmentOffer) {
				offer.ID = 22
			}).Return(nil).Once()
		mockContractRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		mockDispatcher.EXPECT().ServiceAlert(mock.Anything, mock.Anything, mock.Anything).Once()

		investmentUseCase := NewInvestmentUseCase(mockInvestmentRepo, mockContractRepo, mockUserRepo, mockDispatcher, mockTime, mockLogger)

		input := validInput
		input.Duration = 0
		offer, _, err := investmentUseCase.Create(ctx, "user-1", input)
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultInvestmentDuration, offer.Duration)
	})

	t.Run("Invalid expected return fails before any write", func(t *testing.T) {
		mockInvestmentRepo := persistencemocks.NewMockInvestmentOfferRepository(t)
		mockContractRepo := persistencemocks.NewMockContractRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockDispatcher := notifiermocks.NewMockDispatcher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		investmentUseCase := NewInvestmentUseCase(mockInvestmentRepo, mockContractRepo, mockUserRepo, mockDispatcher, mockTime, mockLogger)

		input := validInput
		input.ExpectedReturn = "lots"
		_, _, err := investmentUseCase.Create(ctx, "user-1", input)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
