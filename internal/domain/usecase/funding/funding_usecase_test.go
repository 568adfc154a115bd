package funding

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

func TestCreateFundingRequest(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	validInput := usecase.CreateFundingInput{
		Amount:        "5000.00",
		Purpose:       "home renovation",
		MonthlyIncome: "12000.00",
	}

	owner := &entity.User{ID: "user-1", Email: "ahmed@example.com", FullName: "Ahmed Hassan"}

	t.Run("Creates request plus companion contract and fires alert", func(t *testing.T) {
		mockFundingRepo := persistencemocks.NewMockFundingRequestRepository(t)
		mockContractRepo := persistencemocks.NewMockContractRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockDispatcher := notifiermocks.NewMockDispatcher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime)
		mockUserRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(owner, nil).Once()
		mockFundingRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.FundingRequest")).
			Run(func(ctx context.Context, request *entity.FundingRequest) {
				request.ID = 11
			}).Return(nil).Once()
		mockContractRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Contract) bool {
			data := c.Data.Data()
			return c.ReferenceID == 11 &&
				c.Type == entity.ContractTypeFunding &&
				data.UserName == "Ahmed Hassan" &&
				data.Funding != nil &&
				data.Funding.Amount == "5000.00"
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()
		mockDispatcher.EXPECT().ServiceAlert(owner, "طلب تمويل", "5000.00").Once()

		fundingUseCase := NewFundingUseCase(mockFundingRepo, mockContractRepo, mockUserRepo, mockDispatcher, mockTime, mockLogger)

		request, contract, err := fundingUseCase.Create(ctx, "user-1", validInput)
		require.NoError(t, err)
		assert.Equal(t, entity.FundingStatusPending, request.Status)
		assert.Equal(t, uint64(11), request.ID)
		assert.Equal(t, uint64(11), contract.ReferenceID)
		assert.Equal(t, entity.ContractStatusDraft, contract.Status)
	})

	t.Run("Invalid amount fails before any write", func(t *testing.T) {
		mockFundingRepo := persistencemocks.NewMockFundingRequestRepository(t)
		mockContractRepo := persistencemocks.NewMockContractRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockDispatcher := notifiermocks.NewMockDispatcher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		fundingUseCase := NewFundingUseCase(mockFundingRepo, mockContractRepo, mockUserRepo, mockDispatcher, mockTime, mockLogger)

		input := validInput
		input.Amount = "not-a-number"
		_, _, err := fundingUseCase.Create(ctx, "user-1", input)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Missing purpose fails validation", func(t *testing.T) {
		mockFundingRepo := persistencemocks.NewMockFundingRequestRepository(t)
		mockContractRepo := persistencemocks.NewMockContractRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockDispatcher := notifiermocks.NewMockDispatcher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		fundingUseCase := NewFundingUseCase(mockFundingRepo, mockContractRepo, mockUserRepo, mockDispatcher, mockTime, mockLogger)

		input := validInput
		input.Purpose = "   "
		_, _, err := fundingUseCase.Create(ctx, "user-1", input)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Unknown user aborts the submission", func(t *testing.T) {
		mockFundingRepo := persistencemocks.NewMockFundingRequestRepository(t)
		mockContractRepo := persistencemocks.NewMockContractRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockDispatcher := notifiermocks.NewMockDispatcher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime)
		mockUserRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		fundingUseCase := NewFundingUseCase(mockFundingRepo, mockContractRepo, mockUserRepo, mockDispatcher, mockTime, mockLogger)

		_, _, err := fundingUseCase.Create(ctx, "ghost", validInput)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Request write failure surfaces and skips the contract", func(t *testing.T) {
		mockFundingRepo := persistencemocks.NewMockFundingRequestRepository(t)
		mockContractRepo := persistencemocks.NewMockContractRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockDispatcher := notifiermocks.NewMockDispatcher(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime)
		mockUserRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(owner, nil).Once()
		mockFundingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		fundingUseCase := NewFundingUseCase(mockFundingRepo, mockContractRepo, mockUserRepo, mockDispatcher, mockTime, mockLogger)

		_, _, err := fundingUseCase.Create(ctx, "user-1", validInput)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestListFundingRequests(t *testing.T) {
	ctx := context.Background()

	mockFundingRepo := persistencemocks.NewMockFundingRequestRepository(t)
	mockContractRepo := persistencemocks.NewMockContractRepository(t)
	mockUserRepo := persistencemocks.NewMockUserRepository(t)
	mockDispatcher := notifiermocks.NewMockDispatcher(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	expected := []*entity.FundingRequest{{ID: 2}, {ID: 1}}
	mockFundingRepo.EXPECT().ListByUser(mock.Anything, "user-1").Return(expected, nil).Once()

	fundingUseCase := NewFundingUseCase(mockFundingRepo, mockContractRepo, mockUserRepo, mockDispatcher, mockTime, mockLogger)

	requests, err := fundingUseCase.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}
