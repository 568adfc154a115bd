package funding

import (
	"context"
	"time"

	"github.com/flouscash/platform/internal/domain/entity"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/notifier"
	"github.com/flouscash/platform/internal/domain/port/persistence"
	"github.com/flouscash/platform/internal/domain/port/usecase"
)

// serviceTypeFunding is the Arabic label used in operations alerts
const serviceTypeFunding = "طلب تمويل"

// FundingUseCase handles funding request submission and listing
type FundingUseCase struct {
	fundingRepo  persistence.FundingRequestRepository
	contractRepo persistence.ContractRepository
	userRepo     persistence.UserRepository
	dispatcher   notifier.Dispatcher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewFundingUseCase creates a new FundingUseCase
func NewFundingUseCase(
	fundingRepo persistence.FundingRequestRepository,
	contractRepo persistence.ContractRepository,
	userRepo persistence.UserRepository,
	dispatcher notifier.Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *FundingUseCase {
	return &FundingUseCase{
		fundingRepo:  fundingRepo,
		contractRepo: contractRepo,
		userRepo:     userRepo,
		dispatcher:   dispatcher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create validates the submission, persists the request and its companion
// contract, then fires a detached service alert. The two writes are not
// transactional: a crash in between leaves a request without a contract,
// an accepted inconsistency. Alert failure never affects the result.
func (u *FundingUseCase) Create(ctx context.Context, userID string, input usecase.CreateFundingInput) (*entity.FundingRequest, *entity.Contract, error) {
	request, err := entity.NewFundingRequest(userID, input.Amount, input.Purpose, input.MonthlyIncome, u.timeProvider)
	if err != nil {
		return nil, nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := u.fundingRepo.Create(ctx, request); err != nil {
		return nil, nil, err
	}

	data := entity.ContractData{
		Type:      entity.ContractTypeFunding,
		UserName:  user.DisplayName(),
		UserEmail: user.Email,
		Date:      u.timeProvider.Now().Format(time.RFC3339),
		Funding: &entity.FundingTerms{
			Amount:        request.Amount,
			Purpose:       request.Purpose,
			MonthlyIncome: request.MonthlyIncome,
		},
	}

	contract, err := entity.NewContract(userID, request.ID, data, u.timeProvider)
	if err != nil {
		return nil, nil, err
	}
	if err := u.contractRepo.Create(ctx, contract); err != nil {
		return nil, nil, err
	}

	u.logger.Info("Funding request created", map[string]any{
		"user_id":     userID,
		"request_id":  request.ID,
		"contract_id": contract.ID,
		"amount":      request.Amount,
	})

	u.dispatcher.ServiceAlert(user, serviceTypeFunding, request.Amount)

	return request, contract, nil
}

// List returns the caller's funding requests, newest first
func (u *FundingUseCase) List(ctx context.Context, userID string) ([]*entity.FundingRequest, error) {
	return u.fundingRepo.ListByUser(ctx, userID)
}
