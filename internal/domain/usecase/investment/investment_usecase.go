package investment

import (
	"context"
	"time"

	"github.com/flouscash/platform/internal/domain/entity"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/notifier"
	"github.com/flouscash/platform/internal/domain/port/persistence"
	"github.com/flouscash/platform/internal/domain/port/usecase"
)

// InvestmentUseCase handles investment offer submission and listing
type InvestmentUseCase struct {
	investmentRepo persistence.InvestmentOfferRepository
	contractRepo   persistence.ContractRepository
	userRepo       persistence.UserRepository
	dispatcher     notifier.Dispatcher
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewInvestmentUseCase creates a new InvestmentUseCase
func NewInvestmentUseCase(
	investmentRepo persistence.InvestmentOfferRepository,
	contractRepo persistence.ContractRepository,
	userRepo persistence.UserRepository,
	dispatcher notifier.Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *InvestmentUseCase {
	return &InvestmentUseCase{
		investmentRepo: investmentRepo,
		contractRepo:   contractRepo,
		userRepo:       userRepo,
		dispatcher:     dispatcher,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Create validates the submission, persists the offer and its companion
// contract, then fires a detached service alert. Like the funding flow the
// two writes are not transactional.
func (u *InvestmentUseCase) Create(ctx context.Context, userID string, input usecase.CreateInvestmentInput) (*entity.InvestmentOffer, *entity.Contract, error) {
	offer, err := entity.NewInvestmentOffer(userID, input.PlanName, input.InvestmentAmount, input.ExpectedReturn, input.Duration, u.timeProvider)
	if err != nil {
		return nil, nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := u.investmentRepo.Create(ctx, offer); err != nil {
		return nil, nil, err
	}

	data := entity.ContractData{
		Type:      entity.ContractTypeInvestment,
		UserName:  user.DisplayName(),
		UserEmail: user.Email,
		Date:      u.timeProvider.Now().Format(time.RFC3339),
		Investment: &entity.InvestmentTerms{
			PlanName:         offer.PlanName,
			InvestmentAmount: offer.InvestmentAmount,
			ExpectedReturn:   offer.ExpectedReturn,
			Duration:         offer.Duration,
		},
	}

	contract, err := entity.NewContract(userID, offer.ID, data, u.timeProvider)
	if err != nil {
		return nil, nil, err
	}
	if err := u.contractRepo.Create(ctx, contract); err != nil {
		return nil, nil, err
	}

	u.logger.Info("Investment offer created", map[string]any{
		"user_id":     userID,
		"offer_id":    offer.ID,
		"contract_id": contract.ID,
		"amount":      offer.InvestmentAmount,
	})

	u.dispatcher.ServiceAlert(user, "استثمار - "+offer.PlanName, offer.InvestmentAmount)

	return offer, contract, nil
}

// List returns the caller's investment offers, newest first
func (u *InvestmentUseCase) List(ctx context.Context, userID string) ([]*entity.InvestmentOffer, error) {
	return u.investmentRepo.ListByUser(ctx, userID)
}
