package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/flouscash/platform/internal/domain/entity"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/persistence"
)

// DashboardUseCase computes the aggregate dashboard view. No caching: every
// call reduces freshly read rows.
type DashboardUseCase struct {
	fundingRepo    persistence.FundingRequestRepository
	savingsRepo    persistence.SavingsGoalRepository
	investmentRepo persistence.InvestmentOfferRepository
	referralRepo   persistence.ReferralRepository
	logger         coreport.Logger
}

// NewDashboardUseCase creates a new DashboardUseCase
func NewDashboardUseCase(
	fundingRepo persistence.FundingRequestRepository,
	savingsRepo persistence.SavingsGoalRepository,
	investmentRepo persistence.InvestmentOfferRepository,
	referralRepo persistence.ReferralRepository,
	logger coreport.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		fundingRepo:    fundingRepo,
		savingsRepo:    savingsRepo,
		investmentRepo: investmentRepo,
		referralRepo:   referralRepo,
		logger:         logger,
	}
}

// Stats fetches the caller's four collections in parallel and reduces them:
// approved funding amounts, all saved amounts, active investment amounts,
// referral count/earnings, and per-goal progress.
func (u *DashboardUseCase) Stats(ctx context.Context, userID string) (*entity.DashboardStats, error) {
	var (
		requests  []*entity.FundingRequest
		goals     []*entity.SavingsGoal
		offers    []*entity.InvestmentOffer
		referrals []*entity.Referral
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = u.fundingRepo.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = u.savingsRepo.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		offers, err = u.investmentRepo.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		referrals, err = u.referralRepo.ListByReferrer(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var funded []string
	for _, r := range requests {
		if r.Status == entity.FundingStatusApproved {
			funded = append(funded, r.Amount)
		}
	}

	saved := make([]string, 0, len(goals))
	progress := make([]entity.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		saved = append(saved, goal.CurrentAmount)
		progress = append(progress, entity.GoalProgress{
			ID:       goal.ID,
			Name:     goal.GoalName,
			Progress: goal.Progress(),
		})
	}

	var invested []string
	for _, o := range offers {
		if o.Status == entity.InvestmentStatusActive {
			invested = append(invested, o.InvestmentAmount)
		}
	}

	referralStats := entity.ComputeReferralStats(referrals)

	return &entity.DashboardStats{
		TotalFunded:      entity.SumAmounts(funded),
		TotalSavings:     entity.SumAmounts(saved),
		TotalInvestments: entity.SumAmounts(invested),
		ReferralCount:    referralStats.Count,
		ReferralEarnings: referralStats.TotalEarnings,
		SavingsProgress:  progress,
	}, nil
}
