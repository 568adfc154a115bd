package referral

import (
	"context"
	"strings"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/persistence"
	"github.com/flouscash/platform/internal/domain/port/usecase"
)

// ReferralUseCase handles referral listing, stats and code validation
type ReferralUseCase struct {
	referralRepo persistence.ReferralRepository
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewReferralUseCase creates a new ReferralUseCase
func NewReferralUseCase(
	referralRepo persistence.ReferralRepository,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ReferralUseCase {
	return &ReferralUseCase{
		referralRepo: referralRepo,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns referrals attributed to the caller, newest first
func (u *ReferralUseCase) List(ctx context.Context, userID string) ([]*entity.Referral, error) {
	return u.referralRepo.ListByReferrer(ctx, userID)
}

// Stats reduces the caller's referral rows into count and total earnings.
// A user with no referrals gets {0, "0.00"}.
func (u *ReferralUseCase) Stats(ctx context.Context, userID string) (entity.ReferralStats, error) {
	referrals, err := u.referralRepo.ListByReferrer(ctx, userID)
	if err != nil {
		return entity.ReferralStats{}, err
	}
	return entity.ComputeReferralStats(referrals), nil
}

// ValidateCode checks a referral code against existing users. Unknown or
// blank codes are simply invalid, not errors.
func (u *ReferralUseCase) ValidateCode(ctx context.Context, code string) (usecase.CodeValidation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return usecase.CodeValidation{Valid: false}, nil
	}

	referrer, err := u.userRepo.GetByReferralCode(ctx, code)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return usecase.CodeValidation{Valid: false}, nil
		}
		return usecase.CodeValidation{}, err
	}

	return usecase.CodeValidation{Valid: true, ReferrerID: referrer.ID}, nil
}

// Attribute records a referred signup against a referrer. No route invokes
// this yet: attribution from the login callback is an incomplete feature,
// kept here so the write path exists when product wires it up.
func (u *ReferralUseCase) Attribute(ctx context.Context, referrerID, referredUserID string) (*entity.Referral, error) {
	referral, err := entity.NewReferral(referrerID, referredUserID, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := u.referralRepo.Create(ctx, referral); err != nil {
		return nil, err
	}

	u.logger.Info("Referral attributed", map[string]any{
		"referrer_id": referrerID,
		"referred_id": referredUserID,
		"reward":      referral.Reward,
	})
	return referral, nil
}
