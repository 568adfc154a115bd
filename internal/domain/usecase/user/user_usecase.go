package user

import (
	"context"
	"errors"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/persistence"
	"github.com/flouscash/platform/internal/domain/port/usecase"
)

// referralCodeAttempts bounds collision retries when minting a referral code
const referralCodeAttempts = 5

// UserUseCase handles user profile logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUser returns a user profile by id
func (u *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if id == "" {
		return nil, errs.NewValidationError("id", "must not be empty")
	}
	return u.userRepo.GetByID(ctx, id)
}

// Upsert stores the user built from verified identity claims. Inserts get a
// freshly generated referral code; existing rows keep theirs and have their
// mutable fields overwritten. Returns the stored row and whether it was a
// first-time insert.
func (u *UserUseCase) Upsert(ctx context.Context, claims usecase.IdentityClaims) (*entity.User, bool, error) {
	user, err := entity.NewUser(claims.ID, claims.Email, u.timeProvider)
	if err != nil {
		return nil, false, err
	}

	user.FirstName = claims.FirstName
	user.LastName = claims.LastName
	user.FullName = claims.FullName
	user.Phone = claims.Phone
	user.NationalID = claims.NationalID
	user.Address = claims.Address
	user.Job = claims.Job
	user.ProfileImageURL = claims.ProfileImageURL

	// The generated code only matters on insert; upserts of existing rows
	// keep the stored one.
	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		code, genErr := entity.GenerateReferralCode()
		if genErr != nil {
			return nil, false, genErr
		}
		user.ReferralCode = code

		stored, created, upsertErr := u.userRepo.Upsert(ctx, user)
		if upsertErr == nil {
			if created {
				u.logger.Info("User created", map[string]any{
					"user_id":       stored.ID,
					"referral_code": stored.ReferralCode,
				})
			}
			return stored, created, nil
		}
		if !errors.Is(upsertErr, errs.ErrDuplicateReferralCode) {
			return nil, false, upsertErr
		}

		u.logger.Warn("Referral code collision, regenerating", map[string]any{
			"user_id": user.ID,
			"attempt": attempt + 1,
		})
	}

	return nil, false, errs.ErrDuplicateReferralCode
}
