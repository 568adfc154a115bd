package usecase

import (
	"context"
	"time"

	"github.com/flouscash/platform/internal/domain/entity"
)

// IdentityClaims are the verified fields the external identity provider
// delivers to the login callback. The API never validates credentials itself.
type IdentityClaims struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	FullName        string
	Phone           string
	NationalID      string
	Address         string
	Job             string
	ProfileImageURL string
	ReferralCode    string // referrer's code, when the signup followed an invite link
}

// AuthUseCase covers login-callback upsert, session checks and logout
type AuthUseCase interface {
	// Login upserts the user from verified claims and mints a session.
	// First-time signups trigger registration notifications.
	Login(ctx context.Context, claims IdentityClaims) (*entity.User, *entity.Session, error)
	// Authenticate resolves a session cookie value to its user
	Authenticate(ctx context.Context, sid string) (*entity.User, error)
	// Logout deletes the session
	Logout(ctx context.Context, sid string) error
}

// CreateFundingInput is the validated shape of a funding submission
type CreateFundingInput struct {
	Amount        string
	Purpose       string
	MonthlyIncome string
}

// FundingUseCase covers funding request submission and listing
type FundingUseCase interface {
	// Create persists the request plus its companion contract and fires the
	// service alert. Returns both created records.
	Create(ctx context.Context, userID string, input CreateFundingInput) (*entity.FundingRequest, *entity.Contract, error)
	// List returns the caller's funding requests, newest first
	List(ctx context.Context, userID string) ([]*entity.FundingRequest, error)
}

// CreateSavingsInput is the validated shape of a savings goal submission
type CreateSavingsInput struct {
	GoalName            string
	TargetAmount        string
	MonthlyContribution string
	TargetDate          *time.Time
}

// SavingsUseCase covers savings goal submission and listing
type SavingsUseCase interface {
	// Create persists the goal and fires the service alert. No contract is
	// created for savings goals.
	Create(ctx context.Context, userID string, input CreateSavingsInput) (*entity.SavingsGoal, error)
	// List returns the caller's savings goals, newest first
	List(ctx context.Context, userID string) ([]*entity.SavingsGoal, error)
	// UpdateAmount replaces a goal's saved amount
	UpdateAmount(ctx context.Context, id uint64, amount string) (*entity.SavingsGoal, error)
}

// CreateInvestmentInput is the validated shape of an investment submission
type CreateInvestmentInput struct {
	PlanName         string
	InvestmentAmount string
	ExpectedReturn   string
	Duration         int
}

// InvestmentUseCase covers investment offer submission and listing
type InvestmentUseCase interface {
	// Create persists the offer plus its companion contract and fires the
	// service alert. Returns both created records.
	Create(ctx context.Context, userID string, input CreateInvestmentInput) (*entity.InvestmentOffer, *entity.Contract, error)
	// List returns the caller's investment offers, newest first
	List(ctx context.Context, userID string) ([]*entity.InvestmentOffer, error)
}

// CodeValidation is the outcome of checking a referral code
type CodeValidation struct {
	Valid      bool
	ReferrerID string
}

// ReferralUseCase covers referral listing, stats and code validation
type ReferralUseCase interface {
	// List returns referrals attributed to the caller, newest first
	List(ctx context.Context, userID string) ([]*entity.Referral, error)
	// Stats aggregates the caller's referrals
	Stats(ctx context.Context, userID string) (entity.ReferralStats, error)
	// ValidateCode checks a referral code against existing users
	ValidateCode(ctx context.Context, code string) (CodeValidation, error)
}

// ContractUseCase covers contract listing, signing and document retrieval
type ContractUseCase interface {
	// List returns the caller's contracts, newest first
	List(ctx context.Context, userID string) ([]*entity.Contract, error)
	// Sign renders and stores the signature for a caller-owned contract.
	// Absence and foreign ownership both yield ErrContractNotFound.
	Sign(ctx context.Context, userID string, contractID uint64, signatureData string) (*entity.Contract, error)
	// RenderPDF renders the caller-owned contract document
	RenderPDF(ctx context.Context, userID string, contractID uint64) ([]byte, error)
}

// DashboardUseCase computes the aggregate dashboard view
type DashboardUseCase interface {
	Stats(ctx context.Context, userID string) (*entity.DashboardStats, error)
}

// UserUseCase exposes user profile reads
type UserUseCase interface {
	GetUser(ctx context.Context, id string) (*entity.User, error)
}
