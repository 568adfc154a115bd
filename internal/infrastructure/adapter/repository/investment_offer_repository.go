package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"gorm.io/gorm"
)

// InvestmentOfferRepository implements the InvestmentOfferRepository interface using GORM
type InvestmentOfferRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewInvestmentOfferRepository creates a new InvestmentOfferRepository instance
func NewInvestmentOfferRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *InvestmentOfferRepository {
	return &InvestmentOfferRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *InvestmentOfferRepository) handleDatabaseError(operation string, err error, id uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"investment_offer_id": id,
		"error":               err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrInvestmentOfferNotFound
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new investment offer and fills its generated id
func (r *InvestmentOfferRepository) Create(ctx context.Context, offer *entity.InvestmentOffer) error {
	if err := r.db.WithContext(ctx).Create(offer).Error; err != nil {
		return r.handleDatabaseError("creating investment offer", err, 0)
	}

	r.logger.Debug("Investment offer created", map[string]any{
		"investment_offer_id": offer.ID,
		"user_id":             offer.UserID,
		"amount":              offer.InvestmentAmount,
		"plan_name":           offer.PlanName,
	})
	return nil
}

// ListByUser returns the user's investment offers, newest first
func (r *InvestmentOfferRepository) ListByUser(ctx context.Context, userID string) ([]*entity.InvestmentOffer, error) {
	var offers []*entity.InvestmentOffer
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&offers)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing investment offers", result.Error, 0)
	}

	return offers, nil
}

// GetByID retrieves an investment offer by id
func (r *InvestmentOfferRepository) GetByID(ctx context.Context, id uint64) (*entity.InvestmentOffer, error) {
	var offer entity.InvestmentOffer
	result := r.db.WithContext(ctx).First(&offer, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting investment offer", result.Error, id)
	}

	return &offer, nil
}

// UpdateStatus applies an administrative status change
func (r *InvestmentOfferRepository) UpdateStatus(ctx context.Context, id uint64, status entity.InvestmentStatus, contractURL string) (*entity.InvestmentOffer, error) {
	var offer entity.InvestmentOffer
	result := r.db.WithContext(ctx).First(&offer, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting investment offer for status update", result.Error, id)
	}

	now := r.timeProvider.Now()
	updates := map[string]any{
		"status":     status,
		"updated_at": now,
	}
	if contractURL != "" {
		updates["contract_url"] = contractURL
	}

	if err := r.db.WithContext(ctx).Model(&offer).Updates(updates).Error; err != nil {
		return nil, r.handleDatabaseError("updating investment offer status", err, id)
	}

	offer.Status = status
	if contractURL != "" {
		offer.ContractURL = contractURL
	}
	offer.UpdatedAt = now

	r.logger.Debug("Investment offer status updated", map[string]any{
		"investment_offer_id": id,
		"status":              status,
	})
	return &offer, nil
}
