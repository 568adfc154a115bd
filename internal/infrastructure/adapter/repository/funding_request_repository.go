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

// FundingRequestRepository implements the FundingRequestRepository interface using GORM
type FundingRequestRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewFundingRequestRepository creates a new FundingRequestRepository instance
func NewFundingRequestRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *FundingRequestRepository {
	return &FundingRequestRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *FundingRequestRepository) handleDatabaseError(operation string, err error, id uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"funding_request_id": id,
		"error":              err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrFundingRequestNotFound
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new funding request and fills its generated id
func (r *FundingRequestRepository) Create(ctx context.Context, request *entity.FundingRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return r.handleDatabaseError("creating funding request", err, 0)
	}

	r.logger.Debug("Funding request created", map[string]any{
		"funding_request_id": request.ID,
		"user_id":            request.UserID,
		"amount":             request.Amount,
	})
	return nil
}

// ListByUser returns the user's funding requests, newest first
func (r *FundingRequestRepository) ListByUser(ctx context.Context, userID string) ([]*entity.FundingRequest, error) {
	var requests []*entity.FundingRequest
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&requests)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing funding requests", result.Error, 0)
	}

	return requests, nil
}

// GetByID retrieves a funding request by id
func (r *FundingRequestRepository) GetByID(ctx context.Context, id uint64) (*entity.FundingRequest, error) {
	var request entity.FundingRequest
	result := r.db.WithContext(ctx).First(&request, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting funding request", result.Error, id)
	}

	return &request, nil
}

// UpdateStatus applies an administrative status change
func (r *FundingRequestRepository) UpdateStatus(ctx context.Context, id uint64, status entity.FundingStatus, contractURL string) (*entity.FundingRequest, error) {
	var request entity.FundingRequest
	result := r.db.WithContext(ctx).First(&request, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting funding request for status update", result.Error, id)
	}

	now := r.timeProvider.Now()
	updates := map[string]any{
		"status":     status,
		"updated_at": now,
	}
	if contractURL != "" {
		updates["contract_url"] = contractURL
	}

	if err := r.db.WithContext(ctx).Model(&request).Updates(updates).Error; err != nil {
		return nil, r.handleDatabaseError("updating funding request status", err, id)
	}

	request.Status = status
	if contractURL != "" {
		request.ContractURL = contractURL
	}
	request.UpdatedAt = now

	r.logger.Debug("Funding request status updated", map[string]any{
		"funding_request_id": id,
		"status":             status,
	})
	return &request, nil
}
