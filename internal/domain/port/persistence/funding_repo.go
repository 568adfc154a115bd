package persistence

import (
	"context"

	"github.com/flouscash/platform/internal/domain/entity"
)

// FundingRequestRepository defines storage operations for funding requests
type FundingRequestRepository interface {
	// Create persists a new funding request and fills its generated id
	Create(ctx context.Context, request *entity.FundingRequest) error
	// ListByUser returns the user's funding requests, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.FundingRequest, error)
	// GetByID retrieves a funding request by id
	GetByID(ctx context.Context, id uint64) (*entity.FundingRequest, error)
	// UpdateStatus applies an administrative status change
	UpdateStatus(ctx context.Context, id uint64, status entity.FundingStatus, contractURL string) (*entity.FundingRequest, error)
}
