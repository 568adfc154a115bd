package persistence

import (
	"context"

	"github.com/flouscash/platform/internal/domain/entity"
)

// InvestmentOfferRepository defines storage operations for investment offers
type InvestmentOfferRepository interface {
	// Create persists a new investment offer and fills its generated id
	Create(ctx context.Context, offer *entity.InvestmentOffer) error
	// ListByUser returns the user's investment offers, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.InvestmentOffer, error)
	// GetByID retrieves an investment offer by id
	GetByID(ctx context.Context, id uint64) (*entity.InvestmentOffer, error)
	// UpdateStatus applies an administrative status change
	UpdateStatus(ctx context.Context, id uint64, status entity.InvestmentStatus, contractURL string) (*entity.InvestmentOffer, error)
}
