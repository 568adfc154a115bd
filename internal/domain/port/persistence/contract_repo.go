package persistence

import (
	"context"

	"github.com/flouscash/platform/internal/domain/entity"
)

// ContractRepository defines storage operations for contracts
type ContractRepository interface {
	// Create persists a new contract and fills its generated id
	Create(ctx context.Context, contract *entity.Contract) error
	// ListByUser returns the user's contracts, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Contract, error)
	// GetByID retrieves a contract by id
	GetByID(ctx context.Context, id uint64) (*entity.Contract, error)
	// UpdateSignature stores the signature and document pointer and marks the
	// contract signed. The only mutation path after creation.
	UpdateSignature(ctx context.Context, id uint64, signatureData, pdfURL string) (*entity.Contract, error)
}
