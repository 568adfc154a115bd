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

// ContractRepository implements the ContractRepository interface using GORM
type ContractRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewContractRepository creates a new ContractRepository instance
func NewContractRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ContractRepository {
	return &ContractRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *ContractRepository) handleDatabaseError(operation string, err error, id uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"contract_id": id,
		"error":       err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrContractNotFound
	}

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new contract and fills its generated id
func (r *ContractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	if err := r.db.WithContext(ctx).Create(contract).Error; err != nil {
		return r.handleDatabaseError("creating contract", err, 0)
	}

	r.logger.Debug("Contract created", map[string]any{
		"contract_id":  contract.ID,
		"user_id":      contract.UserID,
		"type":         contract.Type,
		"reference_id": contract.ReferenceID,
	})
	return nil
}

// ListByUser returns the user's contracts, newest first
func (r *ContractRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Contract, error) {
	var contracts []*entity.Contract
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&contracts)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing contracts", result.Error, 0)
	}

	return contracts, nil
}

// GetByID retrieves a contract by id
func (r *ContractRepository) GetByID(ctx context.Context, id uint64) (*entity.Contract, error) {
	var contract entity.Contract
	result := r.db.WithContext(ctx).First(&contract, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting contract", result.Error, id)
	}

	return &contract, nil
}

// UpdateSignature stores the signature and document pointer and marks the
// contract signed
func (r *ContractRepository) UpdateSignature(ctx context.Context, id uint64, signatureData, pdfURL string) (*entity.Contract, error) {
	var contract entity.Contract
	result := r.db.WithContext(ctx).First(&contract, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting contract for signing", result.Error, id)
	}

	now := r.timeProvider.Now()
	updates := map[string]any{
		"signature_data": signatureData,
		"pdf_url":        pdfURL,
		"status":         entity.ContractStatusSigned,
		"updated_at":     now,
	}

	if err := r.db.WithContext(ctx).Model(&contract).Updates(updates).Error; err != nil {
		return nil, r.handleDatabaseError("updating contract signature", err, id)
	}

	contract.SignatureData = signatureData
	contract.PDFURL = pdfURL
	contract.Status = entity.ContractStatusSigned
	contract.UpdatedAt = now

	r.logger.Debug("Contract signed", map[string]any{
		"contract_id": id,
	})
	return &contract, nil
}
