package contract

import (
	"context"
	"fmt"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/document"
	"github.com/flouscash/platform/internal/domain/port/notifier"
	"github.com/flouscash/platform/internal/domain/port/persistence"
)

// ContractUseCase handles contract listing, signing and document retrieval
type ContractUseCase struct {
	contractRepo persistence.ContractRepository
	userRepo     persistence.UserRepository
	renderer     document.Renderer
	dispatcher   notifier.Dispatcher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewContractUseCase creates a new ContractUseCase
func NewContractUseCase(
	contractRepo persistence.ContractRepository,
	userRepo persistence.UserRepository,
	renderer document.Renderer,
	dispatcher notifier.Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ContractUseCase {
	return &ContractUseCase{
		contractRepo: contractRepo,
		userRepo:     userRepo,
		renderer:     renderer,
		dispatcher:   dispatcher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns the caller's contracts, newest first
func (u *ContractUseCase) List(ctx context.Context, userID string) ([]*entity.Contract, error) {
	return u.contractRepo.ListByUser(ctx, userID)
}

// getOwned loads a contract and verifies ownership. A contract that does not
// exist and one owned by someone else yield the same not-found error, so the
// two cases are indistinguishable to callers.
func (u *ContractUseCase) getOwned(ctx context.Context, userID string, contractID uint64) (*entity.Contract, error) {
	contract, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrContractNotFound
		}
		return nil, err
	}
	if contract.UserID != userID {
		return nil, errs.ErrContractNotFound
	}
	return contract, nil
}

// Sign renders the document with the supplied signature, persists the
// signature plus document pointer, and emails the rendered contract to its
// owner. Email delivery is detached and best-effort; the contract counts as
// signed regardless. Signing again overwrites the stored signature without
// creating another contract row.
func (u *ContractUseCase) Sign(ctx context.Context, userID string, contractID uint64, signatureData string) (*entity.Contract, error) {
	if signatureData == "" {
		return nil, errs.NewValidationError("signatureData", "must not be empty")
	}

	contract, err := u.getOwned(ctx, userID, contractID)
	if err != nil {
		return nil, err
	}

	pdf, err := u.renderer.Render(contract, signatureData)
	if err != nil {
		return nil, fmt.Errorf("%w: rendering contract %d: %s", errs.ErrInternalServer, contractID, err.Error())
	}

	pdfURL := fmt.Sprintf("/api/contracts/%d/pdf", contractID)
	updated, err := u.contractRepo.UpdateSignature(ctx, contractID, signatureData, pdfURL)
	if err != nil {
		return nil, err
	}

	u.logger.Info("Contract signed", map[string]any{
		"user_id":     userID,
		"contract_id": contractID,
		"number":      updated.Number(),
	})

	if owner, userErr := u.userRepo.GetByID(ctx, userID); userErr == nil {
		u.dispatcher.SignedContractEmail(owner, updated, pdf)
	} else {
		u.logger.Warn("Skipping signed-contract email, owner lookup failed", map[string]any{
			"user_id":     userID,
			"contract_id": contractID,
			"error":       userErr.Error(),
		})
	}

	return updated, nil
}

// RenderPDF renders the caller-owned contract document, including the stored
// signature when the contract has been signed.
func (u *ContractUseCase) RenderPDF(ctx context.Context, userID string, contractID uint64) ([]byte, error) {
	contract, err := u.getOwned(ctx, userID, contractID)
	if err != nil {
		return nil, err
	}

	pdf, err := u.renderer.Render(contract, contract.SignatureData)
	if err != nil {
		return nil, fmt.Errorf("%w: rendering contract %d: %s", errs.ErrInternalServer, contractID, err.Error())
	}
	return pdf, nil
}
