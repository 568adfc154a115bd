package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	"github.com/flouscash/platform/internal/infrastructure/adapter/database"
)

func fundingSnapshot() entity.ContractData {
	return entity.ContractData{
		Type:      entity.ContractTypeFunding,
		UserName:  "Ahmed Hassan",
		UserEmail: "ahmed@example.com",
		Date:      "2025-03-10",
		Funding: &entity.FundingTerms{
			Amount:        "5000.00",
			Purpose:       "Home renovation",
			MonthlyIncome: "12000.00",
		},
	}
}

func seedContract(t *testing.T, repo *ContractRepository, userID string, referenceID uint64, createdAt time.Time) *entity.Contract {
	t.Helper()
	contract := &entity.Contract{
		UserID:      userID,
		Type:        entity.ContractTypeFunding,
		ReferenceID: referenceID,
		Data:        datatypes.NewJSONType(fundingSnapshot()),
		Status:      entity.ContractStatusDraft,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), contract))
	return contract
}

func TestContractRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	db, timeProv, logger := newRepoDeps(t)
	repo := NewContractRepository(db, timeProv, logger)
	database.SeedTestUser(t, db, "user-1", "ahmed@example.com", "AB12CD")

	contract := seedContract(t, repo, "user-1", 11, testNow)
	assert.NotZero(t, contract.ID)

	stored, err := repo.GetByID(ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ContractStatusDraft, stored.Status)
	assert.Equal(t, uint64(11), stored.ReferenceID)

	// The snapshot survives the JSON column round trip
	data := stored.Data.Data()
	require.NotNil(t, data.Funding)
	assert.Equal(t, "5000.00", data.Funding.Amount)
	assert.Equal(t, "Home renovation", data.Funding.Purpose)
}

func TestContractRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	db, timeProv, logger := newRepoDeps(t)
	repo := NewContractRepository(db, timeProv, logger)

	_, err := repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, errs.ErrContractNotFound)
}

func TestContractRepositoryListByUser(t *testing.T) {
	ctx := context.Background()
	db, timeProv, logger := newRepoDeps(t)
	repo := NewContractRepository(db, timeProv, logger)
	database.SeedTestUser(t, db, "user-1", "ahmed@example.com", "AB12CD")
	database.SeedTestUser(t, db, "user-2", "sara@example.com", "XY99ZZ")

	oldest := seedContract(t, repo, "user-1", 1, testNow.Add(-2*time.Hour))
	newest := seedContract(t, repo, "user-1", 2, testNow)
	seedContract(t, repo, "user-2", 3, testNow.Add(-time.Hour))

	contracts, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, contracts, 2)
	assert.Equal(t, newest.ID, contracts[0].ID)
	assert.Equal(t, oldest.ID, contracts[1].ID)
}

func TestContractRepositoryUpdateSignature(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the signature and flips the status", func(t *testing.T) {
		db, timeProv, logger := newRepoDeps(t)
		repo := NewContractRepository(db, timeProv, logger)
		database.SeedTestUser(t, db, "user-1", "ahmed@example.com", "AB12CD")
		contract := seedContract(t, repo, "user-1", 11, testNow.Add(-time.Hour))

		updated, err := repo.UpdateSignature(ctx, contract.ID, "Ahmed Hassan", "/api/contracts/1/pdf")
		require.NoError(t, err)
		assert.Equal(t, entity.ContractStatusSigned, updated.Status)
		assert.Equal(t, "Ahmed Hassan", updated.SignatureData)
		assert.Equal(t, "/api/contracts/1/pdf", updated.PDFURL)

		stored, err := repo.GetByID(ctx, contract.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ContractStatusSigned, stored.Status)
		assert.Equal(t, "Ahmed Hassan", stored.SignatureData)
	})

	t.Run("Unknown contract maps to the domain error", func(t *testing.T) {
		db, timeProv, logger := newRepoDeps(t)
		repo := NewContractRepository(db, timeProv, logger)

		_, err := repo.UpdateSignature(ctx, 404, "Ahmed Hassan", "/api/contracts/404/pdf")
		assert.ErrorIs(t, err, errs.ErrContractNotFound)
	})
}
