package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	"github.com/flouscash/platform/internal/infrastructure/adapter/database"
)

func seedFundingRequest(t *testing.T, repo *FundingRequestRepository, userID string, createdAt time.Time) *entity.FundingRequest {
	t.Helper()
	request := &entity.FundingRequest{
		UserID:        userID,
		Amount:        "5000.00",
		Purpose:       "Home renovation",
		MonthlyIncome: "12000.00",
		Status:        entity.FundingStatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), request))
	return request
}

func TestFundingRequestRepositoryCreateAndList(t *testing.T) {
	ctx := context.Background()
	db, timeProv, logger := newRepoDeps(t)
	repo := NewFundingRequestRepository(db, timeProv, logger)
	database.SeedTestUser(t, db, "user-1", "ahmed@example.com", "AB12CD")
	database.SeedTestUser(t, db, "user-2", "sara@example.com", "XY99ZZ")

	oldest := seedFundingRequest(t, repo, "user-1", testNow.Add(-2*time.Hour))
	newest := seedFundingRequest(t, repo, "user-1", testNow)
	seedFundingRequest(t, repo, "user-2", testNow.Add(-time.Hour))

	assert.NotZero(t, newest.ID)

	requests, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, newest.ID, requests[0].ID)
	assert.Equal(t, oldest.ID, requests[1].ID)
	assert.Equal(t, "Home renovation", requests[0].Purpose)
}

func TestFundingRequestRepositoryUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Approval stores the status and contract pointer", func(t *testing.T) {
		db, timeProv, logger := newRepoDeps(t)
		repo := NewFundingRequestRepository(db, timeProv, logger)
		database.SeedTestUser(t, db, "user-1", "ahmed@example.com", "AB12CD")
		request := seedFundingRequest(t, repo, "user-1", testNow.Add(-time.Hour))

		updated, err := repo.UpdateStatus(ctx, request.ID, entity.FundingStatusApproved, "/api/contracts/1/pdf")
		require.NoError(t, err)
		assert.Equal(t, entity.FundingStatusApproved, updated.Status)
		assert.Equal(t, "/api/contracts/1/pdf", updated.ContractURL)

		stored, err := repo.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.FundingStatusApproved, stored.Status)
	})

	t.Run("Rejection without a pointer keeps the stored one", func(t *testing.T) {
		db, timeProv, logger := newRepoDeps(t)
		repo := NewFundingRequestRepository(db, timeProv, logger)
		database.SeedTestUser(t, db, "user-1", "ahmed@example.com", "AB12CD")
		request := seedFundingRequest(t, repo, "user-1", testNow.Add(-time.Hour))
		_, err := repo.UpdateStatus(ctx, request.ID, entity.FundingStatusApproved, "/api/contracts/1/pdf")
		require.NoError(t, err)

		updated, err := repo.UpdateStatus(ctx, request.ID, entity.FundingStatusRejected, "")
		require.NoError(t, err)
		assert.Equal(t, entity.FundingStatusRejected, updated.Status)
		assert.Equal(t, "/api/contracts/1/pdf", updated.ContractURL)
	})

	t.Run("Unknown request maps to the domain error", func(t *testing.T) {
		db, timeProv, logger := newRepoDeps(t)
		repo := NewFundingRequestRepository(db, timeProv, logger)

		_, err := repo.UpdateStatus(ctx, 404, entity.FundingStatusApproved, "")
		assert.ErrorIs(t, err, errs.ErrFundingRequestNotFound)
	})
}
