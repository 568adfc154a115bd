package database

import (
	"testing"

	"github.com/flouscash/platform/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory SQLite database with the full schema migrated.
// Each call returns an isolated database, so tests can run in parallel.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	// Every pooled connection to ::memory: sees its own database, so the
	// schema only survives if the pool holds a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access underlying database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Session{},
		&entity.FundingRequest{},
		&entity.SavingsGoal{},
		&entity.InvestmentOffer{},
		&entity.Referral{},
		&entity.Contract{},
	); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// SeedTestUser inserts a user row for repository tests
func SeedTestUser(t *testing.T, db *gorm.DB, id, email, referralCode string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           id,
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		FullName:     "Test User",
		ReferralCode: referralCode,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed test user: %v", err)
	}

	return user
}
