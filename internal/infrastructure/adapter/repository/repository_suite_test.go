package repository

import (
	"testing"
	"time"

	"gorm.io/gorm"

	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/infrastructure/adapter/database"
	"github.com/flouscash/platform/internal/infrastructure/adapter/logger"
	coremocks "github.com/flouscash/platform/mocks/port/core"
)

// testNow is the fixed instant repository tests run at
var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// newRepoDeps wires an isolated in-memory database with quiet ambient
// dependencies for the repositories under test.
func newRepoDeps(t *testing.T) (*gorm.DB, *coremocks.MockTimeProvider, coreport.Logger) {
	t.Helper()

	db := database.NewTestDB(t)

	timeProv := coremocks.NewMockTimeProvider(t)
	timeProv.EXPECT().Now().Return(testNow).Maybe()

	return db, timeProv, logger.NewNoopLogger()
}
