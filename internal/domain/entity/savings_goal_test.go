package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/flouscash/platform/internal/domain/error"
	coremocks "github.com/flouscash/platform/mocks/port/core"
)

func TestNewSavingsGoal(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates an active goal with zero saved amount", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		target := fixedTime.AddDate(1, 0, 0)
		goal, err := NewSavingsGoal("user-1", "New car", "30000.00", "1500.00", &target, mockTime)
		require.NoError(t, err)
		assert.Equal(t, SavingsStatusActive, goal.Status)
		assert.Equal(t, "0", goal.CurrentAmount)
		assert.Equal(t, "30000.00", goal.TargetAmount)
		assert.Equal(t, &target, goal.TargetDate)
	})

	t.Run("Target date is optional", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		goal, err := NewSavingsGoal("user-1", "Emergency fund", "10000.00", "500.00", nil, mockTime)
		require.NoError(t, err)
		assert.Nil(t, goal.TargetDate)
	})

	t.Run("Rejects blank goal name", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewSavingsGoal("user-1", "  ", "10000.00", "500.00", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Rejects invalid amounts", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewSavingsGoal("user-1", "Car", "lots", "500.00", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewSavingsGoal("user-1", "Car", "10000.00", "-500.00", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestSavingsGoalProgress(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		current  string
		expected float64
	}{
		{"Half way", "1000.00", "500.00", 50},
		{"Complete", "1000.00", "1000.00", 100},
		{"Over target keeps going", "1000.00", "1500.00", 150},
		{"Zero target clamps to zero", "0", "500.00", 0},
		{"Unparseable target clamps to zero", "garbage", "500.00", 0},
		{"Unparseable current clamps to zero", "1000.00", "garbage", 0},
		{"Nothing saved", "1000.00", "0", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			goal := &SavingsGoal{TargetAmount: tc.target, CurrentAmount: tc.current}
			assert.InDelta(t, tc.expected, goal.Progress(), 0.001)
		})
	}
}

func TestSavingsGoalSetCurrentAmount(t *testing.T) {
	fixedTime := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

	t.Run("Replaces the saved amount", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		goal := &SavingsGoal{TargetAmount: "1000.00", CurrentAmount: "100.00"}
		require.NoError(t, goal.SetCurrentAmount("250.00", mockTime))
		assert.Equal(t, "250.00", goal.CurrentAmount)
		assert.Equal(t, fixedTime, goal.UpdatedAt)
	})

	t.Run("Rejects negative amounts", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		goal := &SavingsGoal{TargetAmount: "1000.00", CurrentAmount: "100.00"}
		assert.ErrorIs(t, goal.SetCurrentAmount("-5.00", mockTime), errs.ErrNegativeAmount)
		assert.Equal(t, "100.00", goal.CurrentAmount)
	})
}
