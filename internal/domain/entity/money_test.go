package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	errs "github.com/flouscash/platform/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100.00", "100"},
			{"0.01", "0.01"},
			{"1", "1"},
			{"1.5", "1.5"},
			{"  250.75  ", "250.75"},
			{"0", "0"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				d, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.True(t, d.Equal(decimal.RequireFromString(tc.expected)))
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"100", "100.00"},
		{"0.1", "0.10"},
		{"1234.567", "1234.57"},
		{"0", "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d := decimal.RequireFromString(tc.input)
			assert.Equal(t, tc.expected, FormatAmount(d))
		})
	}
}

func TestSumAmounts(t *testing.T) {
	t.Run("Sums decimal strings with two-decimal output", func(t *testing.T) {
		assert.Equal(t, "601.00", SumAmounts([]string{"100.50", "200.50", "300"}))
	})

	t.Run("Empty list yields 0.00", func(t *testing.T) {
		assert.Equal(t, "0.00", SumAmounts(nil))
		assert.Equal(t, "0.00", SumAmounts([]string{}))
	})

	t.Run("Skips unparseable entries", func(t *testing.T) {
		assert.Equal(t, "150.00", SumAmounts([]string{"100", "garbage", "50", ""}))
	})

	t.Run("Tolerates surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "30.00", SumAmounts([]string{" 10 ", "20"}))
	})
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("42.00"))
	assert.ErrorIs(t, ValidateAmount("-42.00"), errs.ErrNegativeAmount)
	assert.ErrorIs(t, ValidateAmount("nope"), errs.ErrInvalidAmount)
}
