package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/flouscash/platform/internal/domain/error"
)

// Monetary values travel through the system as decimal strings, exactly as
// they are persisted in decimal(10,2) columns. Arithmetic goes through
// shopspring/decimal; floats never touch money.

// MoneyDecimalPlaces is the scale used for all monetary strings
const MoneyDecimalPlaces = 2

// ParseAmount parses a monetary string into a decimal, rejecting
// empty, malformed and negative values.
func ParseAmount(amount string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, amount)
	}

	if d.IsNegative() {
		return decimal.Zero, errs.ErrNegativeAmount
	}

	return d, nil
}

// ValidateAmount checks that amount is a well-formed, non-negative decimal string
func ValidateAmount(amount string) error {
	_, err := ParseAmount(amount)
	return err
}

// FormatAmount renders a decimal as a fixed two-decimal-place string
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(MoneyDecimalPlaces)
}

// SumAmounts adds a list of decimal strings and returns a two-decimal-place
// string. Unparseable entries are skipped; rows are validated on the way in,
// so a bad entry here means data predating validation.
func SumAmounts(amounts []string) string {
	sum := decimal.Zero
	for _, a := range amounts {
		d, err := decimal.NewFromString(strings.TrimSpace(a))
		if err != nil {
			continue
		}
		sum = sum.Add(d)
	}
	return FormatAmount(sum)
}
