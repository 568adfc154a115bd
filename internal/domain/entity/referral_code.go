package entity

import (
	"crypto/rand"
	"fmt"
)

// ReferralCodeLength is the length of generated referral codes
const ReferralCodeLength = 6

// referralCodeCharset deliberately omits nothing; codes are compared
// case-sensitively and always stored uppercase.
const referralCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReferralCode produces a short uppercase alphanumeric token used to
// attribute referred signups. Uniqueness is enforced by the database; callers
// retry on collision.
func GenerateReferralCode() (string, error) {
	buf := make([]byte, ReferralCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate referral code: %w", err)
	}

	for i, b := range buf {
		buf[i] = referralCodeCharset[int(b)%len(referralCodeCharset)]
	}
	return string(buf), nil
}
