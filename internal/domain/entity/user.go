package entity

import (
	"strings"
	"time"

	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
)

// User represents a platform user. The identifier is issued by the external
// identity provider; the row is upserted on every successful login and never
// deleted by the application.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Email           string    `json:"email" gorm:"uniqueIndex"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	FullName        string    `json:"fullName"`
	Phone           string    `json:"phone"`
	NationalID      string    `json:"nationalId"`
	Address         string    `json:"address"`
	Job             string    `json:"job"`
	ProfileImageURL string    `json:"profileImageUrl"`
	ReferralCode    string    `json:"referralCode" gorm:"uniqueIndex"`
	ReferredBy      string    `json:"referredBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser creates a user from identity-provider claims
func NewUser(id, email string, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValidationError("id", "must not be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, errs.NewValidationError("email", "must not be empty")
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// DisplayName prefers the explicit full name and falls back to first + last
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Touch bumps the updated timestamp
func (u *User) Touch(timeProvider coreport.TimeProvider) {
	u.UpdatedAt = timeProvider.Now()
}
