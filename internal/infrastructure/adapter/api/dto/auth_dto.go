package dto

// LoginRequest carries the verified identity claims delivered by the
// external identity provider's callback. Credentials are never validated
// here.
type LoginRequest struct {
	ID              string `json:"id" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	NationalID      string `json:"nationalId"`
	Address         string `json:"address"`
	Job             string `json:"job"`
	ProfileImageURL string `json:"profileImageUrl"`
	ReferralCode    string `json:"referralCode"`
}
