package dto

// ReferralSignupRequest is the referral code check payload
type ReferralSignupRequest struct {
	ReferralCode string `json:"referralCode" binding:"required"`
}

// ReferralSignupResponse reports whether a referral code belongs to a user
type ReferralSignupResponse struct {
	Valid      bool   `json:"valid"`
	ReferrerID string `json:"referrerId,omitempty"`
}

// ReferralStatsResponse aggregates the caller's referrals
type ReferralStatsResponse struct {
	Count         int    `json:"count"`
	TotalEarnings string `json:"totalEarnings"`
}
