package dto

import "github.com/flouscash/platform/internal/domain/entity"

// CreateInvestmentOfferRequest is the investment submission payload.
// Duration defaults server-side when omitted or non-positive.
type CreateInvestmentOfferRequest struct {
	PlanName         string `json:"planName" binding:"required"`
	InvestmentAmount string `json:"investmentAmount" binding:"required"`
	ExpectedReturn   string `json:"expectedReturn" binding:"required"`
	Duration         int    `json:"duration"`
}

// CreateInvestmentOfferResponse pairs the stored offer with its companion
// contract
type CreateInvestmentOfferResponse struct {
	InvestmentOffer *entity.InvestmentOffer `json:"investmentOffer"`
	Contract        *entity.Contract        `json:"contract"`
}
