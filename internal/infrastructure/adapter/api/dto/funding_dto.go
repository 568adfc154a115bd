package dto

import "github.com/flouscash/platform/internal/domain/entity"

// CreateFundingRequestRequest is the funding submission payload
type CreateFundingRequestRequest struct {
	Amount        string `json:"amount" binding:"required"`
	Purpose       string `json:"purpose" binding:"required"`
	MonthlyIncome string `json:"monthlyIncome" binding:"required"`
}

// CreateFundingRequestResponse pairs the stored request with its companion
// contract
type CreateFundingRequestResponse struct {
	FundingRequest *entity.FundingRequest `json:"fundingRequest"`
	Contract       *entity.Contract       `json:"contract"`
}
