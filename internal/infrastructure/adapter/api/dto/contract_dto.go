package dto

// SignContractRequest carries the drawn-signature payload
type SignContractRequest struct {
	SignatureData string `json:"signatureData" binding:"required"`
}
