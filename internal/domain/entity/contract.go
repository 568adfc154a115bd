package entity

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
)

// ContractType discriminates which financial product a contract snapshots
type ContractType string

const (
	ContractTypeFunding    ContractType = "funding"
	ContractTypeInvestment ContractType = "investment"
	ContractTypeSavings    ContractType = "savings"
)

// IsValid checks whether the type is one of the allowed values
func (t ContractType) IsValid() bool {
	switch t {
	case ContractTypeFunding, ContractTypeInvestment, ContractTypeSavings:
		return true
	}
	return false
}

// ContractStatus represents the signature state of a contract
type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusSigned    ContractStatus = "signed"
	ContractStatusCompleted ContractStatus = "completed"
)

// FundingTerms is the payload variant for funding contracts
type FundingTerms struct {
	Amount        string `json:"amount"`
	Purpose       string `json:"purpose"`
	MonthlyIncome string `json:"monthlyIncome"`
}

// InvestmentTerms is the payload variant for investment contracts
type InvestmentTerms struct {
	PlanName         string `json:"planName"`
	InvestmentAmount string `json:"investmentAmount"`
	ExpectedReturn   string `json:"expectedReturn"`
	Duration         int    `json:"duration"`
}

// SavingsTerms is the payload variant for savings contracts
type SavingsTerms struct {
	GoalName            string `json:"goalName"`
	TargetAmount        string `json:"targetAmount"`
	MonthlyContribution string `json:"monthlyContribution"`
}

// ContractData is the snapshot rendered into the contract document. It is a
// tagged union: exactly the variant matching Type is populated, the others
// stay nil.
type ContractData struct {
	Type       ContractType     `json:"type"`
	UserName   string           `json:"userName"`
	UserEmail  string           `json:"userEmail"`
	Date       string           `json:"date"`
	Funding    *FundingTerms    `json:"funding,omitempty"`
	Investment *InvestmentTerms `json:"investment,omitempty"`
	Savings    *SavingsTerms    `json:"savings,omitempty"`
}

// Validate checks that the populated variant matches the type tag
func (d ContractData) Validate() error {
	switch d.Type {
	case ContractTypeFunding:
		if d.Funding == nil {
			return fmt.Errorf("%w: funding contract without funding terms", errs.ErrInvalidContractType)
		}
	case ContractTypeInvestment:
		if d.Investment == nil {
			return fmt.Errorf("%w: investment contract without investment terms", errs.ErrInvalidContractType)
		}
	case ContractTypeSavings:
		if d.Savings == nil {
			return fmt.Errorf("%w: savings contract without savings terms", errs.ErrInvalidContractType)
		}
	default:
		return fmt.Errorf("%w: %q", errs.ErrInvalidContractType, d.Type)
	}
	return nil
}

// Amount returns the principal amount of whichever variant is populated
func (d ContractData) Amount() string {
	switch d.Type {
	case ContractTypeFunding:
		if d.Funding != nil {
			return d.Funding.Amount
		}
	case ContractTypeInvestment:
		if d.Investment != nil {
			return d.Investment.InvestmentAmount
		}
	case ContractTypeSavings:
		if d.Savings != nil {
			return d.Savings.TargetAmount
		}
	}
	return ""
}

// Contract is a stored snapshot of a financial-product application plus its
// signature state and rendered-document pointer. Created alongside funding
// and investment records; signing is the only mutation after creation.
type Contract struct {
	ID            uint64                           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        string                           `json:"userId" gorm:"index;not null"`
	Type          ContractType                     `json:"type" gorm:"not null"`
	ReferenceID   uint64                           `json:"referenceId" gorm:"not null"`
	Data          datatypes.JSONType[ContractData] `json:"contractData" gorm:"column:contract_data;not null"`
	SignatureData string                           `json:"signatureData" gorm:"type:text"`
	PDFURL        string                           `json:"pdfUrl" gorm:"column:pdf_url"`
	Status        ContractStatus                   `json:"status" gorm:"default:draft"`
	CreatedAt     time.Time                        `json:"createdAt"`
	UpdatedAt     time.Time                        `json:"updatedAt"`
}

// TableName specifies the table name for Contract
func (Contract) TableName() string {
	return "contracts"
}

// NewContract builds a draft contract snapshotting the originating record
func NewContract(userID string, referenceID uint64, data ContractData, timeProvider coreport.TimeProvider) (*Contract, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.NewValidationError("userId", "must not be empty")
	}
	if referenceID == 0 {
		return nil, errs.NewValidationError("referenceId", "must reference a stored record")
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Contract{
		UserID:      userID,
		Type:        data.Type,
		ReferenceID: referenceID,
		Data:        datatypes.NewJSONType(data),
		Status:      ContractStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Number returns the human-facing contract number printed on documents
func (c *Contract) Number() string {
	return fmt.Sprintf("FC-%06d", c.ID)
}

// Sign records the signature and document pointer and flips the status.
// Signing again overwrites; it never creates another contract.
func (c *Contract) Sign(signatureData, pdfURL string, timeProvider coreport.TimeProvider) error {
	if strings.TrimSpace(signatureData) == "" {
		return errs.NewValidationError("signatureData", "must not be empty")
	}
	c.SignatureData = signatureData
	c.PDFURL = pdfURL
	c.Status = ContractStatusSigned
	c.UpdatedAt = timeProvider.Now()
	return nil
}
