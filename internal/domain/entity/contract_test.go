package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/flouscash/platform/internal/domain/error"
	coremocks "github.com/flouscash/platform/mocks/port/core"
)

func fundingData() ContractData {
	return ContractData{
		Type:      ContractTypeFunding,
		UserName:  "Ahmed Hassan",
		UserEmail: "ahmed@example.com",
		Date:      "2024-03-01T10:00:00Z",
		Funding: &FundingTerms{
			Amount:        "5000.00",
			Purpose:       "home renovation",
			MonthlyIncome: "12000.00",
		},
	}
}

func TestContractDataValidate(t *testing.T) {
	t.Run("Valid variants", func(t *testing.T) {
		assert.NoError(t, fundingData().Validate())

		investment := ContractData{
			Type:       ContractTypeInvestment,
			Investment: &InvestmentTerms{PlanName: "Gold", InvestmentAmount: "1000.00", ExpectedReturn: "12.5", Duration: 10},
		}
		assert.NoError(t, investment.Validate())

		savings := ContractData{
			Type:    ContractTypeSavings,
			Savings: &SavingsTerms{GoalName: "Car", TargetAmount: "30000.00", MonthlyContribution: "1500.00"},
		}
		assert.NoError(t, savings.Validate())
	})

	t.Run("Type tag without matching terms", func(t *testing.T) {
		data := fundingData()
		data.Funding = nil
		assert.ErrorIs(t, data.Validate(), errs.ErrInvalidContractType)
	})

	t.Run("Unknown type tag", func(t *testing.T) {
		data := ContractData{Type: "mortgage"}
		assert.ErrorIs(t, data.Validate(), errs.ErrInvalidContractType)
	})
}

func TestContractDataAmount(t *testing.T) {
	testCases := []struct {
		name     string
		data     ContractData
		expected string
	}{
		{"Funding uses the requested amount", fundingData(), "5000.00"},
		{
			"Investment uses the invested amount",
			ContractData{Type: ContractTypeInvestment, Investment: &InvestmentTerms{InvestmentAmount: "750.00"}},
			"750.00",
		},
		{
			"Savings uses the target amount",
			ContractData{Type: ContractTypeSavings, Savings: &SavingsTerms{TargetAmount: "20000.00"}},
			"20000.00",
		},
		{"Missing terms yield empty", ContractData{Type: ContractTypeFunding}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.data.Amount())
		})
	}
}

func TestNewContract(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates a draft snapshot", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		contract, err := NewContract("user-1", 42, fundingData(), mockTime)
		require.NoError(t, err)
		assert.Equal(t, "user-1", contract.UserID)
		assert.Equal(t, ContractTypeFunding, contract.Type)
		assert.Equal(t, uint64(42), contract.ReferenceID)
		assert.Equal(t, ContractStatusDraft, contract.Status)
		assert.Empty(t, contract.SignatureData)
		assert.Equal(t, fixedTime, contract.CreatedAt)
		assert.Equal(t, fundingData(), contract.Data.Data())
	})

	t.Run("Rejects empty user id", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewContract("  ", 42, fundingData(), mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Rejects zero reference id", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		_, err := NewContract("user-1", 0, fundingData(), mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Rejects mismatched data", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		data := fundingData()
		data.Funding = nil
		_, err := NewContract("user-1", 42, data, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidContractType)
	})
}

func TestContractNumber(t *testing.T) {
	assert.Equal(t, "FC-000007", (&Contract{ID: 7}).Number())
	assert.Equal(t, "FC-123456", (&Contract{ID: 123456}).Number())
	assert.Equal(t, "FC-1234567", (&Contract{ID: 1234567}).Number())
}

func TestContractSign(t *testing.T) {
	fixedTime := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("Records signature and flips status", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		contract := &Contract{ID: 3, Status: ContractStatusDraft}
		err := contract.Sign("Ahmed Hassan", "/api/contracts/3/pdf", mockTime)
		require.NoError(t, err)
		assert.Equal(t, ContractStatusSigned, contract.Status)
		assert.Equal(t, "Ahmed Hassan", contract.SignatureData)
		assert.Equal(t, "/api/contracts/3/pdf", contract.PDFURL)
		assert.Equal(t, fixedTime, contract.UpdatedAt)
	})

	t.Run("Signing again overwrites", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		contract := &Contract{ID: 3, Status: ContractStatusSigned, SignatureData: "Old Name"}
		err := contract.Sign("New Name", "/api/contracts/3/pdf", mockTime)
		require.NoError(t, err)
		assert.Equal(t, "New Name", contract.SignatureData)
		assert.Equal(t, ContractStatusSigned, contract.Status)
	})

	t.Run("Rejects blank signature", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		contract := &Contract{ID: 3}
		err := contract.Sign("   ", "/api/contracts/3/pdf", mockTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
