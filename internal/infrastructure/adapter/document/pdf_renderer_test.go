package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	"github.com/flouscash/platform/internal/infrastructure/adapter/logger"
	coremocks "github.com/flouscash/platform/mocks/port/core"
)

func newTestRenderer(t *testing.T) *PDFRenderer {
	return NewPDFRenderer(coremocks.NewMockTimeProvider(t), logger.NewNoopLogger()).(*PDFRenderer)
}

func fundingContract() *entity.Contract {
	data := entity.ContractData{
		Type:      entity.ContractTypeFunding,
		UserName:  "Ahmed Hassan",
		UserEmail: "ahmed@example.com",
		Date:      "2025-03-10",
		Funding: &entity.FundingTerms{
			Amount:        "5000.00",
			Purpose:       "Home renovation",
			MonthlyIncome: "12000.00",
		},
	}
	return &entity.Contract{
		ID:     7,
		UserID: "user-1",
		Type:   entity.ContractTypeFunding,
		Data:   datatypes.NewJSONType(data),
		Status: entity.ContractStatusDraft,
	}
}

func TestRenderContract(t *testing.T) {
	t.Run("Produces a PDF with the snapshot values", func(t *testing.T) {
		renderer := newTestRenderer(t)

		pdf, err := renderer.Render(fundingContract(), "")
		require.NoError(t, err)
		require.NotEmpty(t, pdf)

		// Content streams are uncompressed, so the text operators are
		// greppable in the raw output.
		body := string(pdf)
		assert.True(t, strings.HasPrefix(body, "%PDF"))
		assert.Contains(t, body, "FLOUS CASH")
		assert.Contains(t, body, "FC-000007")
		assert.Contains(t, body, "Ahmed Hassan")
		assert.Contains(t, body, "ahmed@example.com")
		assert.Contains(t, body, "5000.00 EGP")
		assert.Contains(t, body, "Home renovation")
		assert.Contains(t, body, "Terms and Conditions")
	})

	t.Run("Signed render includes the signer", func(t *testing.T) {
		renderer := newTestRenderer(t)

		pdf, err := renderer.Render(fundingContract(), "Ahmed Hassan")
		require.NoError(t, err)
		assert.Contains(t, string(pdf), "Signed by: Ahmed Hassan")
	})

	t.Run("Draft render has no signer line", func(t *testing.T) {
		renderer := newTestRenderer(t)

		pdf, err := renderer.Render(fundingContract(), "")
		require.NoError(t, err)
		assert.NotContains(t, string(pdf), "Signed by:")
	})

	t.Run("Investment snapshot renders its own section", func(t *testing.T) {
		renderer := newTestRenderer(t)
		data := entity.ContractData{
			Type:     entity.ContractTypeInvestment,
			UserName: "Ahmed Hassan",
			Date:     "2025-03-10",
			Investment: &entity.InvestmentTerms{
				PlanName:         "Gold Plan",
				InvestmentAmount: "10000.00",
				ExpectedReturn:   "12.5",
				Duration:         30,
			},
		}
		contract := &entity.Contract{ID: 8, UserID: "user-1", Type: entity.ContractTypeInvestment, Data: datatypes.NewJSONType(data)}

		pdf, err := renderer.Render(contract, "")
		require.NoError(t, err)

		body := string(pdf)
		assert.Contains(t, body, "Gold Plan")
		assert.Contains(t, body, "12.5%")
		assert.Contains(t, body, "30 days")
	})

	t.Run("Missing snapshot fields print as a dash", func(t *testing.T) {
		renderer := newTestRenderer(t)
		contract := fundingContract()
		data := contract.Data.Data()
		data.UserEmail = ""
		contract.Data = datatypes.NewJSONType(data)

		pdf, err := renderer.Render(contract, "")
		require.NoError(t, err)
		assert.Contains(t, string(pdf), "Email: -")
	})

	t.Run("Mismatched snapshot is rejected", func(t *testing.T) {
		renderer := newTestRenderer(t)
		data := entity.ContractData{Type: entity.ContractTypeFunding}
		contract := &entity.Contract{ID: 9, UserID: "user-1", Type: entity.ContractTypeFunding, Data: datatypes.NewJSONType(data)}

		_, err := renderer.Render(contract, "")
		assert.ErrorIs(t, err, errs.ErrInvalidContractType)
	})
}
