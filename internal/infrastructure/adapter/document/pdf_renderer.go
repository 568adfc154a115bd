package document

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/document"
)

const (
	pageWidth  = 595.28 // A4 in points
	marginX    = 30.0
	lineHeight = 25.0
)

// PDFRenderer renders contract documents with gofpdf. The built-in core
// fonts cannot shape Arabic script, so the document carries English labels;
// the Arabic-facing copy lives in the email and chat notifications instead.
type PDFRenderer struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPDFRenderer creates a new PDFRenderer
func NewPDFRenderer(timeProvider coreport.TimeProvider, logger coreport.Logger) document.Renderer {
	return &PDFRenderer{
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Render produces the printable contract document
func (r *PDFRenderer) Render(contract *entity.Contract, signatureData string) ([]byte, error) {
	data := contract.Data.Data()
	if err := data.Validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	// Uncompressed content streams so stored documents stay greppable in
	// support tooling
	pdf.SetCompression(false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	r.drawHeader(pdf)
	y := r.drawDetails(pdf, contract, data)
	y = r.drawTerms(pdf, y)
	r.drawSignature(pdf, y, signatureData)
	r.drawFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.logger.Error("Failed to render contract document", map[string]any{
			"contract_id": contract.ID,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("%w: rendering contract document: %s", errs.ErrInternalServer, err.Error())
	}

	r.logger.Debug("Contract document rendered", map[string]any{
		"contract_id": contract.ID,
		"type":        contract.Type,
		"bytes":       buf.Len(),
	})
	return buf.Bytes(), nil
}

// drawHeader draws the branded page header
func (r *PDFRenderer) drawHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(5, 102, 204)
	pdf.Rect(0, 0, pageWidth, 120, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(marginX, 50, "FLOUS CASH")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(230, 230, 230)
	pdf.Text(marginX, 75, "Licensed Financial Services Platform")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(255, 255, 255)
	pdf.Text(marginX, 105, "Official Financial Service Contract")
}

// serviceTypeLabel maps the contract type to its printed label
func serviceTypeLabel(t entity.ContractType) string {
	switch t {
	case entity.ContractTypeFunding:
		return "Funding"
	case entity.ContractTypeInvestment:
		return "Investment"
	case entity.ContractTypeSavings:
		return "Savings"
	}
	return string(t)
}

// detailLine is one label/value row in the contract info box
type detailLine struct {
	label string
	value string
}

// drawDetails draws the contract info box and returns the next y position
func (r *PDFRenderer) drawDetails(pdf *gofpdf.Fpdf, contract *entity.Contract, data entity.ContractData) float64 {
	boxTop := 150.0

	details := []detailLine{
		{"Contract No", contract.Number()},
		{"Date", data.Date},
		{"Service Type", serviceTypeLabel(contract.Type)},
		{"Full Name", valueOrDash(data.UserName)},
		{"Email", valueOrDash(data.UserEmail)},
		{"Amount", valueOrDash(data.Amount()) + " EGP"},
	}

	switch contract.Type {
	case entity.ContractTypeFunding:
		details = append(details,
			detailLine{"Purpose", valueOrDash(data.Funding.Purpose)},
			detailLine{"Monthly Income", valueOrDash(data.Funding.MonthlyIncome) + " EGP"},
		)
	case entity.ContractTypeInvestment:
		details = append(details,
			detailLine{"Investment Plan", valueOrDash(data.Investment.PlanName)},
			detailLine{"Expected Return", valueOrDash(data.Investment.ExpectedReturn) + "%"},
			detailLine{"Duration", fmt.Sprintf("%d days", data.Investment.Duration)},
		)
	case entity.ContractTypeSavings:
		details = append(details,
			detailLine{"Goal Name", valueOrDash(data.Savings.GoalName)},
			detailLine{"Monthly Contribution", valueOrDash(data.Savings.MonthlyContribution) + " EGP"},
		)
	}

	boxHeight := float64(len(details))*lineHeight + 60

	pdf.SetFillColor(247, 247, 247)
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(1)
	pdf.Rect(marginX, boxTop, pageWidth-2*marginX, boxHeight, "FD")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(marginX+15, boxTop+25, "Contract Details:")

	pdf.SetFont("Helvetica", "", 12)
	y := boxTop + 55
	for _, d := range details {
		pdf.Text(marginX+15, y, fmt.Sprintf("%s: %s", d.label, d.value))
		y += lineHeight
	}

	return boxTop + boxHeight + 40
}

// drawTerms draws the terms section and returns the next y position
func (r *PDFRenderer) drawTerms(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginX, y, "Terms and Conditions:")

	terms := []string{
		"- The second party commits to repayment on the agreed schedule.",
		"- All transactions are protected under Egyptian law.",
		"- The contract is effective from the date of signature.",
		"- For inquiries please contact customer service.",
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	y += 25
	for _, term := range terms {
		pdf.Text(marginX, y, term)
		y += 20
	}

	return y + 30
}

// drawSignature draws the signature box and official stamp
func (r *PDFRenderer) drawSignature(pdf *gofpdf.Fpdf, y float64, signatureData string) {
	pdf.SetFillColor(250, 250, 250)
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(1)
	pdf.Rect(marginX, y, pageWidth-2*marginX, 100, "FD")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(marginX+15, y+25, "Signature and Stamp:")

	if signatureData != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(marginX+15, y+60, "Signed by: "+signatureData)
	}

	// Official stamp outline on the right
	pdf.SetDrawColor(204, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Rect(pageWidth-marginX-110, y+35, 80, 40, "D")

	pdf.SetTextColor(204, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pageWidth-marginX-100, y+30, "OFFICIAL")
}

// drawFooter draws the dark page footer
func (r *PDFRenderer) drawFooter(pdf *gofpdf.Fpdf) {
	_, pageHeight := pdf.GetPageSize()

	pdf.SetFillColor(26, 26, 26)
	pdf.Rect(0, pageHeight-60, pageWidth, 60, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginX, pageHeight-25, "Flous Cash Platform - Trusted and Licensed Financial Services")

	pdf.SetTextColor(204, 204, 204)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(marginX, pageHeight-12, "www.flouscash.com | support@flouscash.com")
}

// valueOrDash substitutes a dash for missing snapshot fields
func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
