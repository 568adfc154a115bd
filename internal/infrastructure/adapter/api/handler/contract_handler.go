package handler

import (
	"fmt"
	"net/http"
	"strconv"

	domainerr "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/dto"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ContractHandler handles contract HTTP requests
type ContractHandler struct {
	contractUseCase usecase.ContractUseCase
	logger          coreport.Logger
}

// NewContractHandler creates a new contract handler instance
func NewContractHandler(
	contractUseCase usecase.ContractUseCase,
	logger coreport.Logger,
) *ContractHandler {
	return &ContractHandler{
		contractUseCase: contractUseCase,
		logger:          logger,
	}
}

// contractID parses the :id path parameter
func contractID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid contract id",
		})
		return 0, false
	}
	return id, true
}

// List handles the GET /api/contracts endpoint
func (h *ContractHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	contracts, err := h.contractUseCase.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "list contracts", err)
		return
	}

	c.JSON(http.StatusOK, contracts)
}

// Sign handles the POST /api/contracts/:id/sign endpoint
func (h *ContractHandler) Sign(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}

	var req dto.SignContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)

	contract, err := h.contractUseCase.Sign(c.Request.Context(), user.ID, id, req.SignatureData)
	if err != nil {
		respondError(c, h.logger, "sign contract", err)
		return
	}

	c.JSON(http.StatusOK, contract)
}

// DownloadPDF handles the GET /api/contracts/:id/pdf endpoint. The document
// is rendered on the fly; nothing is stored on disk.
func (h *ContractHandler) DownloadPDF(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)

	pdf, err := h.contractUseCase.RenderPDF(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, h.logger, "render contract pdf", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("contract-%d.pdf", id)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
