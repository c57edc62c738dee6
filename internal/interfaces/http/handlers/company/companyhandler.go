package company

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitscore/internal/application/company/dto"
	"recruitscore/internal/application/company/usecases"
	"recruitscore/internal/shared/constants"
	"recruitscore/internal/shared/logger"
	"recruitscore/internal/shared/utils"
)

type CompanyHandler struct {
	createCompanyUC     usecases.CreateCompanyExecutor
	updateCompanyUC     usecases.UpdateCompanyExecutor
	deleteCompanyUC     usecases.DeleteCompanyExecutor
	getCompanyUC        usecases.GetCompanyExecutor
	listCompaniesUC     usecases.ListCompaniesExecutor
	transferOwnershipUC usecases.TransferOwnershipExecutor
	logger              logger.Interface
}

func NewCompanyHandler(
	createCompanyUC usecases.CreateCompanyExecutor,
	updateCompanyUC usecases.UpdateCompanyExecutor,
	deleteCompanyUC usecases.DeleteCompanyExecutor,
	getCompanyUC usecases.GetCompanyExecutor,
	listCompaniesUC usecases.ListCompaniesExecutor,
	transferOwnershipUC usecases.TransferOwnershipExecutor,
) *CompanyHandler {
	return &CompanyHandler{
		createCompanyUC:     createCompanyUC,
		updateCompanyUC:     updateCompanyUC,
		deleteCompanyUC:     deleteCompanyUC,
		getCompanyUC:        getCompanyUC,
		listCompaniesUC:     listCompaniesUC,
		transferOwnershipUC: transferOwnershipUC,
		logger:              logger.NewLogger(),
	}
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create company", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateCompanyCommand{
		ActorID: c.GetUint(constants.ContextKeyUserID),
		Request: req,
	}

	result, err := h.createCompanyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Company created successfully")
}

// UpdateCompany handles PUT /companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update company", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateCompanyCommand{
		CompanyID: companyID,
		ActorID:   c.GetUint(constants.ContextKeyUserID),
		Request:   req,
	}

	result, err := h.updateCompanyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company updated successfully", result)
}

// DeleteCompany handles DELETE /companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteCompanyCommand{
		CompanyID: companyID,
		ActorID:   c.GetUint(constants.ContextKeyUserID),
	}

	if err := h.deleteCompanyUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetCompany handles GET /companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCompanyUC.Execute(c.Request.Context(), usecases.GetCompanyQuery{
		CompanyID: companyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCompanyBySlug handles GET /companies/slug/:slug
func (h *CompanyHandler) GetCompanyBySlug(c *gin.Context) {
	result, err := h.getCompanyUC.Execute(c.Request.Context(), usecases.GetCompanyQuery{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	req := parseListCompaniesRequest(c)

	results, total, err := h.listCompaniesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, results, total, req.Page, req.PageSize)
}

// TransferOwnership handles POST /companies/:id/transfer
func (h *CompanyHandler) TransferOwnership(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.TransferOwnershipCommand{
		CompanyID:     companyID,
		ActorID:       c.GetUint(constants.ContextKeyUserID),
		NewOwnerEmail: req.NewOwnerEmail,
	}

	result, err := h.transferOwnershipUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ownership transferred successfully", result)
}
