package claim

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"recruitscore/internal/application/claim/usecases"
	"recruitscore/internal/shared/errors"
)

type SubmitEmailClaimRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (r *SubmitEmailClaimRequest) ToCommand(companyID, userID uint) usecases.SubmitEmailClaimCommand {
	return usecases.SubmitEmailClaimCommand{
		CompanyID: companyID,
		UserID:    userID,
		Email:     r.Email,
	}
}

type SubmitManualClaimRequest struct {
	FullName    string `json:"full_name" binding:"required,max=200"`
	JobTitle    string `json:"job_title" binding:"required,max=200"`
	LinkedinURL string `json:"linkedin_url" binding:"omitempty,url,max=500"`
	ProofType   string `json:"proof_type" binding:"required,oneof=companies_house official_documentation other"`
	ProofText   string `json:"proof_text" binding:"required,max=5000"`
}

func (r *SubmitManualClaimRequest) ToCommand(companyID, userID uint) usecases.SubmitManualClaimCommand {
	return usecases.SubmitManualClaimCommand{
		CompanyID:   companyID,
		UserID:      userID,
		FullName:    r.FullName,
		JobTitle:    r.JobTitle,
		LinkedinURL: r.LinkedinURL,
		ProofType:   r.ProofType,
		ProofText:   r.ProofText,
	}
}

type ReviewClaimRequest struct {
	Notes string `json:"notes" binding:"max=5000"`
}

type ListClaimsRequest struct {
	Page      int
	PageSize  int
	Status    string
	CompanyID *uint
	UserID    *uint
}

func (r *ListClaimsRequest) ToQuery() usecases.ListClaimsQuery {
	return usecases.ListClaimsQuery{
		Status:    r.Status,
		CompanyID: r.CompanyID,
		UserID:    r.UserID,
		Page:      r.Page,
		PageSize:  r.PageSize,
	}
}

func parseListClaimsRequest(c *gin.Context) (*ListClaimsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListClaimsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}

	if companyIDStr := c.Query("company_id"); companyIDStr != "" {
		companyID, err := strconv.ParseUint(companyIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid company_id")
		}
		id := uint(companyID)
		req.CompanyID = &id
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid user_id")
		}
		id := uint(userID)
		req.UserID = &id
	}

	return req, nil
}
