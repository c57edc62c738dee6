package claim

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitscore/internal/application/claim/usecases"
	"recruitscore/internal/shared/authorization"
	"recruitscore/internal/shared/constants"
	"recruitscore/internal/shared/logger"
	"recruitscore/internal/shared/utils"
)

type ClaimHandler struct {
	submitEmailClaimUC  usecases.SubmitEmailClaimExecutor
	submitManualClaimUC usecases.SubmitManualClaimExecutor
	verifyClaimTokenUC  usecases.VerifyClaimTokenExecutor
	approveClaimUC      usecases.ApproveClaimExecutor
	rejectClaimUC       usecases.RejectClaimExecutor
	getClaimUC          usecases.GetClaimExecutor
	listClaimsUC        usecases.ListClaimsExecutor
	logger              logger.Interface
}

func NewClaimHandler(
	submitEmailClaimUC usecases.SubmitEmailClaimExecutor,
	submitManualClaimUC usecases.SubmitManualClaimExecutor,
	verifyClaimTokenUC usecases.VerifyClaimTokenExecutor,
	approveClaimUC usecases.ApproveClaimExecutor,
	rejectClaimUC usecases.RejectClaimExecutor,
	getClaimUC usecases.GetClaimExecutor,
	listClaimsUC usecases.ListClaimsExecutor,
) *ClaimHandler {
	return &ClaimHandler{
		submitEmailClaimUC:  submitEmailClaimUC,
		submitManualClaimUC: submitManualClaimUC,
		verifyClaimTokenUC:  verifyClaimTokenUC,
		approveClaimUC:      approveClaimUC,
		rejectClaimUC:       rejectClaimUC,
		getClaimUC:          getClaimUC,
		listClaimsUC:        listClaimsUC,
		logger:              logger.NewLogger(),
	}
}

// SubmitEmailClaim handles POST /companies/:id/claims/email
func (h *ClaimHandler) SubmitEmailClaim(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitEmailClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for email claim", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)
	cmd := req.ToCommand(companyID, userID)

	result, err := h.submitEmailClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		// Domain mismatch is not terminal: the client should offer the
		// manual verification path instead.
		if stderrors.Is(err, usecases.ErrEmailDomainMismatch) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error": gin.H{
					"type":    "validation",
					"message": err.Error(),
				},
				"requires_manual_verification": true,
			})
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Verification email sent")
}

// SubmitManualClaim handles POST /companies/:id/claims/manual
func (h *ClaimHandler) SubmitManualClaim(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitManualClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for manual claim", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)
	cmd := req.ToCommand(companyID, userID)

	result, err := h.submitManualClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Claim submitted for review")
}

// VerifyClaimToken handles GET /claims/verify/:token
func (h *ClaimHandler) VerifyClaimToken(c *gin.Context) {
	cmd := usecases.VerifyClaimTokenCommand{
		Token: c.Param("token"),
	}

	result, err := h.verifyClaimTokenUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company claim verified", result)
}

// ApproveClaim handles POST /claims/:id/approve
func (h *ClaimHandler) ApproveClaim(c *gin.Context) {
	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ApproveClaimCommand{
		ClaimID:    claimID,
		ReviewerID: c.GetUint(constants.ContextKeyUserID),
		Notes:      req.Notes,
	}

	result, err := h.approveClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Claim approved", result)
}

// RejectClaim handles POST /claims/:id/reject
func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RejectClaimCommand{
		ClaimID:    claimID,
		ReviewerID: c.GetUint(constants.ContextKeyUserID),
		Notes:      req.Notes,
	}

	result, err := h.rejectClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Claim rejected", result)
}

// GetClaim handles GET /claims/:id
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetClaimQuery{
		ClaimID:     claimID,
		RequesterID: c.GetUint(constants.ContextKeyUserID),
		IsAdmin:     isAdmin(c),
	}

	result, err := h.getClaimUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListClaims handles GET /claims. Admins see the full queue with filters;
// everyone else only ever sees their own claims.
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	req, err := parseListClaimsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !isAdmin(c) {
		userID := c.GetUint(constants.ContextKeyUserID)
		req.UserID = &userID
		req.CompanyID = nil
	}

	results, total, err := h.listClaimsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, results, total, req.Page, req.PageSize)
}

func isAdmin(c *gin.Context) bool {
	role := c.GetString(constants.ContextKeyUserRole)
	return authorization.UserRole(role).IsAdmin()
}
