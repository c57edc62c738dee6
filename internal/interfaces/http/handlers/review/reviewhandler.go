package review

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitscore/internal/application/review/dto"
	"recruitscore/internal/application/review/usecases"
	"recruitscore/internal/shared/authorization"
	"recruitscore/internal/shared/constants"
	"recruitscore/internal/shared/logger"
	"recruitscore/internal/shared/utils"
)

type ReviewHandler struct {
	submitReviewUC      usecases.SubmitReviewExecutor
	updateReviewUC      usecases.UpdateReviewExecutor
	deleteReviewUC      usecases.DeleteReviewExecutor
	listReviewsUC       usecases.ListReviewsExecutor
	respondToReviewUC   usecases.RespondToReviewExecutor
	moderateReviewUC    usecases.ModerateReviewExecutor
	markReviewHelpfulUC usecases.MarkReviewHelpfulExecutor
	logger              logger.Interface
}

func NewReviewHandler(
	submitReviewUC usecases.SubmitReviewExecutor,
	updateReviewUC usecases.UpdateReviewExecutor,
	deleteReviewUC usecases.DeleteReviewExecutor,
	listReviewsUC usecases.ListReviewsExecutor,
	respondToReviewUC usecases.RespondToReviewExecutor,
	moderateReviewUC usecases.ModerateReviewExecutor,
	markReviewHelpfulUC usecases.MarkReviewHelpfulExecutor,
) *ReviewHandler {
	return &ReviewHandler{
		submitReviewUC:      submitReviewUC,
		updateReviewUC:      updateReviewUC,
		deleteReviewUC:      deleteReviewUC,
		listReviewsUC:       listReviewsUC,
		respondToReviewUC:   respondToReviewUC,
		moderateReviewUC:    moderateReviewUC,
		markReviewHelpfulUC: markReviewHelpfulUC,
		logger:              logger.NewLogger(),
	}
}

// SubmitReview handles POST /companies/:id/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit review", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SubmitReviewCommand{
		CompanyID: companyID,
		UserID:    c.GetUint(constants.ContextKeyUserID),
		Request:   req,
	}

	result, err := h.submitReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Review submitted successfully")
}

// ListCompanyReviews handles GET /companies/:id/reviews
func (h *ReviewHandler) ListCompanyReviews(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req := parseListReviewsRequest(c)
	req.CompanyID = &companyID

	// Only admins may peek behind the approved-only default.
	if !isAdmin(c) {
		req.Status = ""
		req.IncludeAll = false
	}

	results, total, err := h.listReviewsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, results, total, req.Page, req.PageSize)
}

// ListMyReviews handles GET /reviews/mine
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	req := parseListReviewsRequest(c)
	req.UserID = &userID
	// Authors see all their own reviews regardless of moderation status.
	req.IncludeAll = true

	results, total, err := h.listReviewsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, results, total, req.Page, req.PageSize)
}

// UpdateReview handles PUT /reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update review", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateReviewCommand{
		ReviewID: reviewID,
		ActorID:  c.GetUint(constants.ContextKeyUserID),
		Request:  req,
	}

	result, err := h.updateReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review updated successfully", result)
}

// DeleteReview handles DELETE /reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteReviewCommand{
		ReviewID: reviewID,
		ActorID:  c.GetUint(constants.ContextKeyUserID),
	}

	if err := h.deleteReviewUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RespondToReview handles POST /reviews/:id/responses
func (h *ReviewHandler) RespondToReview(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RespondToReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RespondToReviewCommand{
		ReviewID:     reviewID,
		ActorID:      c.GetUint(constants.ContextKeyUserID),
		ResponseText: req.ResponseText,
	}

	result, err := h.respondToReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Response posted successfully")
}

// ModerateReviewRequest carries an admin moderation decision.
type ModerateReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected flagged"`
}

// ModerateReview handles PATCH /reviews/:id/status
func (h *ReviewHandler) ModerateReview(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for moderate review", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ModerateReviewCommand{
		ReviewID: reviewID,
		ActorID:  c.GetUint(constants.ContextKeyUserID),
		Status:   req.Status,
	}

	result, err := h.moderateReviewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review status updated", result)
}

// MarkHelpful handles POST /reviews/:id/helpful
func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	reviewID, err := utils.ParseIDParam(c, "id", "review")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.MarkReviewHelpfulCommand{
		ReviewID: reviewID,
		ActorID:  c.GetUint(constants.ContextKeyUserID),
	}

	result, err := h.markReviewHelpfulUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Marked as helpful", result)
}

func isAdmin(c *gin.Context) bool {
	role := c.GetString(constants.ContextKeyUserRole)
	return authorization.UserRole(role).IsAdmin()
}
