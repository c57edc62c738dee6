package review

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"recruitscore/internal/application/review/usecases"
)

type ListReviewsRequest struct {
	Page       int
	PageSize   int
	CompanyID  *uint
	UserID     *uint
	Status     string
	IncludeAll bool
	SortBy     string
}

func (r *ListReviewsRequest) ToQuery() usecases.ListReviewsQuery {
	return usecases.ListReviewsQuery{
		CompanyID:  r.CompanyID,
		UserID:     r.UserID,
		Status:     r.Status,
		IncludeAll: r.IncludeAll,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
	}
}

func parseListReviewsRequest(c *gin.Context) *ListReviewsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &ListReviewsRequest{
		Page:       page,
		PageSize:   pageSize,
		Status:     c.Query("status"),
		IncludeAll: c.Query("include_all") == "true",
		SortBy:     c.Query("sort"),
	}
}
