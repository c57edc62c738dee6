package company

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"recruitscore/internal/application/company/usecases"
)

type ListCompaniesRequest struct {
	Page     int
	PageSize int
	Sector   string
	Location string
	Size     string
	Search   string
	Verified *bool
	SortBy   string
}

func (r *ListCompaniesRequest) ToQuery() usecases.ListCompaniesQuery {
	return usecases.ListCompaniesQuery{
		Sector:   r.Sector,
		Location: r.Location,
		Size:     r.Size,
		Search:   r.Search,
		Verified: r.Verified,
		Page:     r.Page,
		PageSize: r.PageSize,
		SortBy:   r.SortBy,
	}
}

func parseListCompaniesRequest(c *gin.Context) *ListCompaniesRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListCompaniesRequest{
		Page:     page,
		PageSize: pageSize,
		Sector:   c.Query("sector"),
		Location: c.Query("location"),
		Size:     c.Query("size"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sort"),
	}

	if verifiedStr := c.Query("verified"); verifiedStr != "" {
		verified := verifiedStr == "true"
		req.Verified = &verified
	}

	return req
}
