package review

import (
	"context"

	vo "recruitscore/internal/domain/review/valueobjects"
)

// Stats is the aggregate snapshot used to refresh a company's denormalized
// rating fields. Average is nil when no approved reviews exist.
type Stats struct {
	AverageRating *float64
	ReviewCount   int
}

type Repository interface {
	Save(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Review, error)
	FindByCompanyAndUser(ctx context.Context, companyID, userID uint) (*Review, error)
	List(ctx context.Context, filter Filter) ([]*Review, int64, error)
	// CompanyStats computes average overall rating and count over approved
	// reviews only.
	CompanyStats(ctx context.Context, companyID uint) (Stats, error)

	SaveResponse(ctx context.Context, resp *Response) error
	ResponsesByReviewIDs(ctx context.Context, reviewIDs []uint) (map[uint][]*Response, error)
}

type Filter struct {
	CompanyID *uint
	UserID    *uint
	Status    *vo.ReviewStatus
	Page      int
	PageSize  int
	SortBy    string // recent, helpful, rating
}
