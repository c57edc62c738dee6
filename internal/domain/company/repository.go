package company

import (
	"context"

	vo "recruitscore/internal/domain/company/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Company, error)
	FindBySlug(ctx context.Context, slug string) (*Company, error)
	List(ctx context.Context, filter Filter) ([]*Company, int64, error)
}

type Filter struct {
	Sector   string
	Location string
	Size     *vo.CompanySize
	Search   string
	Verified *bool
	Page     int
	PageSize int
	SortBy   string // rating, reviews, recent, name
}
