package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/company/dto"
	"recruitscore/internal/domain/company"
	companyVO "recruitscore/internal/domain/company/valueobjects"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type ListCompaniesQuery struct {
	Sector   string
	Location string
	Size     string
	Search   string
	Verified *bool
	Page     int
	PageSize int
	SortBy   string
}

// ListCompaniesUseCase serves the public directory with filtering, search,
// and sort by rating, review count, recency, or name.
type ListCompaniesUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, query ListCompaniesQuery) ([]*dto.CompanyResponse, int64, error) {
	filter := company.Filter{
		Sector:   query.Sector,
		Location: query.Location,
		Search:   query.Search,
		Verified: query.Verified,
		Page:     query.Page,
		PageSize: query.PageSize,
		SortBy:   query.SortBy,
	}

	if query.Size != "" {
		size, err := companyVO.NewCompanySize(query.Size)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid company size", err.Error())
		}
		filter.Size = &size
	}

	companies, total, err := uc.companyRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	return dto.NewCompanyResponseList(companies), total, nil
}
