package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/company/dto"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
	"recruitscore/internal/shared/services/markdown"
)

// GetCompanyQuery fetches a company by ID or, when Slug is set, by slug.
type GetCompanyQuery struct {
	CompanyID uint
	Slug      string
}

type GetCompanyUseCase struct {
	companyRepo company.Repository
	renderer    markdown.Service
	logger      logger.Interface
}

func NewGetCompanyUseCase(
	companyRepo company.Repository,
	renderer markdown.Service,
	logger logger.Interface,
) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, query GetCompanyQuery) (*dto.CompanyResponse, error) {
	var comp *company.Company
	var err error

	if query.Slug != "" {
		comp, err = uc.companyRepo.FindBySlug(ctx, query.Slug)
	} else {
		comp, err = uc.companyRepo.FindByID(ctx, query.CompanyID)
	}
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", query.CompanyID, "slug", query.Slug)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	resp := dto.NewCompanyResponse(comp)
	if comp.Description() != "" {
		rendered, err := uc.renderer.ToHTMLSanitized(comp.Description())
		if err != nil {
			uc.logger.Warnw("failed to render company description", "error", err, "company_id", comp.ID())
		} else {
			resp.DescriptionHTML = rendered
		}
	}

	return resp, nil
}
