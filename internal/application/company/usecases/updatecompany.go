package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/company/dto"
	"recruitscore/internal/domain/company"
	companyVO "recruitscore/internal/domain/company/valueobjects"
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
	"recruitscore/internal/shared/utils"
)

type UpdateCompanyCommand struct {
	CompanyID uint
	ActorID   uint
	Request   dto.UpdateCompanyRequest
}

// UpdateCompanyUseCase lets the verified owner or an admin edit listing
// details. The slug is immutable once assigned; the website domain is
// re-derived whenever the website changes.
type UpdateCompanyUseCase struct {
	companyRepo company.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(
	companyRepo company.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*dto.CompanyResponse, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	comp, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", cmd.CompanyID)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	actor, err := uc.userRepo.FindByID(ctx, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to get actor", "error", err, "actor_id", cmd.ActorID)
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}
	if actor == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !actor.IsAdmin() && !comp.IsOwnedBy(cmd.ActorID) {
		return nil, errors.NewForbiddenError("only the company owner can edit this listing")
	}

	size, err := companyVO.NewCompanySize(cmd.Request.Size)
	if err != nil {
		return nil, errors.NewValidationError("invalid company size", err.Error())
	}

	websiteDomain := utils.ExtractWebsiteDomain(cmd.Request.Website)

	if err := comp.UpdateDetails(
		cmd.Request.Name,
		cmd.Request.Description,
		cmd.Request.Website,
		websiteDomain,
		cmd.Request.LogoURL,
		cmd.Request.Sectors,
		cmd.Request.Locations,
		size,
	); err != nil {
		return nil, errors.NewValidationError("invalid company details", err.Error())
	}

	if err := uc.companyRepo.Update(ctx, comp); err != nil {
		uc.logger.Errorw("failed to update company", "error", err, "company_id", cmd.CompanyID)
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	uc.logger.Infow("company updated", "company_id", comp.ID(), "updated_by", cmd.ActorID)

	return dto.NewCompanyResponse(comp), nil
}
