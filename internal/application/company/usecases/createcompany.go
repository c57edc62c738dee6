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

// maxSlugAttempts bounds the suffix search when a name collides.
const maxSlugAttempts = 50

type CreateCompanyCommand struct {
	ActorID uint
	Request dto.CreateCompanyRequest
}

// CreateCompanyUseCase creates an unverified listing. Listings are seeded by
// admins; ownership is established later through the claim flow.
type CreateCompanyUseCase struct {
	companyRepo company.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(
	companyRepo company.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*dto.CompanyResponse, error) {
	if err := uc.requireAdmin(ctx, cmd.ActorID); err != nil {
		return nil, err
	}

	size, err := companyVO.NewCompanySize(cmd.Request.Size)
	if err != nil {
		return nil, errors.NewValidationError("invalid company size", err.Error())
	}

	slug, err := uc.uniqueSlug(ctx, cmd.Request.Name)
	if err != nil {
		return nil, err
	}

	websiteDomain := utils.ExtractWebsiteDomain(cmd.Request.Website)

	comp, err := company.NewCompany(
		cmd.Request.Name,
		slug,
		cmd.Request.Description,
		cmd.Request.Website,
		websiteDomain,
		cmd.Request.Sectors,
		cmd.Request.Locations,
		size,
	)
	if err != nil {
		return nil, errors.NewValidationError("invalid company", err.Error())
	}

	if err := uc.companyRepo.Save(ctx, comp); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a company with this slug already exists", slug)
		}
		uc.logger.Errorw("failed to save company", "error", err, "name", cmd.Request.Name)
		return nil, fmt.Errorf("failed to save company: %w", err)
	}

	uc.logger.Infow("company created", "company_id", comp.ID(), "slug", comp.Slug(), "created_by", cmd.ActorID)

	return dto.NewCompanyResponse(comp), nil
}

func (uc *CreateCompanyUseCase) requireAdmin(ctx context.Context, actorID uint) error {
	if actorID == 0 {
		return errors.NewUnauthorizedError("authentication required")
	}
	actor, err := uc.userRepo.FindByID(ctx, actorID)
	if err != nil {
		uc.logger.Errorw("failed to get actor", "error", err, "actor_id", actorID)
		return fmt.Errorf("failed to get actor: %w", err)
	}
	if actor == nil {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !actor.IsAdmin() {
		return errors.NewForbiddenError("admin access required")
	}
	return nil
}

func (uc *CreateCompanyUseCase) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := utils.GenerateSlug(name)
	if base == "" {
		return "", errors.NewValidationError("company name produces an empty slug")
	}

	slug := base
	for i := 2; i <= maxSlugAttempts; i++ {
		existing, err := uc.companyRepo.FindBySlug(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if existing == nil {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return "", errors.NewConflictError("could not generate a unique slug", base)
}
