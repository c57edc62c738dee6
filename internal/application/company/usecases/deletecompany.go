package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type DeleteCompanyCommand struct {
	CompanyID uint
	ActorID   uint
}

// DeleteCompanyUseCase removes a listing. Admin only: owners cannot delete
// their own listing to dodge bad reviews.
type DeleteCompanyUseCase struct {
	companyRepo company.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(
	companyRepo company.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, cmd DeleteCompanyCommand) error {
	if cmd.ActorID == 0 {
		return errors.NewUnauthorizedError("authentication required")
	}

	actor, err := uc.userRepo.FindByID(ctx, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to get actor", "error", err, "actor_id", cmd.ActorID)
		return fmt.Errorf("failed to get actor: %w", err)
	}
	if actor == nil {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !actor.IsAdmin() {
		return errors.NewForbiddenError("admin access required")
	}

	comp, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", cmd.CompanyID)
		return fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return errors.NewNotFoundError("company not found")
	}

	if err := uc.companyRepo.Delete(ctx, cmd.CompanyID); err != nil {
		uc.logger.Errorw("failed to delete company", "error", err, "company_id", cmd.CompanyID)
		return fmt.Errorf("failed to delete company: %w", err)
	}

	uc.logger.Infow("company deleted", "company_id", cmd.CompanyID, "deleted_by", cmd.ActorID)
	return nil
}
