package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/company/dto"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type TransferOwnershipCommand struct {
	CompanyID     uint
	ActorID       uint
	NewOwnerEmail string
}

// TransferOwnershipUseCase moves a verified company to another registered
// user, looked up by email. Only the current owner or an admin may transfer.
type TransferOwnershipUseCase struct {
	companyRepo company.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewTransferOwnershipUseCase(
	companyRepo company.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *TransferOwnershipUseCase {
	return &TransferOwnershipUseCase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *TransferOwnershipUseCase) Execute(ctx context.Context, cmd TransferOwnershipCommand) (*dto.CompanyResponse, error) {
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
		return nil, errors.NewForbiddenError("only the company owner can transfer ownership")
	}

	newOwner, err := uc.userRepo.FindByEmail(ctx, cmd.NewOwnerEmail)
	if err != nil {
		uc.logger.Errorw("failed to look up new owner", "error", err)
		return nil, fmt.Errorf("failed to look up new owner: %w", err)
	}
	if newOwner == nil {
		return nil, errors.NewNotFoundError("no user found with that email address")
	}

	if err := comp.TransferTo(newOwner.ID()); err != nil {
		return nil, errors.NewValidationError("cannot transfer ownership", err.Error())
	}

	if err := uc.companyRepo.Update(ctx, comp); err != nil {
		uc.logger.Errorw("failed to update company", "error", err, "company_id", cmd.CompanyID)
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	uc.logger.Infow("company ownership transferred",
		"company_id", comp.ID(),
		"from_user", cmd.ActorID,
		"to_user", newOwner.ID(),
	)

	return dto.NewCompanyResponse(comp), nil
}
