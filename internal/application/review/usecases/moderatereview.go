package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/review/dto"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/review"
	reviewVO "recruitscore/internal/domain/review/valueobjects"
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type ModerateReviewCommand struct {
	ReviewID uint
	ActorID  uint
	Status   string
}

// ModerateReviewUseCase applies an admin moderation decision. Since only
// approved reviews count toward company aggregates, a status change refreshes
// them in the same transaction.
type ModerateReviewUseCase struct {
	reviewRepo  review.Repository
	companyRepo company.Repository
	userRepo    user.Repository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewModerateReviewUseCase(
	reviewRepo review.Repository,
	companyRepo company.Repository,
	userRepo user.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *ModerateReviewUseCase {
	return &ModerateReviewUseCase{
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *ModerateReviewUseCase) Execute(ctx context.Context, cmd ModerateReviewCommand) (*dto.ReviewResponse, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	actor, err := uc.userRepo.FindByID(ctx, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to get actor", "error", err, "actor_id", cmd.ActorID)
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}
	if actor == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !actor.IsAdmin() {
		return nil, errors.NewForbiddenError("admin access required")
	}

	status, err := reviewVO.NewReviewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("invalid review status", err.Error())
	}

	reviewEntity, err := uc.reviewRepo.FindByID(ctx, cmd.ReviewID)
	if err != nil {
		uc.logger.Errorw("failed to get review", "error", err, "review_id", cmd.ReviewID)
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if reviewEntity == nil {
		return nil, errors.NewNotFoundError("review not found")
	}

	comp, err := uc.companyRepo.FindByID(ctx, reviewEntity.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", reviewEntity.CompanyID())
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	if err := reviewEntity.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError("invalid status change", err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.Update(txCtx, reviewEntity); err != nil {
			return fmt.Errorf("failed to update review: %w", err)
		}
		return refreshCompanyStats(txCtx, uc.reviewRepo, uc.companyRepo, comp)
	})
	if txErr != nil {
		uc.logger.Errorw("review moderation transaction failed", "error", txErr, "review_id", cmd.ReviewID)
		return nil, fmt.Errorf("failed to moderate review: %w", txErr)
	}

	uc.logger.Infow("review moderated",
		"review_id", cmd.ReviewID,
		"status", status.String(),
		"moderated_by", cmd.ActorID,
	)

	return dto.NewReviewResponse(reviewEntity), nil
}
