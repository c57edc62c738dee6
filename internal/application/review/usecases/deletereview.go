package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/review"
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type DeleteReviewCommand struct {
	ReviewID uint
	ActorID  uint
}

// DeleteReviewUseCase removes a review. The author may delete their own;
// admins may delete any. Aggregates are refreshed in the same transaction.
type DeleteReviewUseCase struct {
	reviewRepo  review.Repository
	companyRepo company.Repository
	userRepo    user.Repository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewDeleteReviewUseCase(
	reviewRepo review.Repository,
	companyRepo company.Repository,
	userRepo user.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *DeleteReviewUseCase) Execute(ctx context.Context, cmd DeleteReviewCommand) error {
	if cmd.ActorID == 0 {
		return errors.NewUnauthorizedError("authentication required")
	}

	reviewEntity, err := uc.reviewRepo.FindByID(ctx, cmd.ReviewID)
	if err != nil {
		uc.logger.Errorw("failed to get review", "error", err, "review_id", cmd.ReviewID)
		return fmt.Errorf("failed to get review: %w", err)
	}
	if reviewEntity == nil {
		return errors.NewNotFoundError("review not found")
	}

	if !reviewEntity.IsAuthoredBy(cmd.ActorID) {
		actor, err := uc.userRepo.FindByID(ctx, cmd.ActorID)
		if err != nil {
			uc.logger.Errorw("failed to get actor", "error", err, "actor_id", cmd.ActorID)
			return fmt.Errorf("failed to get actor: %w", err)
		}
		if actor == nil || !actor.IsAdmin() {
			return errors.NewForbiddenError("you can only delete your own reviews")
		}
	}

	comp, err := uc.companyRepo.FindByID(ctx, reviewEntity.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", reviewEntity.CompanyID())
		return fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return errors.NewNotFoundError("company not found")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.Delete(txCtx, cmd.ReviewID); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return refreshCompanyStats(txCtx, uc.reviewRepo, uc.companyRepo, comp)
	})
	if txErr != nil {
		uc.logger.Errorw("review deletion transaction failed", "error", txErr, "review_id", cmd.ReviewID)
		return fmt.Errorf("failed to delete review: %w", txErr)
	}

	uc.logger.Infow("review deleted", "review_id", cmd.ReviewID, "deleted_by", cmd.ActorID)
	return nil
}
