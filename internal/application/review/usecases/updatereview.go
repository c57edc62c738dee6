package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/review/dto"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/review"
	reviewVO "recruitscore/internal/domain/review/valueobjects"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type UpdateReviewCommand struct {
	ReviewID uint
	ActorID  uint
	Request  dto.UpdateReviewRequest
}

// UpdateReviewUseCase lets the author revise their review. The company's
// aggregates are refreshed in the same transaction since the overall rating
// may have changed.
type UpdateReviewUseCase struct {
	reviewRepo  review.Repository
	companyRepo company.Repository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewUpdateReviewUseCase(
	reviewRepo review.Repository,
	companyRepo company.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *UpdateReviewUseCase) Execute(ctx context.Context, cmd UpdateReviewCommand) (*dto.ReviewResponse, error) {
	if cmd.ActorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	reviewEntity, err := uc.reviewRepo.FindByID(ctx, cmd.ReviewID)
	if err != nil {
		uc.logger.Errorw("failed to get review", "error", err, "review_id", cmd.ReviewID)
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if reviewEntity == nil {
		return nil, errors.NewNotFoundError("review not found")
	}

	if !reviewEntity.IsAuthoredBy(cmd.ActorID) {
		return nil, errors.NewForbiddenError("you can only edit your own reviews")
	}

	reviewerType, err := reviewVO.NewReviewerType(cmd.Request.ReviewerType)
	if err != nil {
		return nil, errors.NewValidationError("invalid reviewer type", err.Error())
	}

	if err := reviewEntity.UpdateContent(
		review.Ratings{
			Communication: cmd.Request.RatingCommunication,
			CandidateCare: cmd.Request.RatingCandidateCare,
			JobQuality:    cmd.Request.RatingJobQuality,
			Speed:         cmd.Request.RatingSpeed,
		},
		cmd.Request.Pros,
		cmd.Request.Cons,
		cmd.Request.Summary,
		reviewerType,
	); err != nil {
		return nil, errors.NewValidationError("invalid review", err.Error())
	}

	comp, err := uc.companyRepo.FindByID(ctx, reviewEntity.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", reviewEntity.CompanyID())
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.Update(txCtx, reviewEntity); err != nil {
			return fmt.Errorf("failed to update review: %w", err)
		}
		return refreshCompanyStats(txCtx, uc.reviewRepo, uc.companyRepo, comp)
	})
	if txErr != nil {
		uc.logger.Errorw("review update transaction failed", "error", txErr, "review_id", cmd.ReviewID)
		return nil, fmt.Errorf("failed to update review: %w", txErr)
	}

	uc.logger.Infow("review updated", "review_id", cmd.ReviewID, "user_id", cmd.ActorID)

	return dto.NewReviewResponse(reviewEntity), nil
}
