package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/review/dto"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/review"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type RespondToReviewCommand struct {
	ReviewID     uint
	ActorID      uint
	ResponseText string
}

// RespondToReviewUseCase posts a public owner reply under a review. Only the
// verified owner of the reviewed company may respond.
type RespondToReviewUseCase struct {
	reviewRepo  review.Repository
	companyRepo company.Repository
	logger      logger.Interface
}

func NewRespondToReviewUseCase(
	reviewRepo review.Repository,
	companyRepo company.Repository,
	logger logger.Interface,
) *RespondToReviewUseCase {
	return &RespondToReviewUseCase{
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *RespondToReviewUseCase) Execute(ctx context.Context, cmd RespondToReviewCommand) (*dto.OwnerResponse, error) {
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

	comp, err := uc.companyRepo.FindByID(ctx, reviewEntity.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", reviewEntity.CompanyID())
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	if !comp.IsOwnedBy(cmd.ActorID) {
		return nil, errors.NewForbiddenError("only the company owner can respond to reviews")
	}

	response, err := review.NewResponse(cmd.ReviewID, cmd.ActorID, cmd.ResponseText)
	if err != nil {
		return nil, errors.NewValidationError("invalid response", err.Error())
	}

	if err := uc.reviewRepo.SaveResponse(ctx, response); err != nil {
		uc.logger.Errorw("failed to save response", "error", err, "review_id", cmd.ReviewID)
		return nil, fmt.Errorf("failed to save response: %w", err)
	}

	uc.logger.Infow("owner responded to review",
		"review_id", cmd.ReviewID,
		"company_id", comp.ID(),
		"user_id", cmd.ActorID,
	)

	return dto.NewOwnerResponse(response), nil
}
