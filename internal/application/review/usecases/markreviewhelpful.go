package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/review/dto"
	"recruitscore/internal/domain/review"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type MarkReviewHelpfulCommand struct {
	ReviewID uint
	ActorID  uint
}

// MarkReviewHelpfulUseCase bumps a review's helpful counter.
type MarkReviewHelpfulUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewMarkReviewHelpfulUseCase(reviewRepo review.Repository, logger logger.Interface) *MarkReviewHelpfulUseCase {
	return &MarkReviewHelpfulUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *MarkReviewHelpfulUseCase) Execute(ctx context.Context, cmd MarkReviewHelpfulCommand) (*dto.ReviewResponse, error) {
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

	if reviewEntity.IsAuthoredBy(cmd.ActorID) {
		return nil, errors.NewValidationError("you cannot mark your own review as helpful")
	}

	reviewEntity.MarkHelpful()

	if err := uc.reviewRepo.Update(ctx, reviewEntity); err != nil {
		uc.logger.Errorw("failed to update review", "error", err, "review_id", cmd.ReviewID)
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	return dto.NewReviewResponse(reviewEntity), nil
}
