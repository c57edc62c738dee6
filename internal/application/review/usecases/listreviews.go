package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/review/dto"
	"recruitscore/internal/domain/review"
	reviewVO "recruitscore/internal/domain/review/valueobjects"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type ListReviewsQuery struct {
	CompanyID *uint
	UserID    *uint
	Status    string
	// IncludeAll lifts the approved-only default for the moderation queue.
	IncludeAll bool
	Page       int
	PageSize   int
	SortBy     string
}

// ListReviewsUseCase pages reviews with owner replies attached. Public
// callers only ever see approved reviews; admins can list any status.
type ListReviewsUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewListReviewsUseCase(reviewRepo review.Repository, logger logger.Interface) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *ListReviewsUseCase) Execute(ctx context.Context, query ListReviewsQuery) ([]*dto.ReviewResponse, int64, error) {
	filter := review.Filter{
		CompanyID: query.CompanyID,
		UserID:    query.UserID,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
	}

	switch {
	case query.Status != "":
		status, err := reviewVO.NewReviewStatus(query.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid review status", err.Error())
		}
		filter.Status = &status
	case !query.IncludeAll:
		approved := reviewVO.StatusApproved
		filter.Status = &approved
	}

	reviews, total, err := uc.reviewRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reviews", "error", err)
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviewIDs := make([]uint, 0, len(reviews))
	for _, r := range reviews {
		reviewIDs = append(reviewIDs, r.ID())
	}

	responses := map[uint][]*review.Response{}
	if len(reviewIDs) > 0 {
		responses, err = uc.reviewRepo.ResponsesByReviewIDs(ctx, reviewIDs)
		if err != nil {
			uc.logger.Errorw("failed to load review responses", "error", err)
			return nil, 0, fmt.Errorf("failed to load review responses: %w", err)
		}
	}

	return dto.NewReviewResponseList(reviews, responses), total, nil
}
