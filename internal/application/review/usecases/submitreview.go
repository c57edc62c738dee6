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

type SubmitReviewCommand struct {
	CompanyID uint
	UserID    uint
	Request   dto.SubmitReviewRequest
}

// SubmitReviewUseCase records a review and refreshes the company's
// denormalized rating aggregates in the same transaction, so listing pages
// never show a count that disagrees with the reviews underneath it.
type SubmitReviewUseCase struct {
	reviewRepo  review.Repository
	companyRepo company.Repository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewSubmitReviewUseCase(
	reviewRepo review.Repository,
	companyRepo company.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *SubmitReviewUseCase) Execute(ctx context.Context, cmd SubmitReviewCommand) (*dto.ReviewResponse, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("you must be logged in to leave a review")
	}

	comp, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", cmd.CompanyID)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	if comp.IsOwnedBy(cmd.UserID) {
		return nil, errors.NewForbiddenError("you cannot review your own company")
	}

	existing, err := uc.reviewRepo.FindByCompanyAndUser(ctx, cmd.CompanyID, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check existing review", "error", err, "company_id", cmd.CompanyID, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("you have already reviewed this company")
	}

	reviewerType, err := reviewVO.NewReviewerType(cmd.Request.ReviewerType)
	if err != nil {
		return nil, errors.NewValidationError("invalid reviewer type", err.Error())
	}

	reviewEntity, err := review.NewReview(
		cmd.CompanyID,
		cmd.UserID,
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
	)
	if err != nil {
		return nil, errors.NewValidationError("invalid review", err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.Save(txCtx, reviewEntity); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("you have already reviewed this company")
			}
			return fmt.Errorf("failed to save review: %w", err)
		}
		return refreshCompanyStats(txCtx, uc.reviewRepo, uc.companyRepo, comp)
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return nil, txErr
		}
		uc.logger.Errorw("review submission transaction failed", "error", txErr, "company_id", cmd.CompanyID)
		return nil, fmt.Errorf("failed to submit review: %w", txErr)
	}

	uc.logger.Infow("review submitted",
		"review_id", reviewEntity.ID(),
		"company_id", cmd.CompanyID,
		"user_id", cmd.UserID,
		"overall_rating", reviewEntity.OverallRating(),
	)

	return dto.NewReviewResponse(reviewEntity), nil
}

// refreshCompanyStats recomputes the approved-review aggregates and writes
// them onto the company row. Must run inside the same transaction as the
// review mutation that made them stale.
func refreshCompanyStats(ctx context.Context, reviewRepo review.Repository, companyRepo company.Repository, comp *company.Company) error {
	stats, err := reviewRepo.CompanyStats(ctx, comp.ID())
	if err != nil {
		return fmt.Errorf("failed to compute review stats: %w", err)
	}
	comp.ApplyReviewStats(stats.AverageRating, stats.ReviewCount)
	if err := companyRepo.Update(ctx, comp); err != nil {
		return fmt.Errorf("failed to update company stats: %w", err)
	}
	return nil
}
