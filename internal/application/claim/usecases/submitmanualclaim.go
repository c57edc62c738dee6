package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/claim/dto"
	"recruitscore/internal/domain/claim"
	vo "recruitscore/internal/domain/claim/valueobjects"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type SubmitManualClaimCommand struct {
	CompanyID   uint
	UserID      uint
	FullName    string
	JobTitle    string
	LinkedinURL string
	ProofType   string
	ProofText   string
}

// SubmitManualClaimUseCase records an evidence-based claim for admin review.
// It is the fallback when the claimant cannot receive email at the company's
// domain.
type SubmitManualClaimUseCase struct {
	claimRepo   claim.Repository
	companyRepo company.Repository
	logger      logger.Interface
}

func NewSubmitManualClaimUseCase(
	claimRepo claim.Repository,
	companyRepo company.Repository,
	logger logger.Interface,
) *SubmitManualClaimUseCase {
	return &SubmitManualClaimUseCase{
		claimRepo:   claimRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *SubmitManualClaimUseCase) Execute(ctx context.Context, cmd SubmitManualClaimCommand) (*dto.ClaimResponse, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("you must be logged in to claim a company")
	}

	comp, err := uc.companyRepo.FindByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", cmd.CompanyID)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	if comp.IsVerified() {
		return nil, errors.NewConflictError("this company has already been claimed and verified")
	}

	hasPending, err := uc.claimRepo.HasPendingClaim(ctx, cmd.CompanyID, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check pending claims", "error", err, "company_id", cmd.CompanyID, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to check pending claims: %w", err)
	}
	if hasPending {
		return nil, errors.NewConflictError("you already have a pending claim for this company")
	}

	proofType, err := vo.NewProofType(cmd.ProofType)
	if err != nil {
		return nil, errors.NewValidationError("invalid proof type", err.Error())
	}

	claimEntity, err := claim.NewManualClaim(
		cmd.CompanyID,
		cmd.UserID,
		cmd.FullName,
		cmd.JobTitle,
		cmd.LinkedinURL,
		proofType,
		cmd.ProofText,
	)
	if err != nil {
		return nil, errors.NewValidationError("invalid claim request", err.Error())
	}

	if err := uc.claimRepo.Save(ctx, claimEntity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("you already have a pending claim for this company")
		}
		uc.logger.Errorw("failed to save claim", "error", err, "company_id", cmd.CompanyID, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to save claim: %w", err)
	}

	uc.logger.Infow("manual claim submitted for review",
		"claim_id", claimEntity.ID(),
		"company_id", cmd.CompanyID,
		"user_id", cmd.UserID,
	)

	return dto.NewClaimResponse(claimEntity), nil
}
