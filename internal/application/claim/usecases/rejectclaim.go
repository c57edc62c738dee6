package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recruitscore/internal/application/claim/dto"
	"recruitscore/internal/domain/claim"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/goroutine"
	"recruitscore/internal/shared/logger"
)

type RejectClaimCommand struct {
	ClaimID    uint
	ReviewerID uint
	Notes      string
}

// RejectClaimUseCase resolves a pending claim against the claimant. The
// company is untouched; rejection notes are mandatory so the decision can be
// explained to the claimant.
type RejectClaimUseCase struct {
	claimRepo   claim.Repository
	companyRepo company.Repository
	userRepo    user.Repository
	notifier    ClaimNotifier
	logger      logger.Interface
}

func NewRejectClaimUseCase(
	claimRepo claim.Repository,
	companyRepo company.Repository,
	userRepo user.Repository,
	notifier ClaimNotifier,
	logger logger.Interface,
) *RejectClaimUseCase {
	return &RejectClaimUseCase{
		claimRepo:   claimRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *RejectClaimUseCase) Execute(ctx context.Context, cmd RejectClaimCommand) (*dto.ClaimResponse, error) {
	if cmd.ReviewerID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	reviewer, err := uc.userRepo.FindByID(ctx, cmd.ReviewerID)
	if err != nil {
		uc.logger.Errorw("failed to get reviewer", "error", err, "reviewer_id", cmd.ReviewerID)
		return nil, fmt.Errorf("failed to get reviewer: %w", err)
	}
	if reviewer == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !reviewer.IsAdmin() {
		return nil, errors.NewForbiddenError("admin access required")
	}

	if strings.TrimSpace(cmd.Notes) == "" {
		return nil, errors.NewValidationError("rejection notes are required")
	}

	claimEntity, err := uc.claimRepo.FindByID(ctx, cmd.ClaimID)
	if err != nil {
		uc.logger.Errorw("failed to get claim", "error", err, "claim_id", cmd.ClaimID)
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	if claimEntity == nil {
		return nil, errors.NewNotFoundError("claim not found")
	}

	if claimEntity.Status().IsTerminal() {
		return nil, errors.NewConflictError("claim has already been resolved", claimEntity.Status().String())
	}

	if err := claimEntity.Reject(cmd.ReviewerID, cmd.Notes); err != nil {
		return nil, errors.NewConflictError("claim has already been resolved", err.Error())
	}

	if err := uc.claimRepo.Update(ctx, claimEntity); err != nil {
		uc.logger.Errorw("failed to update claim", "error", err, "claim_id", cmd.ClaimID)
		return nil, fmt.Errorf("failed to update claim: %w", err)
	}

	uc.logger.Infow("claim rejected by admin",
		"claim_id", claimEntity.ID(),
		"company_id", claimEntity.CompanyID(),
		"claimant_id", claimEntity.UserID(),
		"reviewed_by", cmd.ReviewerID,
	)

	companyName := ""
	if comp, err := uc.companyRepo.FindByID(ctx, claimEntity.CompanyID()); err == nil && comp != nil {
		companyName = comp.Name()
	}

	claimantID := claimEntity.UserID()
	notes := cmd.Notes
	goroutine.SafeGo(uc.logger, "claim-decision-email", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		claimant, err := uc.userRepo.FindByID(sendCtx, claimantID)
		if err != nil || claimant == nil {
			uc.logger.Warnw("failed to get claimant for decision email", "error", err, "user_id", claimantID)
			return
		}
		if err := uc.notifier.SendDecisionEmail(sendCtx, claimant.Email(), companyName, false, notes); err != nil {
			uc.logger.Warnw("failed to send decision email", "error", err, "claim_id", claimEntity.ID())
		}
	})

	return dto.NewClaimResponse(claimEntity), nil
}
