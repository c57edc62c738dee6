package usecases

import (
	"context"
	"fmt"
	"time"

	"recruitscore/internal/application/claim/dto"
	"recruitscore/internal/domain/claim"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/goroutine"
	"recruitscore/internal/shared/logger"
)

type ApproveClaimCommand struct {
	ClaimID    uint
	ReviewerID uint
	Notes      string
}

// ApproveClaimUseCase resolves a pending claim in the claimant's favor by
// admin adjudication. Approval and company verification commit atomically,
// and the audit trail records who decided, when, and why.
type ApproveClaimUseCase struct {
	claimRepo   claim.Repository
	companyRepo company.Repository
	userRepo    user.Repository
	txMgr       TransactionManager
	notifier    ClaimNotifier
	logger      logger.Interface
}

func NewApproveClaimUseCase(
	claimRepo claim.Repository,
	companyRepo company.Repository,
	userRepo user.Repository,
	txMgr TransactionManager,
	notifier ClaimNotifier,
	logger logger.Interface,
) *ApproveClaimUseCase {
	return &ApproveClaimUseCase{
		claimRepo:   claimRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		txMgr:       txMgr,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ApproveClaimUseCase) Execute(ctx context.Context, cmd ApproveClaimCommand) (*dto.ClaimResponse, error) {
	reviewer, err := uc.requireAdmin(ctx, cmd.ReviewerID)
	if err != nil {
		return nil, err
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

	comp, err := uc.companyRepo.FindByID(ctx, claimEntity.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", claimEntity.CompanyID())
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := claimEntity.Approve(cmd.ReviewerID, cmd.Notes); err != nil {
			return errors.NewConflictError("claim has already been resolved", err.Error())
		}
		if err := comp.Verify(claimEntity.UserID()); err != nil {
			return errors.NewConflictError("this company has already been claimed and verified", err.Error())
		}
		if err := uc.claimRepo.Update(txCtx, claimEntity); err != nil {
			return fmt.Errorf("failed to update claim: %w", err)
		}
		if err := uc.companyRepo.Update(txCtx, comp); err != nil {
			return fmt.Errorf("failed to update company: %w", err)
		}
		return nil
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return nil, txErr
		}
		uc.logger.Errorw("claim approval transaction failed", "error", txErr, "claim_id", cmd.ClaimID)
		return nil, fmt.Errorf("failed to approve claim: %w", txErr)
	}

	uc.logger.Infow("claim approved by admin",
		"claim_id", claimEntity.ID(),
		"company_id", comp.ID(),
		"claimant_id", claimEntity.UserID(),
		"reviewed_by", reviewer.ID(),
	)

	uc.notifyDecision(claimEntity, comp.Name(), true, cmd.Notes)

	return dto.NewClaimResponse(claimEntity), nil
}

func (uc *ApproveClaimUseCase) requireAdmin(ctx context.Context, reviewerID uint) (*user.User, error) {
	if reviewerID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	reviewer, err := uc.userRepo.FindByID(ctx, reviewerID)
	if err != nil {
		uc.logger.Errorw("failed to get reviewer", "error", err, "reviewer_id", reviewerID)
		return nil, fmt.Errorf("failed to get reviewer: %w", err)
	}
	if reviewer == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !reviewer.IsAdmin() {
		return nil, errors.NewForbiddenError("admin access required")
	}
	return reviewer, nil
}

func (uc *ApproveClaimUseCase) notifyDecision(claimEntity *claim.ClaimRequest, companyName string, approved bool, notes string) {
	claimantID := claimEntity.UserID()
	goroutine.SafeGo(uc.logger, "claim-decision-email", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		claimant, err := uc.userRepo.FindByID(sendCtx, claimantID)
		if err != nil || claimant == nil {
			uc.logger.Warnw("failed to get claimant for decision email", "error", err, "user_id", claimantID)
			return
		}
		if err := uc.notifier.SendDecisionEmail(sendCtx, claimant.Email(), companyName, approved, notes); err != nil {
			uc.logger.Warnw("failed to send decision email", "error", err, "claim_id", claimEntity.ID())
		}
	})
}
