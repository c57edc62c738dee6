package usecases

import (
	"context"
	"fmt"
	"time"

	"recruitscore/internal/application/claim/dto"
	"recruitscore/internal/domain/claim"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type VerifyClaimTokenCommand struct {
	Token string
}

// VerifyClaimTokenUseCase completes the email verification path. A token for
// a non-pending claim and a token that never existed are indistinguishable to
// the caller: both come back as "invalid or expired". Expiry is evaluated
// here, at presentation time; there is no background sweep.
type VerifyClaimTokenUseCase struct {
	claimRepo   claim.Repository
	companyRepo company.Repository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewVerifyClaimTokenUseCase(
	claimRepo claim.Repository,
	companyRepo company.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *VerifyClaimTokenUseCase {
	return &VerifyClaimTokenUseCase{
		claimRepo:   claimRepo,
		companyRepo: companyRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *VerifyClaimTokenUseCase) Execute(ctx context.Context, cmd VerifyClaimTokenCommand) (*dto.VerifyClaimResult, error) {
	if cmd.Token == "" {
		return nil, errors.NewNotFoundError("invalid or expired verification link")
	}

	claimEntity, err := uc.claimRepo.FindPendingByToken(ctx, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to look up claim by token", "error", err)
		return nil, fmt.Errorf("failed to look up claim: %w", err)
	}
	if claimEntity == nil {
		return nil, errors.NewNotFoundError("invalid or expired verification link")
	}

	if claimEntity.TokenExpired(time.Now()) {
		if err := claimEntity.MarkExpired(); err != nil {
			uc.logger.Errorw("failed to mark claim expired", "error", err, "claim_id", claimEntity.ID())
			return nil, fmt.Errorf("failed to expire claim: %w", err)
		}
		if err := uc.claimRepo.Update(ctx, claimEntity); err != nil {
			uc.logger.Errorw("failed to persist expired claim", "error", err, "claim_id", claimEntity.ID())
			return nil, fmt.Errorf("failed to update claim: %w", err)
		}

		uc.logger.Infow("verification token expired", "claim_id", claimEntity.ID())
		return nil, errors.NewBadRequestError("this verification link has expired")
	}

	comp, err := uc.companyRepo.FindByID(ctx, claimEntity.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to get company", "error", err, "company_id", claimEntity.CompanyID())
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if comp == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	if comp.IsVerified() {
		return nil, errors.NewConflictError("this company has already been claimed and verified")
	}

	// Claim approval and company verification commit together or not at all:
	// an approved claim always has a matching verified company.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := claimEntity.ApproveByVerification(); err != nil {
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
		uc.logger.Errorw("claim verification transaction failed", "error", txErr, "claim_id", claimEntity.ID())
		return nil, fmt.Errorf("failed to verify claim: %w", txErr)
	}

	uc.logger.Infow("claim verified via email token",
		"claim_id", claimEntity.ID(),
		"company_id", comp.ID(),
		"user_id", claimEntity.UserID(),
	)

	return &dto.VerifyClaimResult{
		ClaimID:     claimEntity.ID(),
		CompanyID:   comp.ID(),
		CompanySlug: comp.Slug(),
		CompanyName: comp.Name(),
	}, nil
}
