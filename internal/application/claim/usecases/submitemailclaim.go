package usecases

import (
	"context"
	"fmt"
	"time"

	"recruitscore/internal/application/claim/dto"
	"recruitscore/internal/domain/claim"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/goroutine"
	"recruitscore/internal/shared/logger"
)

// ErrEmailDomainMismatch signals that the work email's domain does not match
// the company's registered website domain. Callers surface it alongside a
// hint that the manual verification path is still available.
var ErrEmailDomainMismatch = errors.NewValidationError("email domain doesn't match company website")

type SubmitEmailClaimCommand struct {
	CompanyID uint
	UserID    uint
	Email     string
}

// SubmitEmailClaimUseCase starts the email verification path: it checks the
// claimant's work email against the company's website domain, records a
// pending claim with a fresh token, and mails the verification link.
type SubmitEmailClaimUseCase struct {
	claimRepo   claim.Repository
	companyRepo company.Repository
	notifier    ClaimNotifier
	tokenTTL    time.Duration
	logger      logger.Interface
}

func NewSubmitEmailClaimUseCase(
	claimRepo claim.Repository,
	companyRepo company.Repository,
	notifier ClaimNotifier,
	tokenTTL time.Duration,
	logger logger.Interface,
) *SubmitEmailClaimUseCase {
	return &SubmitEmailClaimUseCase{
		claimRepo:   claimRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

func (uc *SubmitEmailClaimUseCase) Execute(ctx context.Context, cmd SubmitEmailClaimCommand) (*dto.ClaimResponse, error) {
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

	// An outstanding claim blocks resubmission on either path, so this
	// check comes before any email-specific logic.
	hasPending, err := uc.claimRepo.HasPendingClaim(ctx, cmd.CompanyID, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check pending claims", "error", err, "company_id", cmd.CompanyID, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to check pending claims: %w", err)
	}
	if hasPending {
		return nil, errors.NewConflictError("you already have a pending claim for this company")
	}

	if !comp.MatchesEmailDomain(cmd.Email) {
		uc.logger.Infow("email domain mismatch on claim attempt",
			"company_id", cmd.CompanyID,
			"user_id", cmd.UserID,
		)
		return nil, ErrEmailDomainMismatch
	}

	claimEntity, err := claim.NewEmailClaim(cmd.CompanyID, cmd.UserID, cmd.Email, uc.tokenTTL)
	if err != nil {
		return nil, errors.NewValidationError("invalid claim request", err.Error())
	}

	if err := uc.claimRepo.Save(ctx, claimEntity); err != nil {
		// The pending-claim unique index closes the race between the
		// HasPendingClaim check and this insert.
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("you already have a pending claim for this company")
		}
		uc.logger.Errorw("failed to save claim", "error", err, "company_id", cmd.CompanyID, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to save claim: %w", err)
	}

	uc.logger.Infow("email claim submitted",
		"claim_id", claimEntity.ID(),
		"company_id", cmd.CompanyID,
		"user_id", cmd.UserID,
	)

	recipient := claimEntity.EmailUsed()
	token := claimEntity.Token()
	companyName := comp.Name()
	goroutine.SafeGo(uc.logger, "claim-verification-email", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := uc.notifier.SendVerificationEmail(sendCtx, recipient, companyName, token); err != nil {
			uc.logger.Warnw("failed to send verification email", "error", err, "claim_id", claimEntity.ID())
		}
	})

	return dto.NewClaimResponse(claimEntity), nil
}
