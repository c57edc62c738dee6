package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/claim/dto"
	"recruitscore/internal/domain/claim"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type GetClaimQuery struct {
	ClaimID     uint
	RequesterID uint
	IsAdmin     bool
}

// GetClaimUseCase fetches one claim. Non-admins can only see their own.
type GetClaimUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewGetClaimUseCase(claimRepo claim.Repository, logger logger.Interface) *GetClaimUseCase {
	return &GetClaimUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *GetClaimUseCase) Execute(ctx context.Context, query GetClaimQuery) (*dto.ClaimResponse, error) {
	claimEntity, err := uc.claimRepo.FindByID(ctx, query.ClaimID)
	if err != nil {
		uc.logger.Errorw("failed to get claim", "error", err, "claim_id", query.ClaimID)
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	if claimEntity == nil {
		return nil, errors.NewNotFoundError("claim not found")
	}

	if !query.IsAdmin && claimEntity.UserID() != query.RequesterID {
		return nil, errors.NewForbiddenError("you can only view your own claims")
	}

	return dto.NewClaimResponse(claimEntity), nil
}
