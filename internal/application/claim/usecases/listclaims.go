package usecases

import (
	"context"
	"fmt"

	"recruitscore/internal/application/claim/dto"
	"recruitscore/internal/domain/claim"
	vo "recruitscore/internal/domain/claim/valueobjects"
	"recruitscore/internal/shared/errors"
	"recruitscore/internal/shared/logger"
)

type ListClaimsQuery struct {
	Status    string
	CompanyID *uint
	UserID    *uint
	Page      int
	PageSize  int
}

// ListClaimsUseCase pages through claims for the admin queue, newest first.
type ListClaimsUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewListClaimsUseCase(claimRepo claim.Repository, logger logger.Interface) *ListClaimsUseCase {
	return &ListClaimsUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *ListClaimsUseCase) Execute(ctx context.Context, query ListClaimsQuery) ([]*dto.ClaimResponse, int64, error) {
	filter := claim.Filter{
		CompanyID: query.CompanyID,
		UserID:    query.UserID,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewClaimStatus(query.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError("invalid claim status", err.Error())
		}
		filter.Status = &status
	}

	claims, total, err := uc.claimRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list claims", "error", err)
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}

	return dto.NewClaimResponseList(claims), total, nil
}
