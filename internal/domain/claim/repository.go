package claim

import (
	"context"

	vo "recruitscore/internal/domain/claim/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, c *ClaimRequest) error
	Update(ctx context.Context, c *ClaimRequest) error
	FindByID(ctx context.Context, id uint) (*ClaimRequest, error)
	// FindPendingByToken looks up a claim by exact token match with
	// status=pending only: a token attached to a resolved claim is not
	// found, which is what makes tokens single-use by state.
	FindPendingByToken(ctx context.Context, token string) (*ClaimRequest, error)
	HasPendingClaim(ctx context.Context, companyID, userID uint) (bool, error)
	List(ctx context.Context, filter Filter) ([]*ClaimRequest, int64, error)
}

type Filter struct {
	Status    *vo.ClaimStatus
	CompanyID *uint
	UserID    *uint
	Page      int
	PageSize  int
}
