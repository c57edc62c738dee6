package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitscore/internal/domain/claim"
	vo "recruitscore/internal/domain/claim/valueobjects"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/shared/errors"
)

func pendingEmailClaim(t *testing.T, id uint, expiresAt time.Time) *claim.ClaimRequest {
	t.Helper()

	c, err := claim.ReconstructClaimRequest(
		id,
		1,
		2,
		vo.VerificationEmail,
		"jane@acme.com",
		"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		&expiresAt,
		"", "", "",
		"",
		"",
		vo.StatusPending,
		"",
		nil,
		nil,
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return c
}

func TestVerifyClaimTokenUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("approves claim and verifies company atomically", func(t *testing.T) {
		claimEntity := pendingEmailClaim(t, 10, time.Now().Add(time.Hour))
		comp := testCompany(t, 1, "acme.com", false, nil)

		var updatedClaim *claim.ClaimRequest
		var updatedCompany *company.Company
		claimRepo := &mockClaimRepository{
			FindPendingByTokenFunc: func(ctx context.Context, token string) (*claim.ClaimRequest, error) {
				assert.Equal(t, claimEntity.Token(), token)
				return claimEntity, nil
			},
			UpdateFunc: func(ctx context.Context, c *claim.ClaimRequest) error {
				updatedClaim = c
				return nil
			},
		}
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return comp, nil
			},
			UpdateFunc: func(ctx context.Context, c *company.Company) error {
				updatedCompany = c
				return nil
			},
		}

		txCalled := false
		txMgr := &mockTxManager{
			RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				txCalled = true
				return fn(ctx)
			},
		}

		useCase := NewVerifyClaimTokenUseCase(claimRepo, companyRepo, txMgr, &mockLogger{})
		result, err := useCase.Execute(ctx, VerifyClaimTokenCommand{Token: claimEntity.Token()})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint(10), result.ClaimID)
		assert.Equal(t, "acme-recruiting", result.CompanySlug)
		assert.True(t, txCalled)

		require.NotNil(t, updatedClaim)
		assert.Equal(t, vo.StatusApproved, updatedClaim.Status())
		assert.Nil(t, updatedClaim.ReviewedBy())

		require.NotNil(t, updatedCompany)
		assert.True(t, updatedCompany.IsVerified())
		require.NotNil(t, updatedCompany.OwnerID())
		assert.Equal(t, uint(2), *updatedCompany.OwnerID())
		assert.NotNil(t, updatedCompany.VerifiedAt())
	})

	t.Run("unknown token is indistinguishable from resolved one", func(t *testing.T) {
		claimRepo := &mockClaimRepository{
			FindPendingByTokenFunc: func(ctx context.Context, token string) (*claim.ClaimRequest, error) {
				return nil, nil
			},
		}

		useCase := NewVerifyClaimTokenUseCase(claimRepo, &mockCompanyRepository{}, &mockTxManager{}, &mockLogger{})
		_, err := useCase.Execute(ctx, VerifyClaimTokenCommand{Token: "deadbeef"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "invalid or expired verification link")
	})

	t.Run("empty token", func(t *testing.T) {
		useCase := NewVerifyClaimTokenUseCase(&mockClaimRepository{}, &mockCompanyRepository{}, &mockTxManager{}, &mockLogger{})
		_, err := useCase.Execute(ctx, VerifyClaimTokenCommand{})

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("expired token marks claim expired", func(t *testing.T) {
		claimEntity := pendingEmailClaim(t, 10, time.Now().Add(-time.Minute))

		var updatedClaim *claim.ClaimRequest
		claimRepo := &mockClaimRepository{
			FindPendingByTokenFunc: func(ctx context.Context, token string) (*claim.ClaimRequest, error) {
				return claimEntity, nil
			},
			UpdateFunc: func(ctx context.Context, c *claim.ClaimRequest) error {
				updatedClaim = c
				return nil
			},
		}

		useCase := NewVerifyClaimTokenUseCase(claimRepo, &mockCompanyRepository{}, &mockTxManager{}, &mockLogger{})
		_, err := useCase.Execute(ctx, VerifyClaimTokenCommand{Token: claimEntity.Token()})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
		assert.Contains(t, appErr.Message, "verification link has expired")

		require.NotNil(t, updatedClaim)
		assert.Equal(t, vo.StatusExpired, updatedClaim.Status())
	})

	t.Run("company verified by someone else meanwhile", func(t *testing.T) {
		claimEntity := pendingEmailClaim(t, 10, time.Now().Add(time.Hour))
		ownerID := uint(99)
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", true, &ownerID), nil
			},
		}
		claimRepo := &mockClaimRepository{
			FindPendingByTokenFunc: func(ctx context.Context, token string) (*claim.ClaimRequest, error) {
				return claimEntity, nil
			},
		}

		useCase := NewVerifyClaimTokenUseCase(claimRepo, companyRepo, &mockTxManager{}, &mockLogger{})
		_, err := useCase.Execute(ctx, VerifyClaimTokenCommand{Token: claimEntity.Token()})

		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("transaction failure surfaces error", func(t *testing.T) {
		claimEntity := pendingEmailClaim(t, 10, time.Now().Add(time.Hour))
		claimRepo := &mockClaimRepository{
			FindPendingByTokenFunc: func(ctx context.Context, token string) (*claim.ClaimRequest, error) {
				return claimEntity, nil
			},
			UpdateFunc: func(ctx context.Context, c *claim.ClaimRequest) error {
				return assert.AnError
			},
		}
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", false, nil), nil
			},
		}

		useCase := NewVerifyClaimTokenUseCase(claimRepo, companyRepo, &mockTxManager{}, &mockLogger{})
		_, err := useCase.Execute(ctx, VerifyClaimTokenCommand{Token: claimEntity.Token()})

		require.Error(t, err)
		assert.False(t, errors.IsAppError(err))
	})
}
