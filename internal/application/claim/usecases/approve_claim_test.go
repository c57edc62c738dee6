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
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/errors"
)

func testUser(t *testing.T, id uint, email string, isAdmin bool) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, email, "Test User", isAdmin, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func pendingManualClaim(t *testing.T, id uint) *claim.ClaimRequest {
	t.Helper()
	c, err := claim.ReconstructClaimRequest(
		id,
		1,
		2,
		vo.VerificationManual,
		"", "", nil,
		"Jane Doe",
		"Head of Talent",
		"https://linkedin.com/in/janedoe",
		vo.ProofCompaniesHouse,
		"Listed as director",
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

func resolvedClaim(t *testing.T, id uint, status vo.ClaimStatus) *claim.ClaimRequest {
	t.Helper()
	reviewedBy := uint(5)
	reviewedAt := time.Now().Add(-time.Minute)
	c, err := claim.ReconstructClaimRequest(
		id,
		1,
		2,
		vo.VerificationManual,
		"", "", nil,
		"Jane Doe",
		"Head of Talent",
		"https://linkedin.com/in/janedoe",
		vo.ProofCompaniesHouse,
		"Listed as director",
		status,
		"resolved earlier",
		&reviewedBy,
		&reviewedAt,
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Minute),
	)
	require.NoError(t, err)
	return c
}

func adminUserRepo(t *testing.T, adminID uint) *mockUserRepository {
	t.Helper()
	return &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == adminID {
				return testUser(t, adminID, "admin@recruitscore.io", true), nil
			}
			return testUser(t, id, "claimant@acme.com", false), nil
		},
	}
}

func TestApproveClaimUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("approves claim and verifies company with audit trail", func(t *testing.T) {
		claimEntity := pendingManualClaim(t, 10)
		comp := testCompany(t, 1, "acme.com", false, nil)

		var updatedClaim *claim.ClaimRequest
		var updatedCompany *company.Company
		claimRepo := &mockClaimRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*claim.ClaimRequest, error) {
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

		useCase := NewApproveClaimUseCase(claimRepo, companyRepo, adminUserRepo(t, 5), &mockTxManager{}, &mockClaimNotifier{}, &mockLogger{})
		resp, err := useCase.Execute(ctx, ApproveClaimCommand{ClaimID: 10, ReviewerID: 5, Notes: "Companies House checks out"})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "approved", resp.Status)
		assert.Equal(t, "Companies House checks out", resp.AdminNotes)
		require.NotNil(t, resp.ReviewedBy)
		assert.Equal(t, uint(5), *resp.ReviewedBy)
		assert.NotNil(t, resp.ReviewedAt)

		require.NotNil(t, updatedClaim)
		require.NotNil(t, updatedCompany)
		assert.True(t, updatedCompany.IsVerified())
		require.NotNil(t, updatedCompany.OwnerID())
		assert.Equal(t, uint(2), *updatedCompany.OwnerID())
	})

	t.Run("approval without notes is allowed", func(t *testing.T) {
		claimEntity := pendingManualClaim(t, 10)
		claimRepo := &mockClaimRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*claim.ClaimRequest, error) {
				return claimEntity, nil
			},
		}
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", false, nil), nil
			},
		}

		useCase := NewApproveClaimUseCase(claimRepo, companyRepo, adminUserRepo(t, 5), &mockTxManager{}, &mockClaimNotifier{}, &mockLogger{})
		resp, err := useCase.Execute(ctx, ApproveClaimCommand{ClaimID: 10, ReviewerID: 5})

		require.NoError(t, err)
		assert.Equal(t, "approved", resp.Status)
		assert.Empty(t, resp.AdminNotes)
	})

	t.Run("anonymous reviewer", func(t *testing.T) {
		useCase := NewApproveClaimUseCase(&mockClaimRepository{}, &mockCompanyRepository{}, &mockUserRepository{}, &mockTxManager{}, &mockClaimNotifier{}, &mockLogger{})
		_, err := useCase.Execute(ctx, ApproveClaimCommand{ClaimID: 10})

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("non-admin reviewer is forbidden", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return testUser(t, id, "someone@acme.com", false), nil
			},
		}

		useCase := NewApproveClaimUseCase(&mockClaimRepository{}, &mockCompanyRepository{}, userRepo, &mockTxManager{}, &mockClaimNotifier{}, &mockLogger{})
		_, err := useCase.Execute(ctx, ApproveClaimCommand{ClaimID: 10, ReviewerID: 3})

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("claim not found", func(t *testing.T) {
		claimRepo := &mockClaimRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*claim.ClaimRequest, error) {
				return nil, nil
			},
		}

		useCase := NewApproveClaimUseCase(claimRepo, &mockCompanyRepository{}, adminUserRepo(t, 5), &mockTxManager{}, &mockClaimNotifier{}, &mockLogger{})
		_, err := useCase.Execute(ctx, ApproveClaimCommand{ClaimID: 404, ReviewerID: 5})

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("already resolved claim is a conflict", func(t *testing.T) {
		for _, status := range []vo.ClaimStatus{vo.StatusApproved, vo.StatusRejected, vo.StatusExpired} {
			t.Run(status.String(), func(t *testing.T) {
				claimRepo := &mockClaimRepository{
					FindByIDFunc: func(ctx context.Context, id uint) (*claim.ClaimRequest, error) {
						return resolvedClaim(t, 10, status), nil
					},
				}

				useCase := NewApproveClaimUseCase(claimRepo, &mockCompanyRepository{}, adminUserRepo(t, 5), &mockTxManager{}, &mockClaimNotifier{}, &mockLogger{})
				_, err := useCase.Execute(ctx, ApproveClaimCommand{ClaimID: 10, ReviewerID: 5})

				assert.True(t, errors.IsConflictError(err))
			})
		}
	})

	t.Run("company already verified rolls back", func(t *testing.T) {
		claimEntity := pendingManualClaim(t, 10)
		ownerID := uint(99)
		claimRepo := &mockClaimRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*claim.ClaimRequest, error) {
				return claimEntity, nil
			},
		}
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", true, &ownerID), nil
			},
		}

		useCase := NewApproveClaimUseCase(claimRepo, companyRepo, adminUserRepo(t, 5), &mockTxManager{}, &mockClaimNotifier{}, &mockLogger{})
		_, err := useCase.Execute(ctx, ApproveClaimCommand{ClaimID: 10, ReviewerID: 5})

		assert.True(t, errors.IsConflictError(err))
	})
}
