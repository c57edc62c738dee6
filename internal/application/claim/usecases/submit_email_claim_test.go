package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitscore/internal/domain/claim"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/shared/errors"
)

func testCompany(t *testing.T, id uint, websiteDomain string, verified bool, ownerID *uint) *company.Company {
	t.Helper()

	var verifiedAt *time.Time
	if verified {
		ts := time.Now().Add(-24 * time.Hour)
		verifiedAt = &ts
	}

	comp, err := company.ReconstructCompany(
		id,
		"Acme Recruiting",
		"acme-recruiting",
		"",
		"",
		"https://www.acme.com",
		websiteDomain,
		[]string{"technology"},
		[]string{"London"},
		"",
		verified,
		ownerID,
		verifiedAt,
		nil,
		0,
		time.Now().Add(-30*24*time.Hour),
		time.Now().Add(-24*time.Hour),
	)
	require.NoError(t, err)
	return comp
}

func TestSubmitEmailClaimUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending claim and sends verification email", func(t *testing.T) {
		var savedClaim *claim.ClaimRequest
		claimRepo := &mockClaimRepository{
			SaveFunc: func(ctx context.Context, c *claim.ClaimRequest) error {
				if err := c.SetID(10); err != nil {
					return err
				}
				savedClaim = c
				return nil
			},
		}
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", false, nil), nil
			},
		}

		sent := make(chan string, 1)
		notifier := &mockClaimNotifier{
			SendVerificationEmailFunc: func(ctx context.Context, recipient, companyName, token string) error {
				sent <- token
				return nil
			},
		}

		useCase := NewSubmitEmailClaimUseCase(claimRepo, companyRepo, notifier, 24*time.Hour, &mockLogger{})
		resp, err := useCase.Execute(ctx, SubmitEmailClaimCommand{
			CompanyID: 1,
			UserID:    2,
			Email:     "jane@ACME.com",
		})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, uint(10), resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "email", resp.VerificationType)

		require.NotNil(t, savedClaim)
		assert.Len(t, savedClaim.Token(), 64)

		select {
		case token := <-sent:
			assert.Equal(t, savedClaim.Token(), token)
		case <-time.After(2 * time.Second):
			t.Fatal("verification email was not sent")
		}
	})

	t.Run("rejects anonymous caller", func(t *testing.T) {
		useCase := NewSubmitEmailClaimUseCase(&mockClaimRepository{}, &mockCompanyRepository{}, &mockClaimNotifier{}, 24*time.Hour, &mockLogger{})
		_, err := useCase.Execute(ctx, SubmitEmailClaimCommand{CompanyID: 1, Email: "jane@acme.com"})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("company not found", func(t *testing.T) {
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return nil, nil
			},
		}

		useCase := NewSubmitEmailClaimUseCase(&mockClaimRepository{}, companyRepo, &mockClaimNotifier{}, 24*time.Hour, &mockLogger{})
		_, err := useCase.Execute(ctx, SubmitEmailClaimCommand{CompanyID: 99, UserID: 2, Email: "jane@acme.com"})

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("company already verified", func(t *testing.T) {
		ownerID := uint(7)
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", true, &ownerID), nil
			},
		}

		useCase := NewSubmitEmailClaimUseCase(&mockClaimRepository{}, companyRepo, &mockClaimNotifier{}, 24*time.Hour, &mockLogger{})
		_, err := useCase.Execute(ctx, SubmitEmailClaimCommand{CompanyID: 1, UserID: 2, Email: "jane@acme.com"})

		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("email domain mismatch returns sentinel", func(t *testing.T) {
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", false, nil), nil
			},
		}

		useCase := NewSubmitEmailClaimUseCase(&mockClaimRepository{}, companyRepo, &mockClaimNotifier{}, 24*time.Hour, &mockLogger{})
		_, err := useCase.Execute(ctx, SubmitEmailClaimCommand{CompanyID: 1, UserID: 2, Email: "jane@gmail.com"})

		assert.ErrorIs(t, err, ErrEmailDomainMismatch)
	})

	t.Run("subdomain does not match", func(t *testing.T) {
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", false, nil), nil
			},
		}

		useCase := NewSubmitEmailClaimUseCase(&mockClaimRepository{}, companyRepo, &mockClaimNotifier{}, 24*time.Hour, &mockLogger{})
		_, err := useCase.Execute(ctx, SubmitEmailClaimCommand{CompanyID: 1, UserID: 2, Email: "jane@mail.acme.com"})

		assert.ErrorIs(t, err, ErrEmailDomainMismatch)
	})

	t.Run("duplicate pending claim", func(t *testing.T) {
		claimRepo := &mockClaimRepository{
			HasPendingClaimFunc: func(ctx context.Context, companyID, userID uint) (bool, error) {
				return true, nil
			},
		}
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", false, nil), nil
			},
		}

		useCase := NewSubmitEmailClaimUseCase(claimRepo, companyRepo, &mockClaimNotifier{}, 24*time.Hour, &mockLogger{})
		_, err := useCase.Execute(ctx, SubmitEmailClaimCommand{CompanyID: 1, UserID: 2, Email: "jane@acme.com"})

		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("duplicate pending claim wins over domain mismatch", func(t *testing.T) {
		claimRepo := &mockClaimRepository{
			HasPendingClaimFunc: func(ctx context.Context, companyID, userID uint) (bool, error) {
				return true, nil
			},
		}
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return testCompany(t, 1, "acme.com", false, nil), nil
			},
		}

		// Resubmitting with a non-matching email must still report the
		// outstanding claim, not offer the manual fallback.
		useCase := NewSubmitEmailClaimUseCase(claimRepo, companyRepo, &mockClaimNotifier{}, 24*time.Hour, &mockLogger{})
		_, err := useCase.Execute(ctx, SubmitEmailClaimCommand{CompanyID: 1, UserID: 2, Email: "jane@gmail.com"})

		assert.True(t, errors.IsConflictError(err))
		assert.NotErrorIs(t, err, ErrEmailDomainMismatch)
	})
}
