package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitscore/internal/application/company/dto"
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

func testCompany(t *testing.T, id uint, slug string, verified bool, ownerID *uint) *company.Company {
	t.Helper()

	var verifiedAt *time.Time
	if verified {
		ts := time.Now().Add(-24 * time.Hour)
		verifiedAt = &ts
	}

	comp, err := company.ReconstructCompany(
		id,
		"Acme Recruiting",
		slug,
		"",
		"",
		"https://www.acme.com",
		"acme.com",
		[]string{"technology"},
		[]string{"London"},
		"11-50",
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

func adminRepo(t *testing.T, adminID uint) *mockUserRepository {
	t.Helper()
	return &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t, id, "admin@recruitscore.io", id == adminID), nil
		},
	}
}

func TestCreateCompanyUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified company with derived slug and domain", func(t *testing.T) {
		var saved *company.Company
		companyRepo := &mockCompanyRepository{
			SaveFunc: func(ctx context.Context, c *company.Company) error {
				if err := c.SetID(1); err != nil {
					return err
				}
				saved = c
				return nil
			},
		}

		useCase := NewCreateCompanyUseCase(companyRepo, adminRepo(t, 5), &mockLogger{})
		resp, err := useCase.Execute(ctx, CreateCompanyCommand{
			ActorID: 5,
			Request: dto.CreateCompanyRequest{
				Name:    "Bright & Early Talent",
				Website: "https://www.brightearly.co.uk/about",
				Sectors: []string{"finance"},
				Size:    "11-50",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "bright-early-talent", resp.Slug)
		assert.Equal(t, "brightearly.co.uk", resp.WebsiteDomain)
		assert.False(t, resp.IsVerified)
		assert.Nil(t, resp.OwnerID)

		require.NotNil(t, saved)
		assert.Equal(t, "Bright & Early Talent", saved.Name())
	})

	t.Run("appends suffix on slug collision", func(t *testing.T) {
		existing := map[string]bool{"acme-recruiting": true, "acme-recruiting-2": true}
		companyRepo := &mockCompanyRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*company.Company, error) {
				if existing[slug] {
					return testCompany(t, 1, slug, false, nil), nil
				}
				return nil, nil
			},
			SaveFunc: func(ctx context.Context, c *company.Company) error {
				return c.SetID(2)
			},
		}

		useCase := NewCreateCompanyUseCase(companyRepo, adminRepo(t, 5), &mockLogger{})
		resp, err := useCase.Execute(ctx, CreateCompanyCommand{
			ActorID: 5,
			Request: dto.CreateCompanyRequest{Name: "Acme Recruiting"},
		})

		require.NoError(t, err)
		assert.Equal(t, "acme-recruiting-3", resp.Slug)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		useCase := NewCreateCompanyUseCase(&mockCompanyRepository{}, adminRepo(t, 5), &mockLogger{})
		_, err := useCase.Execute(ctx, CreateCompanyCommand{
			ActorID: 3,
			Request: dto.CreateCompanyRequest{Name: "Acme"},
		})

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("invalid size", func(t *testing.T) {
		useCase := NewCreateCompanyUseCase(&mockCompanyRepository{}, adminRepo(t, 5), &mockLogger{})
		_, err := useCase.Execute(ctx, CreateCompanyCommand{
			ActorID: 5,
			Request: dto.CreateCompanyRequest{Name: "Acme", Size: "huge"},
		})

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestTransferOwnershipUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	ownerID := uint(7)

	t.Run("owner transfers to another user by email", func(t *testing.T) {
		comp := testCompany(t, 1, "acme-recruiting", true, &ownerID)

		var updated *company.Company
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return comp, nil
			},
			UpdateFunc: func(ctx context.Context, c *company.Company) error {
				updated = c
				return nil
			},
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return testUser(t, id, "owner@acme.com", false), nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, "successor@acme.com", email)
				return testUser(t, 8, email, false), nil
			},
		}

		useCase := NewTransferOwnershipUseCase(companyRepo, userRepo, &mockLogger{})
		resp, err := useCase.Execute(ctx, TransferOwnershipCommand{
			CompanyID:     1,
			ActorID:       7,
			NewOwnerEmail: "successor@acme.com",
		})

		require.NoError(t, err)
		require.NotNil(t, resp.OwnerID)
		assert.Equal(t, uint(8), *resp.OwnerID)
		assert.True(t, resp.IsVerified)
		require.NotNil(t, updated)
	})

	t.Run("non-owner cannot transfer", func(t *testing.T) {
		comp := testCompany(t, 1, "acme-recruiting", true, &ownerID)
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return comp, nil
			},
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return testUser(t, id, "stranger@elsewhere.com", false), nil
			},
		}

		useCase := NewTransferOwnershipUseCase(companyRepo, userRepo, &mockLogger{})
		_, err := useCase.Execute(ctx, TransferOwnershipCommand{CompanyID: 1, ActorID: 3, NewOwnerEmail: "x@y.com"})

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("unverified company cannot transfer", func(t *testing.T) {
		comp := testCompany(t, 1, "acme-recruiting", false, nil)
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return comp, nil
			},
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return testUser(t, id, "admin@recruitscore.io", true), nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return testUser(t, 8, email, false), nil
			},
		}

		useCase := NewTransferOwnershipUseCase(companyRepo, userRepo, &mockLogger{})
		_, err := useCase.Execute(ctx, TransferOwnershipCommand{CompanyID: 1, ActorID: 5, NewOwnerEmail: "x@y.com"})

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown recipient email", func(t *testing.T) {
		comp := testCompany(t, 1, "acme-recruiting", true, &ownerID)
		companyRepo := &mockCompanyRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*company.Company, error) {
				return comp, nil
			},
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return testUser(t, id, "owner@acme.com", false), nil
			},
		}

		useCase := NewTransferOwnershipUseCase(companyRepo, userRepo, &mockLogger{})
		_, err := useCase.Execute(ctx, TransferOwnershipCommand{CompanyID: 1, ActorID: 7, NewOwnerEmail: "nobody@acme.com"})

		assert.True(t, errors.IsNotFoundError(err))
	})
}
