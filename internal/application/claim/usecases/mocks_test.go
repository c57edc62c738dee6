package usecases

import (
	"context"

	"recruitscore/internal/domain/claim"
	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/logger"
)

type mockClaimRepository struct {
	SaveFunc               func(ctx context.Context, c *claim.ClaimRequest) error
	UpdateFunc             func(ctx context.Context, c *claim.ClaimRequest) error
	FindByIDFunc           func(ctx context.Context, id uint) (*claim.ClaimRequest, error)
	FindPendingByTokenFunc func(ctx context.Context, token string) (*claim.ClaimRequest, error)
	HasPendingClaimFunc    func(ctx context.Context, companyID, userID uint) (bool, error)
	ListFunc               func(ctx context.Context, filter claim.Filter) ([]*claim.ClaimRequest, int64, error)
}

func (m *mockClaimRepository) Save(ctx context.Context, c *claim.ClaimRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClaimRepository) Update(ctx context.Context, c *claim.ClaimRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClaimRepository) FindByID(ctx context.Context, id uint) (*claim.ClaimRequest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClaimRepository) FindPendingByToken(ctx context.Context, token string) (*claim.ClaimRequest, error) {
	if m.FindPendingByTokenFunc != nil {
		return m.FindPendingByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockClaimRepository) HasPendingClaim(ctx context.Context, companyID, userID uint) (bool, error) {
	if m.HasPendingClaimFunc != nil {
		return m.HasPendingClaimFunc(ctx, companyID, userID)
	}
	return false, nil
}

func (m *mockClaimRepository) List(ctx context.Context, filter claim.Filter) ([]*claim.ClaimRequest, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCompanyRepository struct {
	SaveFunc       func(ctx context.Context, c *company.Company) error
	UpdateFunc     func(ctx context.Context, c *company.Company) error
	DeleteFunc     func(ctx context.Context, id uint) error
	FindByIDFunc   func(ctx context.Context, id uint) (*company.Company, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*company.Company, error)
	ListFunc       func(ctx context.Context, filter company.Filter) ([]*company.Company, int64, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCompanyRepository) FindBySlug(ctx context.Context, slug string) (*company.Company, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context, filter company.Filter) ([]*company.Company, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

type mockClaimNotifier struct {
	SendVerificationEmailFunc func(ctx context.Context, recipient, companyName, token string) error
	SendDecisionEmailFunc     func(ctx context.Context, recipient, companyName string, approved bool, notes string) error
}

func (m *mockClaimNotifier) SendVerificationEmail(ctx context.Context, recipient, companyName, token string) error {
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(ctx, recipient, companyName, token)
	}
	return nil
}

func (m *mockClaimNotifier) SendDecisionEmail(ctx context.Context, recipient, companyName string, approved bool, notes string) error {
	if m.SendDecisionEmailFunc != nil {
		return m.SendDecisionEmailFunc(ctx, recipient, companyName, approved, notes)
	}
	return nil
}

// mockTxManager runs the function inline without a real transaction.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Fatal(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})  {}
