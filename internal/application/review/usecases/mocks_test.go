package usecases

import (
	"context"

	"recruitscore/internal/domain/company"
	"recruitscore/internal/domain/review"
	"recruitscore/internal/domain/user"
	"recruitscore/internal/shared/logger"
)

type mockReviewRepository struct {
	SaveFunc                 func(ctx context.Context, r *review.Review) error
	UpdateFunc               func(ctx context.Context, r *review.Review) error
	DeleteFunc               func(ctx context.Context, id uint) error
	FindByIDFunc             func(ctx context.Context, id uint) (*review.Review, error)
	FindByCompanyAndUserFunc func(ctx context.Context, companyID, userID uint) (*review.Review, error)
	ListFunc                 func(ctx context.Context, filter review.Filter) ([]*review.Review, int64, error)
	CompanyStatsFunc         func(ctx context.Context, companyID uint) (review.Stats, error)
	SaveResponseFunc         func(ctx context.Context, resp *review.Response) error
	ResponsesByReviewIDsFunc func(ctx context.Context, reviewIDs []uint) (map[uint][]*review.Response, error)
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepository) FindByCompanyAndUser(ctx context.Context, companyID, userID uint) (*review.Review, error) {
	if m.FindByCompanyAndUserFunc != nil {
		return m.FindByCompanyAndUserFunc(ctx, companyID, userID)
	}
	return nil, nil
}

func (m *mockReviewRepository) List(ctx context.Context, filter review.Filter) ([]*review.Review, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockReviewRepository) CompanyStats(ctx context.Context, companyID uint) (review.Stats, error) {
	if m.CompanyStatsFunc != nil {
		return m.CompanyStatsFunc(ctx, companyID)
	}
	return review.Stats{}, nil
}

func (m *mockReviewRepository) SaveResponse(ctx context.Context, resp *review.Response) error {
	if m.SaveResponseFunc != nil {
		return m.SaveResponseFunc(ctx, resp)
	}
	return nil
}

func (m *mockReviewRepository) ResponsesByReviewIDs(ctx context.Context, reviewIDs []uint) (map[uint][]*review.Response, error) {
	if m.ResponsesByReviewIDsFunc != nil {
		return m.ResponsesByReviewIDsFunc(ctx, reviewIDs)
	}
	return map[uint][]*review.Response{}, nil
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

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
