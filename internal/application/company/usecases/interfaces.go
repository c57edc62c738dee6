package usecases

import (
	"context"

	"recruitscore/internal/application/company/dto"
)

type CreateCompanyExecutor interface {
	Execute(ctx context.Context, cmd CreateCompanyCommand) (*dto.CompanyResponse, error)
}

type UpdateCompanyExecutor interface {
	Execute(ctx context.Context, cmd UpdateCompanyCommand) (*dto.CompanyResponse, error)
}

type DeleteCompanyExecutor interface {
	Execute(ctx context.Context, cmd DeleteCompanyCommand) error
}

type GetCompanyExecutor interface {
	Execute(ctx context.Context, query GetCompanyQuery) (*dto.CompanyResponse, error)
}

type ListCompaniesExecutor interface {
	Execute(ctx context.Context, query ListCompaniesQuery) ([]*dto.CompanyResponse, int64, error)
}

type TransferOwnershipExecutor interface {
	Execute(ctx context.Context, cmd TransferOwnershipCommand) (*dto.CompanyResponse, error)
}
