package usecases

import (
	"context"

	"recruitscore/internal/application/claim/dto"
)

// ClaimNotifier sends claim-related emails. Delivery is best-effort and
// always off the request path.
type ClaimNotifier interface {
	SendVerificationEmail(ctx context.Context, recipient, companyName, token string) error
	SendDecisionEmail(ctx context.Context, recipient, companyName string, approved bool, notes string) error
}

// TransactionManager runs a function inside a database transaction, with
// the transaction carried through the context to participating repositories.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SubmitEmailClaimExecutor interface {
	Execute(ctx context.Context, cmd SubmitEmailClaimCommand) (*dto.ClaimResponse, error)
}

type SubmitManualClaimExecutor interface {
	Execute(ctx context.Context, cmd SubmitManualClaimCommand) (*dto.ClaimResponse, error)
}

type VerifyClaimTokenExecutor interface {
	Execute(ctx context.Context, cmd VerifyClaimTokenCommand) (*dto.VerifyClaimResult, error)
}

type ApproveClaimExecutor interface {
	Execute(ctx context.Context, cmd ApproveClaimCommand) (*dto.ClaimResponse, error)
}

type RejectClaimExecutor interface {
	Execute(ctx context.Context, cmd RejectClaimCommand) (*dto.ClaimResponse, error)
}

type GetClaimExecutor interface {
	Execute(ctx context.Context, query GetClaimQuery) (*dto.ClaimResponse, error)
}

type ListClaimsExecutor interface {
	Execute(ctx context.Context, query ListClaimsQuery) ([]*dto.ClaimResponse, int64, error)
}
