package usecases

import (
	"context"

	"recruitscore/internal/application/review/dto"
)

// TransactionManager runs a function inside a database transaction, with
// the transaction carried through the context to participating repositories.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SubmitReviewExecutor interface {
	Execute(ctx context.Context, cmd SubmitReviewCommand) (*dto.ReviewResponse, error)
}

type UpdateReviewExecutor interface {
	Execute(ctx context.Context, cmd UpdateReviewCommand) (*dto.ReviewResponse, error)
}

type DeleteReviewExecutor interface {
	Execute(ctx context.Context, cmd DeleteReviewCommand) error
}

type ListReviewsExecutor interface {
	Execute(ctx context.Context, query ListReviewsQuery) ([]*dto.ReviewResponse, int64, error)
}

type RespondToReviewExecutor interface {
	Execute(ctx context.Context, cmd RespondToReviewCommand) (*dto.OwnerResponse, error)
}

type ModerateReviewExecutor interface {
	Execute(ctx context.Context, cmd ModerateReviewCommand) (*dto.ReviewResponse, error)
}

type MarkReviewHelpfulExecutor interface {
	Execute(ctx context.Context, cmd MarkReviewHelpfulCommand) (*dto.ReviewResponse, error)
}
