package usecases

import (
	"context"

	"accountsforge/internal/application/claim/dto"
)

type CreateClaimExecutor interface {
	Execute(ctx context.Context, cmd CreateClaimCommand) (*CreateClaimResult, error)
}

type GetClaimExecutor interface {
	Execute(ctx context.Context, query GetClaimQuery) (*dto.ClaimDTO, error)
}

type ListClaimsExecutor interface {
	Execute(ctx context.Context, query ListClaimsQuery) (*ListClaimsResult, error)
}

type UpdateClaimExecutor interface {
	Execute(ctx context.Context, cmd UpdateClaimCommand) (*UpdateClaimResult, error)
}

type DeleteClaimExecutor interface {
	Execute(ctx context.Context, cmd DeleteClaimCommand) error
}

type ApproveClaimExecutor interface {
	Execute(ctx context.Context, cmd ApproveClaimCommand) (*ApproveClaimResult, error)
}

type RejectClaimExecutor interface {
	Execute(ctx context.Context, cmd RejectClaimCommand) (*RejectClaimResult, error)
}

type PayClaimExecutor interface {
	Execute(ctx context.Context, cmd PayClaimCommand) (*PayClaimResult, error)
}
