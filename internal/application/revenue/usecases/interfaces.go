package usecases

import (
	"context"

	"accountsforge/internal/application/revenue/dto"
)

type CreateRevenueExecutor interface {
	Execute(ctx context.Context, cmd CreateRevenueCommand) (*CreateRevenueResult, error)
}

type GetRevenueExecutor interface {
	Execute(ctx context.Context, query GetRevenueQuery) (*dto.RevenueDTO, error)
}

type ListRevenuesExecutor interface {
	Execute(ctx context.Context, query ListRevenuesQuery) (*ListRevenuesResult, error)
}

type UpdateRevenueExecutor interface {
	Execute(ctx context.Context, cmd UpdateRevenueCommand) (*UpdateRevenueResult, error)
}

type DeleteRevenueExecutor interface {
	Execute(ctx context.Context, cmd DeleteRevenueCommand) error
}

type ApproveRevenueExecutor interface {
	Execute(ctx context.Context, cmd ApproveRevenueCommand) (*ApproveRevenueResult, error)
}

type RejectRevenueExecutor interface {
	Execute(ctx context.Context, cmd RejectRevenueCommand) (*RejectRevenueResult, error)
}

type ListCommissionsExecutor interface {
	Execute(ctx context.Context, query ListCommissionsQuery) (*ListCommissionsResult, error)
}
