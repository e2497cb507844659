package usecases

import (
	"context"

	"accountsforge/internal/application/expense/dto"
)

type CreateExpenseExecutor interface {
	Execute(ctx context.Context, cmd CreateExpenseCommand) (*CreateExpenseResult, error)
}

type GetExpenseExecutor interface {
	Execute(ctx context.Context, query GetExpenseQuery) (*dto.ExpenseDTO, error)
}

type ListExpensesExecutor interface {
	Execute(ctx context.Context, query ListExpensesQuery) (*ListExpensesResult, error)
}

type UpdateExpenseExecutor interface {
	Execute(ctx context.Context, cmd UpdateExpenseCommand) (*UpdateExpenseResult, error)
}

type DeleteExpenseExecutor interface {
	Execute(ctx context.Context, cmd DeleteExpenseCommand) error
}

type ApproveExpenseExecutor interface {
	Execute(ctx context.Context, cmd ApproveExpenseCommand) (*ApproveExpenseResult, error)
}

type RejectExpenseExecutor interface {
	Execute(ctx context.Context, cmd RejectExpenseCommand) (*RejectExpenseResult, error)
}
