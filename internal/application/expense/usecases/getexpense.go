package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/application/expense/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/expense"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type GetExpenseQuery struct {
	Actor     authz.Actor
	ExpenseID uint
}

type GetExpenseUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewGetExpenseUseCase(expenseRepo expense.Repository, logger logger.Interface) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *GetExpenseUseCase) Execute(ctx context.Context, query GetExpenseQuery) (*dto.ExpenseDTO, error) {
	e, err := uc.expenseRepo.GetByID(ctx, query.ExpenseID)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense %d not found", query.ExpenseID))
		}
		uc.logger.Errorw("failed to get expense", "expense_id", query.ExpenseID, "error", err)
		return nil, apperrors.NewInternalError("failed to get expense")
	}

	decision := authz.Decide(authz.Request{
		Actor:     query.Actor,
		Operation: authz.OpRead,
		Target: authz.Target{
			Resource: authz.ResourceExpense,
			OwnerID:  e.OwnerID(),
			Status:   e.Status().String(),
		},
	})
	if !decision.Allow {
		return nil, apperrors.NewForbiddenError("not allowed to read this expense", string(decision.Reason))
	}

	return dto.FromEntity(e), nil
}
