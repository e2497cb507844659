package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/expense"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type DeleteExpenseCommand struct {
	Actor     authz.Actor
	ExpenseID uint
}

type DeleteExpenseUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewDeleteExpenseUseCase(expenseRepo expense.Repository, logger logger.Interface) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, cmd DeleteExpenseCommand) error {
	uc.logger.Infow("executing delete expense use case", "expense_id", cmd.ExpenseID)

	e, err := uc.expenseRepo.GetByID(ctx, cmd.ExpenseID)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("expense %d not found", cmd.ExpenseID))
		}
		uc.logger.Errorw("failed to get expense", "expense_id", cmd.ExpenseID, "error", err)
		return apperrors.NewInternalError("failed to get expense")
	}

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpDelete,
		Target: authz.Target{
			Resource: authz.ResourceExpense,
			OwnerID:  e.OwnerID(),
			Status:   e.Status().String(),
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("expense delete denied", "expense_id", cmd.ExpenseID, "actor_id", cmd.Actor.ProfileID, "reason", decision.Reason)
		return apperrors.NewForbiddenError("not allowed to delete this expense", string(decision.Reason))
	}

	if err := uc.expenseRepo.Delete(ctx, cmd.ExpenseID); err != nil {
		uc.logger.Errorw("failed to delete expense", "expense_id", cmd.ExpenseID, "error", err)
		return apperrors.NewInternalError("failed to delete expense")
	}

	uc.logger.Infow("expense deleted", "expense_id", cmd.ExpenseID)
	return nil
}
