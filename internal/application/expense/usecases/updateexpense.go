package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"accountsforge/internal/application/expense/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/expense"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type UpdateExpenseCommand struct {
	Actor       authz.Actor
	ExpenseID   uint
	Amount      decimal.Decimal
	Category    string
	Description string
}

type UpdateExpenseResult struct {
	Expense *dto.ExpenseDTO
}

type UpdateExpenseUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewUpdateExpenseUseCase(expenseRepo expense.Repository, logger logger.Interface) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, cmd UpdateExpenseCommand) (*UpdateExpenseResult, error) {
	uc.logger.Infow("executing update expense use case", "expense_id", cmd.ExpenseID)

	e, err := uc.expenseRepo.GetByID(ctx, cmd.ExpenseID)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense %d not found", cmd.ExpenseID))
		}
		uc.logger.Errorw("failed to get expense", "expense_id", cmd.ExpenseID, "error", err)
		return nil, apperrors.NewInternalError("failed to get expense")
	}

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpUpdate,
		Target: authz.Target{
			Resource: authz.ResourceExpense,
			OwnerID:  e.OwnerID(),
			Status:   e.Status().String(),
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("expense update denied", "expense_id", cmd.ExpenseID, "actor_id", cmd.Actor.ProfileID, "reason", decision.Reason)
		return nil, apperrors.NewForbiddenError("not allowed to update this expense", string(decision.Reason))
	}

	if err := e.UpdateDetails(cmd.Amount, cmd.Category, cmd.Description); err != nil {
		if errors.Is(err, expense.ErrNotPending) {
			return nil, apperrors.NewWorkflowViolationError("expense can only be edited while pending")
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.expenseRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update expense", "expense_id", cmd.ExpenseID, "error", err)
		return nil, apperrors.NewInternalError("failed to update expense")
	}

	uc.logger.Infow("expense updated", "expense_id", e.ID())

	return &UpdateExpenseResult{Expense: dto.FromEntity(e)}, nil
}
