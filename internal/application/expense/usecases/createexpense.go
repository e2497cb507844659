package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"accountsforge/internal/application/expense/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/expense"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type CreateExpenseCommand struct {
	Actor       authz.Actor
	OwnerID     uint
	Amount      decimal.Decimal
	Category    string
	Description string
}

type CreateExpenseResult struct {
	Expense *dto.ExpenseDTO
}

type CreateExpenseUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewCreateExpenseUseCase(expenseRepo expense.Repository, logger logger.Interface) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *CreateExpenseUseCase) Execute(ctx context.Context, cmd CreateExpenseCommand) (*CreateExpenseResult, error) {
	uc.logger.Infow("executing create expense use case", "owner_id", cmd.OwnerID, "category", cmd.Category)

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpInsert,
		Target: authz.Target{
			Resource: authz.ResourceExpense,
			OwnerID:  cmd.OwnerID,
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("expense insert denied", "actor_id", cmd.Actor.ProfileID, "owner_id", cmd.OwnerID, "reason", decision.Reason)
		return nil, errors.NewForbiddenError("not allowed to create this expense", string(decision.Reason))
	}

	e, err := expense.NewExpense(cmd.OwnerID, cmd.Amount, cmd.Category, cmd.Description)
	if err != nil {
		uc.logger.Errorw("invalid expense", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.expenseRepo.Create(ctx, e); err != nil {
		uc.logger.Errorw("failed to create expense", "error", err)
		return nil, errors.NewInternalError("failed to create expense")
	}

	uc.logger.Infow("expense created", "expense_id", e.ID(), "owner_id", e.OwnerID())

	return &CreateExpenseResult{Expense: dto.FromEntity(e)}, nil
}
