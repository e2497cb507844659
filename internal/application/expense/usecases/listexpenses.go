package usecases

import (
	"context"

	"accountsforge/internal/application/expense/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/expense"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type ListExpensesQuery struct {
	Actor    authz.Actor
	OwnerID  *uint
	Status   *string
	Category *string
	Page     int
	PageSize int
}

type ListExpensesResult struct {
	Expenses []*dto.ExpenseDTO
	Total    int64
}

type ListExpensesUseCase struct {
	expenseRepo expense.Repository
	logger      logger.Interface
}

func NewListExpensesUseCase(expenseRepo expense.Repository, logger logger.Interface) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *ListExpensesUseCase) Execute(ctx context.Context, query ListExpensesQuery) (*ListExpensesResult, error) {
	// Non-admins only ever see their own records; an explicit owner filter
	// for someone else is a denial, not an empty list.
	ownerID := query.OwnerID
	if !query.Actor.Role.IsAdmin() {
		if ownerID != nil && *ownerID != query.Actor.ProfileID {
			return nil, errors.NewForbiddenError("not allowed to list another owner's expenses", string(authz.ReasonNotOwner))
		}
		self := query.Actor.ProfileID
		ownerID = &self
	}

	expenses, total, err := uc.expenseRepo.List(ctx, expense.Filter{
		OwnerID:  ownerID,
		Status:   query.Status,
		Category: query.Category,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list expenses", "error", err)
		return nil, errors.NewInternalError("failed to list expenses")
	}

	return &ListExpensesResult{
		Expenses: dto.FromEntities(expenses),
		Total:    total,
	}, nil
}
