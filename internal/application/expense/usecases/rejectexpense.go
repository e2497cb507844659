package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/application/expense/dto"
	"accountsforge/internal/application/notifier"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/expense"
	"accountsforge/internal/domain/notification"
	"accountsforge/internal/shared/db"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type RejectExpenseCommand struct {
	Actor     authz.Actor
	ExpenseID uint
	Reason    string
}

type RejectExpenseResult struct {
	Expense *dto.ExpenseDTO
}

type RejectExpenseUseCase struct {
	expenseRepo      expense.Repository
	notificationRepo notification.Repository
	txManager        *db.TransactionManager
	mailer           *notifier.Mailer
	logger           logger.Interface
}

func NewRejectExpenseUseCase(
	expenseRepo expense.Repository,
	notificationRepo notification.Repository,
	txManager *db.TransactionManager,
	mailer *notifier.Mailer,
	logger logger.Interface,
) *RejectExpenseUseCase {
	return &RejectExpenseUseCase{
		expenseRepo:      expenseRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		mailer:           mailer,
		logger:           logger,
	}
}

func (uc *RejectExpenseUseCase) Execute(ctx context.Context, cmd RejectExpenseCommand) (*RejectExpenseResult, error) {
	uc.logger.Infow("executing reject expense use case", "expense_id", cmd.ExpenseID, "reviewer_id", cmd.Actor.ProfileID)

	if !cmd.Actor.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can review expenses", string(authz.ReasonAdminOnly))
	}

	var (
		e     *expense.Expense
		notif *notification.Notification
	)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		e, err = uc.expenseRepo.GetByID(txCtx, cmd.ExpenseID)
		if err != nil {
			if errors.Is(err, expense.ErrNotFound) {
				return apperrors.NewNotFoundError(fmt.Sprintf("expense %d not found", cmd.ExpenseID))
			}
			return apperrors.NewInternalError("failed to get expense")
		}

		if err := e.Reject(cmd.Actor.ProfileID, cmd.Reason); err != nil {
			if errors.Is(err, expense.ErrIllegalTransition) {
				return apperrors.NewWorkflowViolationError(err.Error())
			}
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.expenseRepo.Update(txCtx, e); err != nil {
			return apperrors.NewInternalError("failed to update expense")
		}

		notif, err = notification.NewExpenseRejected(e.OwnerID(), e.ID(), cmd.Reason)
		if err != nil {
			return apperrors.NewInternalError("failed to build notification")
		}
		if err := uc.notificationRepo.Create(txCtx, notif); err != nil {
			return apperrors.NewInternalError("failed to create notification")
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("reject expense failed", "expense_id", cmd.ExpenseID, "error", err)
		return nil, err
	}

	if notif != nil {
		uc.mailer.Deliver(ctx, notif)
	}

	uc.logger.Infow("expense rejected", "expense_id", e.ID(), "owner_id", e.OwnerID())

	return &RejectExpenseResult{Expense: dto.FromEntity(e)}, nil
}
