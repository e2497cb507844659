package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/application/notifier"
	"accountsforge/internal/application/revenue/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/notification"
	"accountsforge/internal/domain/revenue"
	"accountsforge/internal/shared/db"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type ApproveRevenueCommand struct {
	Actor     authz.Actor
	RevenueID uint
	Note      string
}

type ApproveRevenueResult struct {
	Revenue    *dto.RevenueDTO
	Commission *dto.CommissionRecordDTO
}

// ApproveRevenueUseCase transitions a revenue to approved, creates its
// commission record, and notifies the owner. All three writes commit in one
// transaction; none of them is ever visible without the others.
//
// Re-approving an already-approved revenue is a no-op and writes nothing.
// If a commission record nevertheless exists for the revenue (a retry racing
// past the status check), the unique index on revenue_id rejects the second
// insert and the whole transaction rolls back.
type ApproveRevenueUseCase struct {
	revenueRepo      revenue.Repository
	commissionRepo   revenue.CommissionRepository
	notificationRepo notification.Repository
	txManager        *db.TransactionManager
	mailer           *notifier.Mailer
	logger           logger.Interface
}

func NewApproveRevenueUseCase(
	revenueRepo revenue.Repository,
	commissionRepo revenue.CommissionRepository,
	notificationRepo notification.Repository,
	txManager *db.TransactionManager,
	mailer *notifier.Mailer,
	logger logger.Interface,
) *ApproveRevenueUseCase {
	return &ApproveRevenueUseCase{
		revenueRepo:      revenueRepo,
		commissionRepo:   commissionRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		mailer:           mailer,
		logger:           logger,
	}
}

func (uc *ApproveRevenueUseCase) Execute(ctx context.Context, cmd ApproveRevenueCommand) (*ApproveRevenueResult, error) {
	uc.logger.Infow("executing approve revenue use case", "revenue_id", cmd.RevenueID, "reviewer_id", cmd.Actor.ProfileID)

	if !cmd.Actor.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can review revenues", string(authz.ReasonAdminOnly))
	}

	var (
		r          *revenue.Revenue
		commission *revenue.CommissionRecord
		notif      *notification.Notification
	)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		r, err = uc.revenueRepo.GetByID(txCtx, cmd.RevenueID)
		if err != nil {
			if errors.Is(err, revenue.ErrNotFound) {
				return apperrors.NewNotFoundError(fmt.Sprintf("revenue %d not found", cmd.RevenueID))
			}
			return apperrors.NewInternalError("failed to get revenue")
		}

		if r.Status().IsApproved() {
			// Idempotent retry; the commission from the first approval stands.
			return nil
		}

		if err := r.Approve(cmd.Actor.ProfileID, cmd.Note); err != nil {
			if errors.Is(err, revenue.ErrIllegalTransition) {
				return apperrors.NewWorkflowViolationError(err.Error())
			}
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.revenueRepo.Update(txCtx, r); err != nil {
			return apperrors.NewInternalError("failed to update revenue")
		}

		commission, err = revenue.NewCommissionRecord(r)
		if err != nil {
			return apperrors.NewInternalError("failed to build commission record")
		}
		if err := uc.commissionRepo.Create(txCtx, commission); err != nil {
			if errors.Is(err, revenue.ErrDuplicateCommission) {
				return apperrors.NewInvariantViolationError(
					fmt.Sprintf("commission record already exists for revenue %d", r.ID()))
			}
			return apperrors.NewInternalError("failed to create commission record")
		}

		notif, err = notification.NewRevenueApproved(r.OwnerID(), r.ID(), commission.Amount())
		if err != nil {
			return apperrors.NewInternalError("failed to build notification")
		}
		if err := uc.notificationRepo.Create(txCtx, notif); err != nil {
			return apperrors.NewInternalError("failed to create notification")
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("approve revenue failed", "revenue_id", cmd.RevenueID, "error", err)
		return nil, err
	}

	if notif != nil {
		uc.mailer.Deliver(ctx, notif)
	}

	result := &ApproveRevenueResult{Revenue: dto.FromEntity(r)}
	if commission != nil {
		result.Commission = dto.CommissionFromEntity(commission)
		uc.logger.Infow("revenue approved",
			"revenue_id", r.ID(),
			"owner_id", r.OwnerID(),
			"commission", commission.Amount().StringFixed(2))
	}

	return result, nil
}
