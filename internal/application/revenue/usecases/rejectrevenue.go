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

type RejectRevenueCommand struct {
	Actor     authz.Actor
	RevenueID uint
	Reason    string
}

type RejectRevenueResult struct {
	Revenue *dto.RevenueDTO
}

type RejectRevenueUseCase struct {
	revenueRepo      revenue.Repository
	notificationRepo notification.Repository
	txManager        *db.TransactionManager
	mailer           *notifier.Mailer
	logger           logger.Interface
}

func NewRejectRevenueUseCase(
	revenueRepo revenue.Repository,
	notificationRepo notification.Repository,
	txManager *db.TransactionManager,
	mailer *notifier.Mailer,
	logger logger.Interface,
) *RejectRevenueUseCase {
	return &RejectRevenueUseCase{
		revenueRepo:      revenueRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		mailer:           mailer,
		logger:           logger,
	}
}

func (uc *RejectRevenueUseCase) Execute(ctx context.Context, cmd RejectRevenueCommand) (*RejectRevenueResult, error) {
	uc.logger.Infow("executing reject revenue use case", "revenue_id", cmd.RevenueID, "reviewer_id", cmd.Actor.ProfileID)

	if !cmd.Actor.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can review revenues", string(authz.ReasonAdminOnly))
	}

	var (
		r     *revenue.Revenue
		notif *notification.Notification
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

		if err := r.Reject(cmd.Actor.ProfileID, cmd.Reason); err != nil {
			if errors.Is(err, revenue.ErrIllegalTransition) {
				return apperrors.NewWorkflowViolationError(err.Error())
			}
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.revenueRepo.Update(txCtx, r); err != nil {
			return apperrors.NewInternalError("failed to update revenue")
		}

		notif, err = notification.NewRevenueRejected(r.OwnerID(), r.ID(), cmd.Reason)
		if err != nil {
			return apperrors.NewInternalError("failed to build notification")
		}
		if err := uc.notificationRepo.Create(txCtx, notif); err != nil {
			return apperrors.NewInternalError("failed to create notification")
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("reject revenue failed", "revenue_id", cmd.RevenueID, "error", err)
		return nil, err
	}

	if notif != nil {
		uc.mailer.Deliver(ctx, notif)
	}

	uc.logger.Infow("revenue rejected", "revenue_id", r.ID(), "owner_id", r.OwnerID())

	return &RejectRevenueResult{Revenue: dto.FromEntity(r)}, nil
}
