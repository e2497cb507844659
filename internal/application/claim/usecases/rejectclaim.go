package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/application/claim/dto"
	"accountsforge/internal/application/notifier"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/claim"
	"accountsforge/internal/domain/notification"
	"accountsforge/internal/shared/db"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type RejectClaimCommand struct {
	Actor   authz.Actor
	ClaimID uint
	Reason  string
}

type RejectClaimResult struct {
	Claim *dto.ClaimDTO
}

type RejectClaimUseCase struct {
	claimRepo        claim.Repository
	notificationRepo notification.Repository
	txManager        *db.TransactionManager
	mailer           *notifier.Mailer
	logger           logger.Interface
}

func NewRejectClaimUseCase(
	claimRepo claim.Repository,
	notificationRepo notification.Repository,
	txManager *db.TransactionManager,
	mailer *notifier.Mailer,
	logger logger.Interface,
) *RejectClaimUseCase {
	return &RejectClaimUseCase{
		claimRepo:        claimRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		mailer:           mailer,
		logger:           logger,
	}
}

func (uc *RejectClaimUseCase) Execute(ctx context.Context, cmd RejectClaimCommand) (*RejectClaimResult, error) {
	uc.logger.Infow("executing reject claim use case", "claim_id", cmd.ClaimID, "reviewer_id", cmd.Actor.ProfileID)

	if !cmd.Actor.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can review claims", string(authz.ReasonAdminOnly))
	}

	var (
		c     *claim.Claim
		notif *notification.Notification
	)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		c, err = uc.claimRepo.GetByID(txCtx, cmd.ClaimID)
		if err != nil {
			if errors.Is(err, claim.ErrNotFound) {
				return apperrors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
			}
			return apperrors.NewInternalError("failed to get claim")
		}

		if err := c.Reject(cmd.Actor.ProfileID, cmd.Reason); err != nil {
			if errors.Is(err, claim.ErrIllegalTransition) {
				return apperrors.NewWorkflowViolationError(err.Error())
			}
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.claimRepo.Update(txCtx, c); err != nil {
			return apperrors.NewInternalError("failed to update claim")
		}

		notif, err = notification.NewClaimRejected(c.OwnerID(), c.ID(), cmd.Reason)
		if err != nil {
			return apperrors.NewInternalError("failed to build notification")
		}
		if err := uc.notificationRepo.Create(txCtx, notif); err != nil {
			return apperrors.NewInternalError("failed to create notification")
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("reject claim failed", "claim_id", cmd.ClaimID, "error", err)
		return nil, err
	}

	if notif != nil {
		uc.mailer.Deliver(ctx, notif)
	}

	uc.logger.Infow("claim rejected", "claim_id", c.ID(), "owner_id", c.OwnerID())

	return &RejectClaimResult{Claim: dto.FromEntity(c)}, nil
}
