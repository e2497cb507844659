package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/revenue"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type DeleteRevenueCommand struct {
	Actor     authz.Actor
	RevenueID uint
}

type DeleteRevenueUseCase struct {
	revenueRepo revenue.Repository
	logger      logger.Interface
}

func NewDeleteRevenueUseCase(revenueRepo revenue.Repository, logger logger.Interface) *DeleteRevenueUseCase {
	return &DeleteRevenueUseCase{
		revenueRepo: revenueRepo,
		logger:      logger,
	}
}

func (uc *DeleteRevenueUseCase) Execute(ctx context.Context, cmd DeleteRevenueCommand) error {
	uc.logger.Infow("executing delete revenue use case", "revenue_id", cmd.RevenueID)

	r, err := uc.revenueRepo.GetByID(ctx, cmd.RevenueID)
	if err != nil {
		if errors.Is(err, revenue.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("revenue %d not found", cmd.RevenueID))
		}
		uc.logger.Errorw("failed to get revenue", "revenue_id", cmd.RevenueID, "error", err)
		return apperrors.NewInternalError("failed to get revenue")
	}

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpDelete,
		Target: authz.Target{
			Resource: authz.ResourceRevenue,
			OwnerID:  r.OwnerID(),
			Status:   r.Status().String(),
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("revenue delete denied", "revenue_id", cmd.RevenueID, "actor_id", cmd.Actor.ProfileID, "reason", decision.Reason)
		return apperrors.NewForbiddenError("not allowed to delete this revenue", string(decision.Reason))
	}

	if err := uc.revenueRepo.Delete(ctx, cmd.RevenueID); err != nil {
		uc.logger.Errorw("failed to delete revenue", "revenue_id", cmd.RevenueID, "error", err)
		return apperrors.NewInternalError("failed to delete revenue")
	}

	uc.logger.Infow("revenue deleted", "revenue_id", cmd.RevenueID)
	return nil
}
