package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"accountsforge/internal/application/revenue/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/revenue"
	vo "accountsforge/internal/domain/revenue/valueobjects"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type UpdateRevenueCommand struct {
	Actor          authz.Actor
	RevenueID      uint
	Amount         decimal.Decimal
	Customer       string
	InvoiceNumber  string
	CommissionRate decimal.Decimal
}

type UpdateRevenueResult struct {
	Revenue *dto.RevenueDTO
}

type UpdateRevenueUseCase struct {
	revenueRepo revenue.Repository
	logger      logger.Interface
}

func NewUpdateRevenueUseCase(revenueRepo revenue.Repository, logger logger.Interface) *UpdateRevenueUseCase {
	return &UpdateRevenueUseCase{
		revenueRepo: revenueRepo,
		logger:      logger,
	}
}

func (uc *UpdateRevenueUseCase) Execute(ctx context.Context, cmd UpdateRevenueCommand) (*UpdateRevenueResult, error) {
	uc.logger.Infow("executing update revenue use case", "revenue_id", cmd.RevenueID)

	r, err := uc.revenueRepo.GetByID(ctx, cmd.RevenueID)
	if err != nil {
		if errors.Is(err, revenue.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("revenue %d not found", cmd.RevenueID))
		}
		uc.logger.Errorw("failed to get revenue", "revenue_id", cmd.RevenueID, "error", err)
		return nil, apperrors.NewInternalError("failed to get revenue")
	}

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpUpdate,
		Target: authz.Target{
			Resource: authz.ResourceRevenue,
			OwnerID:  r.OwnerID(),
			Status:   r.Status().String(),
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("revenue update denied", "revenue_id", cmd.RevenueID, "actor_id", cmd.Actor.ProfileID, "reason", decision.Reason)
		return nil, apperrors.NewForbiddenError("not allowed to update this revenue", string(decision.Reason))
	}

	rate, err := vo.NewCommissionRate(cmd.CommissionRate)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := r.UpdateDetails(cmd.Amount, cmd.Customer, cmd.InvoiceNumber, rate); err != nil {
		if errors.Is(err, revenue.ErrNotPending) {
			return nil, apperrors.NewWorkflowViolationError("revenue can only be edited while pending")
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.revenueRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update revenue", "revenue_id", cmd.RevenueID, "error", err)
		return nil, apperrors.NewInternalError("failed to update revenue")
	}

	uc.logger.Infow("revenue updated", "revenue_id", r.ID())

	return &UpdateRevenueResult{Revenue: dto.FromEntity(r)}, nil
}
