package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"accountsforge/internal/application/revenue/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/revenue"
	vo "accountsforge/internal/domain/revenue/valueobjects"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type CreateRevenueCommand struct {
	Actor          authz.Actor
	OwnerID        uint
	Amount         decimal.Decimal
	Customer       string
	InvoiceNumber  string
	CommissionRate decimal.Decimal
}

type CreateRevenueResult struct {
	Revenue *dto.RevenueDTO
}

// CreateRevenueUseCase records a revenue entry. Only salesmen and admins may
// record revenue; the commission rate is fixed at creation and drives the
// payout computed at approval time.
type CreateRevenueUseCase struct {
	revenueRepo revenue.Repository
	logger      logger.Interface
}

func NewCreateRevenueUseCase(revenueRepo revenue.Repository, logger logger.Interface) *CreateRevenueUseCase {
	return &CreateRevenueUseCase{
		revenueRepo: revenueRepo,
		logger:      logger,
	}
}

func (uc *CreateRevenueUseCase) Execute(ctx context.Context, cmd CreateRevenueCommand) (*CreateRevenueResult, error) {
	uc.logger.Infow("executing create revenue use case", "owner_id", cmd.OwnerID, "customer", cmd.Customer)

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpInsert,
		Target: authz.Target{
			Resource: authz.ResourceRevenue,
			OwnerID:  cmd.OwnerID,
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("revenue insert denied", "actor_id", cmd.Actor.ProfileID, "owner_id", cmd.OwnerID, "reason", decision.Reason)
		return nil, errors.NewForbiddenError("not allowed to record this revenue", string(decision.Reason))
	}

	rate, err := vo.NewCommissionRate(cmd.CommissionRate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	r, err := revenue.NewRevenue(cmd.OwnerID, cmd.Amount, cmd.Customer, cmd.InvoiceNumber, rate)
	if err != nil {
		uc.logger.Errorw("invalid revenue", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.revenueRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to create revenue", "error", err)
		return nil, errors.NewInternalError("failed to create revenue")
	}

	uc.logger.Infow("revenue created", "revenue_id", r.ID(), "owner_id", r.OwnerID())

	return &CreateRevenueResult{Revenue: dto.FromEntity(r)}, nil
}
