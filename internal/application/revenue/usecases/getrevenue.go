package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/application/revenue/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/revenue"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type GetRevenueQuery struct {
	Actor     authz.Actor
	RevenueID uint
}

type GetRevenueUseCase struct {
	revenueRepo revenue.Repository
	logger      logger.Interface
}

func NewGetRevenueUseCase(revenueRepo revenue.Repository, logger logger.Interface) *GetRevenueUseCase {
	return &GetRevenueUseCase{
		revenueRepo: revenueRepo,
		logger:      logger,
	}
}

func (uc *GetRevenueUseCase) Execute(ctx context.Context, query GetRevenueQuery) (*dto.RevenueDTO, error) {
	r, err := uc.revenueRepo.GetByID(ctx, query.RevenueID)
	if err != nil {
		if errors.Is(err, revenue.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("revenue %d not found", query.RevenueID))
		}
		uc.logger.Errorw("failed to get revenue", "revenue_id", query.RevenueID, "error", err)
		return nil, apperrors.NewInternalError("failed to get revenue")
	}

	decision := authz.Decide(authz.Request{
		Actor:     query.Actor,
		Operation: authz.OpRead,
		Target: authz.Target{
			Resource: authz.ResourceRevenue,
			OwnerID:  r.OwnerID(),
			Status:   r.Status().String(),
		},
	})
	if !decision.Allow {
		return nil, apperrors.NewForbiddenError("not allowed to read this revenue", string(decision.Reason))
	}

	return dto.FromEntity(r), nil
}
