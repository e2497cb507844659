package usecases

import (
	"context"

	"accountsforge/internal/application/revenue/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/revenue"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type ListRevenuesQuery struct {
	Actor    authz.Actor
	OwnerID  *uint
	Status   *string
	Customer *string
	Page     int
	PageSize int
}

type ListRevenuesResult struct {
	Revenues []*dto.RevenueDTO
	Total    int64
}

type ListRevenuesUseCase struct {
	revenueRepo revenue.Repository
	logger      logger.Interface
}

func NewListRevenuesUseCase(revenueRepo revenue.Repository, logger logger.Interface) *ListRevenuesUseCase {
	return &ListRevenuesUseCase{
		revenueRepo: revenueRepo,
		logger:      logger,
	}
}

func (uc *ListRevenuesUseCase) Execute(ctx context.Context, query ListRevenuesQuery) (*ListRevenuesResult, error) {
	ownerID := query.OwnerID
	if !query.Actor.Role.IsAdmin() {
		if ownerID != nil && *ownerID != query.Actor.ProfileID {
			return nil, errors.NewForbiddenError("not allowed to list another owner's revenues", string(authz.ReasonNotOwner))
		}
		self := query.Actor.ProfileID
		ownerID = &self
	}

	revenues, total, err := uc.revenueRepo.List(ctx, revenue.Filter{
		OwnerID:  ownerID,
		Status:   query.Status,
		Customer: query.Customer,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list revenues", "error", err)
		return nil, errors.NewInternalError("failed to list revenues")
	}

	return &ListRevenuesResult{
		Revenues: dto.FromEntities(revenues),
		Total:    total,
	}, nil
}
