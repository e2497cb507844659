package usecases

import (
	"context"

	"accountsforge/internal/application/revenue/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/revenue"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type ListCommissionsQuery struct {
	Actor    authz.Actor
	OwnerID  uint
	Limit    int
	Offset   int
}

type ListCommissionsResult struct {
	Commissions []*dto.CommissionRecordDTO
	Total       int64
}

// ListCommissionsUseCase lists commission records for one owner. Owners see
// their own payouts; admins see anyone's.
type ListCommissionsUseCase struct {
	commissionRepo revenue.CommissionRepository
	logger         logger.Interface
}

func NewListCommissionsUseCase(commissionRepo revenue.CommissionRepository, logger logger.Interface) *ListCommissionsUseCase {
	return &ListCommissionsUseCase{
		commissionRepo: commissionRepo,
		logger:         logger,
	}
}

func (uc *ListCommissionsUseCase) Execute(ctx context.Context, query ListCommissionsQuery) (*ListCommissionsResult, error) {
	if !query.Actor.Role.IsAdmin() && query.OwnerID != query.Actor.ProfileID {
		return nil, errors.NewForbiddenError("not allowed to list another owner's commissions", string(authz.ReasonNotOwner))
	}

	records, total, err := uc.commissionRepo.ListByOwnerID(ctx, query.OwnerID, query.Limit, query.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list commission records", "owner_id", query.OwnerID, "error", err)
		return nil, errors.NewInternalError("failed to list commission records")
	}

	return &ListCommissionsResult{
		Commissions: dto.CommissionsFromEntities(records),
		Total:       total,
	}, nil
}
