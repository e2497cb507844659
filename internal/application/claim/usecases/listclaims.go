package usecases

import (
	"context"

	"accountsforge/internal/application/claim/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/claim"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type ListClaimsQuery struct {
	Actor     authz.Actor
	OwnerID   *uint
	Status    *string
	ClaimType *string
	Page      int
	PageSize  int
}

type ListClaimsResult struct {
	Claims []*dto.ClaimDTO
	Total  int64
}

type ListClaimsUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewListClaimsUseCase(claimRepo claim.Repository, logger logger.Interface) *ListClaimsUseCase {
	return &ListClaimsUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *ListClaimsUseCase) Execute(ctx context.Context, query ListClaimsQuery) (*ListClaimsResult, error) {
	ownerID := query.OwnerID
	if !query.Actor.Role.IsAdmin() {
		if ownerID != nil && *ownerID != query.Actor.ProfileID {
			return nil, errors.NewForbiddenError("not allowed to list another owner's claims", string(authz.ReasonNotOwner))
		}
		self := query.Actor.ProfileID
		ownerID = &self
	}

	claims, total, err := uc.claimRepo.List(ctx, claim.Filter{
		OwnerID:   ownerID,
		Status:    query.Status,
		ClaimType: query.ClaimType,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list claims", "error", err)
		return nil, errors.NewInternalError("failed to list claims")
	}

	return &ListClaimsResult{
		Claims: dto.FromEntities(claims),
		Total:  total,
	}, nil
}
