package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/application/claim/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/claim"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type GetClaimQuery struct {
	Actor   authz.Actor
	ClaimID uint
}

type GetClaimUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewGetClaimUseCase(claimRepo claim.Repository, logger logger.Interface) *GetClaimUseCase {
	return &GetClaimUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *GetClaimUseCase) Execute(ctx context.Context, query GetClaimQuery) (*dto.ClaimDTO, error) {
	c, err := uc.claimRepo.GetByID(ctx, query.ClaimID)
	if err != nil {
		if errors.Is(err, claim.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("claim %d not found", query.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", query.ClaimID, "error", err)
		return nil, apperrors.NewInternalError("failed to get claim")
	}

	decision := authz.Decide(authz.Request{
		Actor:     query.Actor,
		Operation: authz.OpRead,
		Target: authz.Target{
			Resource: authz.ResourceClaim,
			OwnerID:  c.OwnerID(),
			Status:   c.Status().String(),
		},
	})
	if !decision.Allow {
		return nil, apperrors.NewForbiddenError("not allowed to read this claim", string(decision.Reason))
	}

	return dto.FromEntity(c), nil
}
