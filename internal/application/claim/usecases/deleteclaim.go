package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/claim"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type DeleteClaimCommand struct {
	Actor   authz.Actor
	ClaimID uint
}

// DeleteClaimUseCase removes a claim. Owners may withdraw their own pending
// claims; admins may delete any claim.
type DeleteClaimUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewDeleteClaimUseCase(claimRepo claim.Repository, logger logger.Interface) *DeleteClaimUseCase {
	return &DeleteClaimUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *DeleteClaimUseCase) Execute(ctx context.Context, cmd DeleteClaimCommand) error {
	uc.logger.Infow("executing delete claim use case", "claim_id", cmd.ClaimID)

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.Is(err, claim.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return apperrors.NewInternalError("failed to get claim")
	}

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpDelete,
		Target: authz.Target{
			Resource: authz.ResourceClaim,
			OwnerID:  c.OwnerID(),
			Status:   c.Status().String(),
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("claim delete denied", "claim_id", cmd.ClaimID, "actor_id", cmd.Actor.ProfileID, "reason", decision.Reason)
		return apperrors.NewForbiddenError("not allowed to delete this claim", string(decision.Reason))
	}

	if err := uc.claimRepo.Delete(ctx, cmd.ClaimID); err != nil {
		uc.logger.Errorw("failed to delete claim", "claim_id", cmd.ClaimID, "error", err)
		return apperrors.NewInternalError("failed to delete claim")
	}

	uc.logger.Infow("claim deleted", "claim_id", cmd.ClaimID)
	return nil
}
