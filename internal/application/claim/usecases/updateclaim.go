package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"accountsforge/internal/application/claim/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/claim"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type UpdateClaimCommand struct {
	Actor       authz.Actor
	ClaimID     uint
	Amount      decimal.Decimal
	ClaimType   string
	Description string
}

type UpdateClaimResult struct {
	Claim *dto.ClaimDTO
}

type UpdateClaimUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewUpdateClaimUseCase(claimRepo claim.Repository, logger logger.Interface) *UpdateClaimUseCase {
	return &UpdateClaimUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *UpdateClaimUseCase) Execute(ctx context.Context, cmd UpdateClaimCommand) (*UpdateClaimResult, error) {
	uc.logger.Infow("executing update claim use case", "claim_id", cmd.ClaimID)

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.Is(err, claim.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, apperrors.NewInternalError("failed to get claim")
	}

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpUpdate,
		Target: authz.Target{
			Resource: authz.ResourceClaim,
			OwnerID:  c.OwnerID(),
			Status:   c.Status().String(),
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("claim update denied", "claim_id", cmd.ClaimID, "actor_id", cmd.Actor.ProfileID, "reason", decision.Reason)
		return nil, apperrors.NewForbiddenError("not allowed to update this claim", string(decision.Reason))
	}

	if err := c.UpdateDetails(cmd.Amount, cmd.ClaimType, cmd.Description); err != nil {
		if errors.Is(err, claim.ErrNotPending) {
			return nil, apperrors.NewWorkflowViolationError("claim can only be edited while pending")
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.claimRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, apperrors.NewInternalError("failed to update claim")
	}

	uc.logger.Infow("claim updated", "claim_id", c.ID())

	return &UpdateClaimResult{Claim: dto.FromEntity(c)}, nil
}
