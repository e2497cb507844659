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

type ApproveClaimCommand struct {
	Actor   authz.Actor
	ClaimID uint
	Note    string
}

type ApproveClaimResult struct {
	Claim *dto.ClaimDTO
}

// ApproveClaimUseCase transitions a claim to approved. Payment is a separate
// step; approval only unlocks it, with no side effect beyond the status
// change. The owner is notified when the payment lands, not before.
type ApproveClaimUseCase struct {
	claimRepo claim.Repository
	logger    logger.Interface
}

func NewApproveClaimUseCase(claimRepo claim.Repository, logger logger.Interface) *ApproveClaimUseCase {
	return &ApproveClaimUseCase{
		claimRepo: claimRepo,
		logger:    logger,
	}
}

func (uc *ApproveClaimUseCase) Execute(ctx context.Context, cmd ApproveClaimCommand) (*ApproveClaimResult, error) {
	uc.logger.Infow("executing approve claim use case", "claim_id", cmd.ClaimID, "reviewer_id", cmd.Actor.ProfileID)

	if !cmd.Actor.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can review claims", string(authz.ReasonAdminOnly))
	}

	c, err := uc.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		if errors.Is(err, claim.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("claim %d not found", cmd.ClaimID))
		}
		uc.logger.Errorw("failed to get claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, apperrors.NewInternalError("failed to get claim")
	}

	if c.Status().IsApproved() {
		// Idempotent retry; nothing to write.
		return &ApproveClaimResult{Claim: dto.FromEntity(c)}, nil
	}

	if err := c.Approve(cmd.Actor.ProfileID, cmd.Note); err != nil {
		if errors.Is(err, claim.ErrIllegalTransition) {
			return nil, apperrors.NewWorkflowViolationError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.claimRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update claim", "claim_id", cmd.ClaimID, "error", err)
		return nil, apperrors.NewInternalError("failed to update claim")
	}

	uc.logger.Infow("claim approved", "claim_id", c.ID(), "owner_id", c.OwnerID())

	return &ApproveClaimResult{Claim: dto.FromEntity(c)}, nil
}
