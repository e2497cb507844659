package usecases

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"accountsforge/internal/application/claim/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/claim"
	"accountsforge/internal/domain/expense"
	"accountsforge/internal/domain/revenue"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type CreateClaimCommand struct {
	Actor       authz.Actor
	OwnerID     uint
	Amount      decimal.Decimal
	ClaimType   string
	Description string
	ExpenseID   *uint
	RevenueID   *uint
}

type CreateClaimResult struct {
	Claim *dto.ClaimDTO
}

// CreateClaimUseCase files a payout claim, optionally linked to the expense
// or revenue it originates from. A linked record must exist and belong to the
// claim owner.
type CreateClaimUseCase struct {
	claimRepo   claim.Repository
	expenseRepo expense.Repository
	revenueRepo revenue.Repository
	logger      logger.Interface
}

func NewCreateClaimUseCase(
	claimRepo claim.Repository,
	expenseRepo expense.Repository,
	revenueRepo revenue.Repository,
	logger logger.Interface,
) *CreateClaimUseCase {
	return &CreateClaimUseCase{
		claimRepo:   claimRepo,
		expenseRepo: expenseRepo,
		revenueRepo: revenueRepo,
		logger:      logger,
	}
}

func (uc *CreateClaimUseCase) Execute(ctx context.Context, cmd CreateClaimCommand) (*CreateClaimResult, error) {
	uc.logger.Infow("executing create claim use case", "owner_id", cmd.OwnerID, "claim_type", cmd.ClaimType)

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpInsert,
		Target: authz.Target{
			Resource: authz.ResourceClaim,
			OwnerID:  cmd.OwnerID,
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("claim insert denied", "actor_id", cmd.Actor.ProfileID, "owner_id", cmd.OwnerID, "reason", decision.Reason)
		return nil, apperrors.NewForbiddenError("not allowed to create this claim", string(decision.Reason))
	}

	if err := uc.validateLinks(ctx, cmd); err != nil {
		return nil, err
	}

	c, err := claim.NewClaim(cmd.OwnerID, cmd.Amount, cmd.ClaimType, cmd.Description, cmd.ExpenseID, cmd.RevenueID)
	if err != nil {
		uc.logger.Errorw("invalid claim", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.claimRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create claim", "error", err)
		return nil, apperrors.NewInternalError("failed to create claim")
	}

	uc.logger.Infow("claim created", "claim_id", c.ID(), "owner_id", c.OwnerID())

	return &CreateClaimResult{Claim: dto.FromEntity(c)}, nil
}

func (uc *CreateClaimUseCase) validateLinks(ctx context.Context, cmd CreateClaimCommand) error {
	if cmd.ExpenseID != nil {
		e, err := uc.expenseRepo.GetByID(ctx, *cmd.ExpenseID)
		if err != nil {
			if errors.Is(err, expense.ErrNotFound) {
				return apperrors.NewValidationError("linked expense does not exist")
			}
			return apperrors.NewInternalError("failed to check linked expense")
		}
		if e.OwnerID() != cmd.OwnerID {
			return apperrors.NewValidationError("linked expense belongs to a different owner")
		}
	}

	if cmd.RevenueID != nil {
		r, err := uc.revenueRepo.GetByID(ctx, *cmd.RevenueID)
		if err != nil {
			if errors.Is(err, revenue.ErrNotFound) {
				return apperrors.NewValidationError("linked revenue does not exist")
			}
			return apperrors.NewInternalError("failed to check linked revenue")
		}
		if r.OwnerID() != cmd.OwnerID {
			return apperrors.NewValidationError("linked revenue belongs to a different owner")
		}
	}

	return nil
}
