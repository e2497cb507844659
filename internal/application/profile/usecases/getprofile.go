package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/application/profile/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/profile"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type GetProfileQuery struct {
	Actor     authz.Actor
	ProfileID uint
}

type GetProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewGetProfileUseCase(profileRepo profile.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.ProfileDTO, error) {
	p, err := uc.profileRepo.GetByID(ctx, query.ProfileID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("profile %d not found", query.ProfileID))
		}
		uc.logger.Errorw("failed to get profile", "profile_id", query.ProfileID, "error", err)
		return nil, apperrors.NewInternalError("failed to get profile")
	}

	decision := authz.Decide(authz.Request{
		Actor:     query.Actor,
		Operation: authz.OpRead,
		Target: authz.Target{
			Resource:    authz.ResourceProfile,
			OwnerID:     p.ID(),
			AuthSubject: p.AuthSubject(),
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("profile read denied", "profile_id", query.ProfileID, "actor_id", query.Actor.ProfileID, "reason", decision.Reason)
		return nil, apperrors.NewForbiddenError("not allowed to view this profile", string(decision.Reason))
	}

	return dto.FromEntity(p), nil
}
