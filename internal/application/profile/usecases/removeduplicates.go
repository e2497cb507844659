package usecases

import (
	"context"

	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/profile"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type RemoveDuplicateProfilesCommand struct {
	Actor authz.Actor
}

type RemoveDuplicateProfilesResult struct {
	Removed int64
}

// RemoveDuplicateProfilesUseCase is the admin cleanup for profiles that
// predate the unique subject index. The earliest-created row for each
// subject survives.
type RemoveDuplicateProfilesUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewRemoveDuplicateProfilesUseCase(profileRepo profile.Repository, logger logger.Interface) *RemoveDuplicateProfilesUseCase {
	return &RemoveDuplicateProfilesUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *RemoveDuplicateProfilesUseCase) Execute(ctx context.Context, cmd RemoveDuplicateProfilesCommand) (*RemoveDuplicateProfilesResult, error) {
	if !cmd.Actor.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can remove duplicate profiles", string(authz.ReasonAdminOnly))
	}

	removed, err := uc.profileRepo.RemoveDuplicates(ctx)
	if err != nil {
		uc.logger.Errorw("failed to remove duplicate profiles", "error", err)
		return nil, apperrors.NewInternalError("failed to remove duplicate profiles")
	}

	uc.logger.Infow("duplicate profiles removed", "removed", removed, "actor_id", cmd.Actor.ProfileID)

	return &RemoveDuplicateProfilesResult{Removed: removed}, nil
}
