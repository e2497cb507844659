package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/application/profile/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/profile"
	vo "accountsforge/internal/domain/profile/valueobjects"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type UpdateProfileCommand struct {
	Actor     authz.Actor
	ProfileID uint
	Name      *string
	Role      *string
	Password  *string
}

type UpdateProfileResult struct {
	Profile *dto.ProfileDTO
}

// UpdateProfileUseCase changes display attributes, the stored password, or
// the role. Role changes are authorized separately from display changes:
// only admins may touch the role field, their own included.
type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewUpdateProfileUseCase(profileRepo profile.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	uc.logger.Infow("executing update profile use case", "profile_id", cmd.ProfileID, "actor_id", cmd.Actor.ProfileID)

	p, err := uc.profileRepo.GetByID(ctx, cmd.ProfileID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("profile %d not found", cmd.ProfileID))
		}
		uc.logger.Errorw("failed to get profile", "profile_id", cmd.ProfileID, "error", err)
		return nil, apperrors.NewInternalError("failed to get profile")
	}

	roleChange := cmd.Role != nil && *cmd.Role != p.Role().String()

	decision := authz.Decide(authz.Request{
		Actor:     cmd.Actor,
		Operation: authz.OpUpdate,
		Target: authz.Target{
			Resource:    authz.ResourceProfile,
			OwnerID:     p.ID(),
			AuthSubject: p.AuthSubject(),
			RoleChange:  roleChange,
		},
	})
	if !decision.Allow {
		uc.logger.Warnw("profile update denied", "profile_id", cmd.ProfileID, "actor_id", cmd.Actor.ProfileID, "reason", decision.Reason)
		return nil, apperrors.NewForbiddenError("not allowed to update this profile", string(decision.Reason))
	}

	if cmd.Name != nil {
		if err := p.UpdateDisplay(*cmd.Name); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if roleChange {
		newRole, err := vo.NewRole(*cmd.Role)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := p.ChangeRole(newRole); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != nil {
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "profile_id", cmd.ProfileID, "error", err)
			return nil, apperrors.NewInternalError("failed to hash password")
		}
		p.SetPasswordHash(hash)
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update profile", "profile_id", cmd.ProfileID, "error", err)
		return nil, apperrors.NewInternalError("failed to update profile")
	}

	uc.logger.Infow("profile updated", "profile_id", p.ID(), "role_changed", roleChange)

	return &UpdateProfileResult{Profile: dto.FromEntity(p)}, nil
}
