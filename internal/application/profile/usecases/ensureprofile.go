package usecases

import (
	"context"
	"errors"

	"accountsforge/internal/application/profile/dto"
	"accountsforge/internal/domain/profile"
	vo "accountsforge/internal/domain/profile/valueobjects"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type EnsureProfileCommand struct {
	AuthSubject string
	Email       string
	Name        string
}

type EnsureProfileResult struct {
	Profile *dto.ProfileDTO
	Created bool
}

// EnsureProfileUseCase resolves an authenticated subject to a profile,
// provisioning one with the configured default role on first sign-in.
// Provisioning is race-safe: a duplicate-subject failure from a concurrent
// first sign-in falls back to re-reading the winner's row.
type EnsureProfileUseCase struct {
	profileRepo profile.Repository
	defaultRole vo.Role
	logger      logger.Interface
}

func NewEnsureProfileUseCase(profileRepo profile.Repository, defaultRole vo.Role, logger logger.Interface) *EnsureProfileUseCase {
	return &EnsureProfileUseCase{
		profileRepo: profileRepo,
		defaultRole: defaultRole,
		logger:      logger,
	}
}

func (uc *EnsureProfileUseCase) Execute(ctx context.Context, cmd EnsureProfileCommand) (*EnsureProfileResult, error) {
	existing, err := uc.profileRepo.GetByAuthSubject(ctx, cmd.AuthSubject)
	if err == nil {
		return &EnsureProfileResult{Profile: dto.FromEntity(existing), Created: false}, nil
	}
	if !errors.Is(err, profile.ErrNotFound) {
		uc.logger.Errorw("failed to look up profile", "auth_subject", cmd.AuthSubject, "error", err)
		return nil, apperrors.NewInternalError("failed to look up profile")
	}

	p, err := profile.NewProfile(cmd.AuthSubject, cmd.Email, cmd.Name, uc.defaultRole)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.profileRepo.Create(ctx, p); err != nil {
		if errors.Is(err, profile.ErrDuplicateSubject) {
			// Lost the provisioning race; the winner's row is authoritative.
			winner, ferr := uc.profileRepo.GetByAuthSubject(ctx, cmd.AuthSubject)
			if ferr != nil {
				uc.logger.Errorw("failed to fetch profile after duplicate", "auth_subject", cmd.AuthSubject, "error", ferr)
				return nil, apperrors.NewInternalError("failed to look up profile")
			}
			return &EnsureProfileResult{Profile: dto.FromEntity(winner), Created: false}, nil
		}
		uc.logger.Errorw("failed to create profile", "auth_subject", cmd.AuthSubject, "error", err)
		return nil, apperrors.NewInternalError("failed to create profile")
	}

	uc.logger.Infow("profile provisioned", "profile_id", p.ID(), "auth_subject", cmd.AuthSubject, "role", uc.defaultRole.String())

	return &EnsureProfileResult{Profile: dto.FromEntity(p), Created: true}, nil
}
