package usecases

import (
	"context"

	"accountsforge/internal/application/profile/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/profile"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type ListProfilesQuery struct {
	Actor  authz.Actor
	Limit  int
	Offset int
}

type ListProfilesResult struct {
	Profiles []*dto.ProfileDTO
	Total    int64
}

// ListProfilesUseCase is the admin directory view.
type ListProfilesUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewListProfilesUseCase(profileRepo profile.Repository, logger logger.Interface) *ListProfilesUseCase {
	return &ListProfilesUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context, query ListProfilesQuery) (*ListProfilesResult, error) {
	if !query.Actor.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can list profiles", string(authz.ReasonAdminOnly))
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	profiles, total, err := uc.profileRepo.List(ctx, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list profiles", "error", err)
		return nil, apperrors.NewInternalError("failed to list profiles")
	}

	return &ListProfilesResult{
		Profiles: dto.FromEntities(profiles),
		Total:    total,
	}, nil
}
