package usecases

import (
	"context"
	"errors"

	"accountsforge/internal/application/profile/dto"
	"accountsforge/internal/domain/profile"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type PasswordLoginCommand struct {
	Email    string
	Password string
}

type PasswordLoginResult struct {
	Profile *dto.ProfileDTO
	Tokens  *dto.TokenPairDTO
}

// PasswordLoginUseCase authenticates a profile by email and password. Every
// failure mode returns the same unauthorized error so the response does not
// reveal whether the email exists.
type PasswordLoginUseCase struct {
	profileRepo profile.Repository
	hasher      PasswordHasher
	tokens      TokenService
	logger      logger.Interface
}

func NewPasswordLoginUseCase(
	profileRepo profile.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *PasswordLoginUseCase {
	return &PasswordLoginUseCase{
		profileRepo: profileRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *PasswordLoginUseCase) Execute(ctx context.Context, cmd PasswordLoginCommand) (*PasswordLoginResult, error) {
	p, err := uc.profileRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to look up profile by email", "error", err)
		return nil, apperrors.NewInternalError("failed to look up profile")
	}

	if p.PasswordHash() == "" {
		// OAuth-only profile; no password sign-in configured.
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, p.PasswordHash()); err != nil {
		uc.logger.Warnw("password verification failed", "profile_id", p.ID())
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.Generate(p.ID(), p.AuthSubject(), p.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "profile_id", p.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to generate tokens")
	}

	uc.logger.Infow("password login succeeded", "profile_id", p.ID())

	return &PasswordLoginResult{
		Profile: dto.FromEntity(p),
		Tokens: &dto.TokenPairDTO{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    pair.ExpiresIn,
		},
	}, nil
}
