package usecases

import (
	"context"

	"accountsforge/internal/application/profile/dto"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	Tokens *dto.TokenPairDTO
}

// RefreshTokenUseCase exchanges a refresh token for a new pair. The old
// refresh token is superseded by the rotation.
type RefreshTokenUseCase struct {
	tokens TokenService
	logger logger.Interface
}

func NewRefreshTokenUseCase(tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokens: tokens,
		logger: logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	pair, err := uc.tokens.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("token refresh failed", "error", err)
		return nil, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	return &RefreshTokenResult{
		Tokens: &dto.TokenPairDTO{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    pair.ExpiresIn,
		},
	}, nil
}
