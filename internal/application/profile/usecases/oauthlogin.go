package usecases

import (
	"context"

	"accountsforge/internal/application/profile/dto"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type GetOAuthURLResult struct {
	AuthURL      string
	CodeVerifier string
}

// GetOAuthURLUseCase starts the OAuth flow. The caller holds the code
// verifier (in a short-lived cookie) until the callback arrives.
type GetOAuthURLUseCase struct {
	oauth  OAuthProvider
	logger logger.Interface
}

func NewGetOAuthURLUseCase(oauth OAuthProvider, logger logger.Interface) *GetOAuthURLUseCase {
	return &GetOAuthURLUseCase{
		oauth:  oauth,
		logger: logger,
	}
}

func (uc *GetOAuthURLUseCase) Execute(ctx context.Context, state string) (*GetOAuthURLResult, error) {
	authURL, codeVerifier, err := uc.oauth.GetAuthURL(state)
	if err != nil {
		uc.logger.Errorw("failed to build oauth url", "error", err)
		return nil, apperrors.NewInternalError("failed to build authorization URL")
	}
	return &GetOAuthURLResult{AuthURL: authURL, CodeVerifier: codeVerifier}, nil
}

type OAuthLoginCommand struct {
	Code         string
	CodeVerifier string
}

type OAuthLoginResult struct {
	Profile *dto.ProfileDTO
	Created bool
	Tokens  *dto.TokenPairDTO
}

// OAuthLoginUseCase completes the OAuth callback: exchanges the code,
// resolves or provisions the profile for the provider subject, and issues
// a token pair.
type OAuthLoginUseCase struct {
	oauth         OAuthProvider
	ensureProfile EnsureProfileExecutor
	tokens        TokenService
	logger        logger.Interface
}

func NewOAuthLoginUseCase(
	oauth OAuthProvider,
	ensureProfile EnsureProfileExecutor,
	tokens TokenService,
	logger logger.Interface,
) *OAuthLoginUseCase {
	return &OAuthLoginUseCase{
		oauth:         oauth,
		ensureProfile: ensureProfile,
		tokens:        tokens,
		logger:        logger,
	}
}

func (uc *OAuthLoginUseCase) Execute(ctx context.Context, cmd OAuthLoginCommand) (*OAuthLoginResult, error) {
	accessToken, err := uc.oauth.ExchangeCode(ctx, cmd.Code, cmd.CodeVerifier)
	if err != nil {
		uc.logger.Warnw("oauth code exchange failed", "error", err)
		return nil, apperrors.NewUnauthorizedError("authorization code exchange failed")
	}

	info, err := uc.oauth.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("failed to fetch oauth user info", "error", err)
		return nil, apperrors.NewUnauthorizedError("failed to fetch user info")
	}

	if !info.EmailVerified {
		return nil, apperrors.NewUnauthorizedError("email address is not verified with the provider")
	}

	ensured, err := uc.ensureProfile.Execute(ctx, EnsureProfileCommand{
		AuthSubject: info.AuthSubject(),
		Email:       info.Email,
		Name:        info.Name,
	})
	if err != nil {
		return nil, err
	}

	pair, err := uc.tokens.Generate(ensured.Profile.ID, ensured.Profile.AuthSubject, ensured.Profile.Role)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "profile_id", ensured.Profile.ID, "error", err)
		return nil, apperrors.NewInternalError("failed to generate tokens")
	}

	uc.logger.Infow("oauth login succeeded", "profile_id", ensured.Profile.ID, "created", ensured.Created)

	return &OAuthLoginResult{
		Profile: ensured.Profile,
		Created: ensured.Created,
		Tokens: &dto.TokenPairDTO{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    pair.ExpiresIn,
		},
	}, nil
}
