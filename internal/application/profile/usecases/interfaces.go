package usecases

import (
	"context"

	"accountsforge/internal/application/profile/dto"
	"accountsforge/internal/infrastructure/auth"
)

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenService issues and rotates token pairs.
type TokenService interface {
	Generate(profileID uint, authSubject, role string) (*auth.TokenPair, error)
	Refresh(refreshToken string) (*auth.TokenPair, error)
}

// OAuthProvider is the OAuth client surface the login flow needs.
type OAuthProvider interface {
	GetAuthURL(state string) (authURL, codeVerifier string, err error)
	ExchangeCode(ctx context.Context, code, codeVerifier string) (string, error)
	GetUserInfo(ctx context.Context, accessToken string) (*auth.OAuthUserInfo, error)
}

type EnsureProfileExecutor interface {
	Execute(ctx context.Context, cmd EnsureProfileCommand) (*EnsureProfileResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.ProfileDTO, error)
}

type ListProfilesExecutor interface {
	Execute(ctx context.Context, query ListProfilesQuery) (*ListProfilesResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error)
}

type RemoveDuplicateProfilesExecutor interface {
	Execute(ctx context.Context, cmd RemoveDuplicateProfilesCommand) (*RemoveDuplicateProfilesResult, error)
}

type PasswordLoginExecutor interface {
	Execute(ctx context.Context, cmd PasswordLoginCommand) (*PasswordLoginResult, error)
}

type GetOAuthURLExecutor interface {
	Execute(ctx context.Context, state string) (*GetOAuthURLResult, error)
}

type OAuthLoginExecutor interface {
	Execute(ctx context.Context, cmd OAuthLoginCommand) (*OAuthLoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}
