package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountsforge/internal/domain/profile"
	vo "accountsforge/internal/domain/profile/valueobjects"
	"accountsforge/internal/infrastructure/auth"
	"accountsforge/internal/shared/constants"
	"accountsforge/internal/shared/logger"
)

type stubProfileRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*profile.Profile, error)
}

func (s *stubProfileRepository) Create(ctx context.Context, p *profile.Profile) error { return nil }
func (s *stubProfileRepository) GetByID(ctx context.Context, id uint) (*profile.Profile, error) {
	if s.GetByIDFunc != nil {
		return s.GetByIDFunc(ctx, id)
	}
	return nil, profile.ErrNotFound
}

func (s *stubProfileRepository) GetByAuthSubject(ctx context.Context, subject string) (*profile.Profile, error) {
	return nil, profile.ErrNotFound
}

func (s *stubProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	return nil, profile.ErrNotFound
}

func (s *stubProfileRepository) Update(ctx context.Context, p *profile.Profile) error { return nil }
func (s *stubProfileRepository) List(ctx context.Context, limit, offset int) ([]*profile.Profile, int64, error) {
	return nil, 0, nil
}

func (s *stubProfileRepository) RemoveDuplicates(ctx context.Context) (int64, error) { return 0, nil }

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func storedProfile(t *testing.T, id uint, role vo.Role) *profile.Profile {
	t.Helper()
	now := time.Now().Add(-time.Hour)
	p, err := profile.ReconstructProfile(id, "auth|42", "person@example.com", "Person", role, "", now, now)
	require.NoError(t, err)
	return p
}

func performAuthedRequest(t *testing.T, mw *AuthMiddleware, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := map[string]any{}
	engine := gin.New()
	engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		captured["profile_id"], _ = c.Get(constants.ContextKeyProfileID)
		captured["role"] = c.GetString(constants.ContextKeyRole)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	engine.ServeHTTP(w, req)
	return w, captured
}

// A role change must be visible on the very next request, even while the
// session keeps using tokens minted before the change.
func TestRequireAuth_RoleReadFromStorePerRequest(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	pair, err := jwtService.Generate(42, "auth|42", vo.RoleAdmin.String())
	require.NoError(t, err)

	repo := &stubProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*profile.Profile, error) {
			return storedProfile(t, 42, vo.RoleEmployee), nil
		},
	}

	mw := NewAuthMiddleware(jwtService, repo, noopLogger{})
	w, captured := performAuthedRequest(t, mw, pair.AccessToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), captured["profile_id"])
	assert.Equal(t, vo.RoleEmployee.String(), captured["role"])
}

// Refreshing carries the stale role claim forward inside the token, but the
// store stays authoritative for every request made with the new token.
func TestRequireAuth_RefreshedTokenDoesNotResurrectOldRole(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	pair, err := jwtService.Generate(42, "auth|42", vo.RoleAdmin.String())
	require.NoError(t, err)

	refreshed, err := jwtService.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	repo := &stubProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*profile.Profile, error) {
			return storedProfile(t, 42, vo.RoleEmployee), nil
		},
	}

	mw := NewAuthMiddleware(jwtService, repo, noopLogger{})
	w, captured := performAuthedRequest(t, mw, refreshed.AccessToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, vo.RoleEmployee.String(), captured["role"])
}

func TestRequireAuth_DeletedProfileRejected(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	pair, err := jwtService.Generate(42, "auth|42", vo.RoleAdmin.String())
	require.NoError(t, err)

	mw := NewAuthMiddleware(jwtService, &stubProfileRepository{}, noopLogger{})
	w, _ := performAuthedRequest(t, mw, pair.AccessToken)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedCredentials(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	mw := NewAuthMiddleware(jwtService, &stubProfileRepository{}, noopLogger{})

	t.Run("missing header", func(t *testing.T) {
		w, _ := performAuthedRequest(t, mw, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w, _ := performAuthedRequest(t, mw, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token rejected on access routes", func(t *testing.T) {
		pair, err := jwtService.Generate(42, "auth|42", vo.RoleAdmin.String())
		require.NoError(t, err)

		w, _ := performAuthedRequest(t, mw, pair.RefreshToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
