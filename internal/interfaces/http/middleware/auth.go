package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"accountsforge/internal/domain/profile"
	"accountsforge/internal/infrastructure/auth"
	"accountsforge/internal/shared/constants"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService  *auth.JWTService
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, profileRepo profile.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// RequireAuth verifies the bearer token and stores the authenticated
// principal on the request context. The token establishes identity only;
// the role is read from the profile store on every request, so a role
// change takes effect on the next request regardless of token lifetime.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		p, err := m.profileRepo.GetByID(c.Request.Context(), claims.ProfileID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "profile no longer exists")
			} else {
				m.logger.Errorw("failed to load profile for authenticated request", "profile_id", claims.ProfileID, "error", err)
				utils.ErrorResponse(c, http.StatusUnauthorized, "failed to resolve principal")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProfileID, p.ID())
		c.Set(constants.ContextKeyAuthSubject, p.AuthSubject())
		c.Set(constants.ContextKeyRole, p.Role().String())

		c.Next()
	}
}
