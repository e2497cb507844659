package handlers

import (
	"github.com/gin-gonic/gin"

	"accountsforge/internal/domain/authz"
	vo "accountsforge/internal/domain/profile/valueobjects"
	"accountsforge/internal/shared/constants"
	"accountsforge/internal/shared/errors"
)

// actorFromContext rebuilds the authenticated principal from the values the
// auth middleware stored on the request context.
func actorFromContext(c *gin.Context) (authz.Actor, error) {
	rawID, exists := c.Get(constants.ContextKeyProfileID)
	if !exists {
		return authz.Actor{}, errors.NewUnauthorizedError("not authenticated")
	}

	profileID, ok := rawID.(uint)
	if !ok || profileID == 0 {
		return authz.Actor{}, errors.NewUnauthorizedError("not authenticated")
	}

	role, err := vo.NewRole(c.GetString(constants.ContextKeyRole))
	if err != nil {
		return authz.Actor{}, errors.NewUnauthorizedError("unknown role")
	}

	return authz.Actor{
		ProfileID:   profileID,
		AuthSubject: c.GetString(constants.ContextKeyAuthSubject),
		Role:        role,
	}, nil
}
