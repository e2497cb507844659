package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accountsforge/internal/infrastructure/ratelimit"
	"accountsforge/internal/shared/constants"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/utils"
)

// RateLimitMiddleware throttles requests per client. Authenticated requests
// are keyed by profile ID, anonymous ones by client IP. Limiter failures
// fail open so a Redis outage does not take the API down with it.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.Config
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, config ratelimit.Config, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if profileID, exists := c.Get(constants.ContextKeyProfileID); exists {
			if id, ok := profileID.(uint); ok {
				key = "profile:" + strconv.FormatUint(uint64(id), 10)
			}
		}

		allowed, err := m.limiter.Allow(key, m.config)
		if err != nil {
			m.logger.Errorw("rate limiter unavailable", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}
