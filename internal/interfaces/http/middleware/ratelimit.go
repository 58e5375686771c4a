package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"art/internal/infrastructure/ratelimit"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

// ReportRateLimiter throttles user submitted reports (incidents and
// conditions) per authenticated user. Limiter errors let the request through.
type ReportRateLimiter struct {
	limiter ratelimit.RateLimiter
	windows []ratelimit.Window
	logger  logger.Interface
}

func NewReportRateLimiter(limiter ratelimit.RateLimiter, perMinute, perHour int, logger logger.Interface) *ReportRateLimiter {
	return &ReportRateLimiter{
		limiter: limiter,
		windows: []ratelimit.Window{
			{Duration: time.Minute, Limit: perMinute},
			{Duration: time.Hour, Limit: perHour},
		},
		logger: logger,
	}
}

// Limit must run after RequireAuth. scope separates the counters of
// different report kinds.
func (m *ReportRateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:user:%d", scope, userID)
		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.windows...)
		if err != nil {
			m.logger.Warnw("rate limit check failed, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			m.logger.Warnw("report rate limit exceeded", "user_id", userID, "scope", scope)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many reports, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// Passthrough is used when rate limiting is off.
func Passthrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}
