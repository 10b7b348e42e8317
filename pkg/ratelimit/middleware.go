package ratelimit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/fund-insight/fund_service/pkg/errors"
)

// KeyFunc extracts the rate limit key from the request
type KeyFunc func(*gin.Context) string

// Middleware rejects requests over the limiter's quota with 429.
// Limiter failures let the request through.
func Middleware(limiter Limiter, keyFunc KeyFunc, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)
		if key == "" {
			c.Next()
			return
		}

		allowed, remaining, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Error("Rate limit check failed", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))

			appErr := apperrors.New(apperrors.ErrCodeRateLimit, "Too many requests, please try again later").
				AddDetail("request_id", c.GetString("request_id"))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, appErr)
			return
		}

		c.Next()
	}
}

// IPKeyFunc extracts IP address from request
func IPKeyFunc(c *gin.Context) string {
	return c.ClientIP()
}
