package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shootbook/pkg/ratelimit"
	"shootbook/pkg/utils"
)

// RateLimitMiddleware applies rule per client IP, namespaced by class so
// read and write routes keep separate windows. Store failures let the
// request through.
func RateLimitMiddleware(limiter *ratelimit.Limiter, class string, rule ratelimit.Rule, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := class + ":" + c.ClientIP()
		res, err := limiter.Allow(c.Request.Context(), key, rule)
		if err != nil {
			logger.Warn("rate limit store unavailable", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if !res.Allowed {
			retry := int(math.Ceil(time.Until(res.ResetAt).Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			utils.RespondErrorDetails(c, http.StatusTooManyRequests, "Too many requests, please try again later", gin.H{
				"remaining": 0,
				"resetAt":   res.ResetAt.Unix(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
