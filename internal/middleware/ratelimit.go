package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitKeyPrefix = "complaint_submissions:"

// SubmissionRateLimiter caps complaint submissions per user within a
// rolling window, backed by Redis. The counter key gets its TTL on the
// first increment; exceeding the limit yields a 429 with the remaining
// window. A Redis outage must not block intake, so errors fail open.
func SubmissionRateLimiter(rdb *redis.Client, log *zap.Logger, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFromContext(c)
			if sess.UserID == "" {
				// Unauthenticated requests are rejected downstream.
				return next(c)
			}

			ctx := c.Request().Context()
			key := rateLimitKeyPrefix + sess.UserID

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Warn("rate limiter unavailable", zap.Error(err))
				return next(c)
			}
			if count == 1 {
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					log.Warn("rate limiter expire failed", zap.Error(err))
				}
			}

			if count > int64(limit) {
				retryAfter, _ := rdb.TTL(ctx, key).Result()
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"success":    false,
					"message":    "Too many complaints submitted. Please try again later.",
					"retryAfter": retryAfter.Seconds(),
				})
			}

			return next(c)
		}
	}
}
