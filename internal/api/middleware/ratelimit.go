package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Limiter abstracts the sliding-window attempt store (Redis).
type Limiter interface {
	Allow(ctx context.Context, clientIP string) (bool, time.Duration)
}

// RateLimit rejects requests with 429 once the client IP exhausts the
// limiter's window. A nil limiter disables the middleware.
func RateLimit(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			allowed, retryAfter := limiter.Allow(c.Request().Context(), c.RealIP())
			if !allowed {
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts")
			}

			return next(c)
		}
	}
}
