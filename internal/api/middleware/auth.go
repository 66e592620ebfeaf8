package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mywallet/wallet-system/internal/api/sanitize"
)

// TokenContextKey is the echo context key under which BearerToken stores the
// extracted session token.
const TokenContextKey = "session_token"

// BearerToken extracts the opaque session token from the Authorization
// header and injects it into the request context. Only a missing or blank
// header is rejected here (401); whether the token actually resolves to a
// session is decided by the store in the same step as the operation it
// gates, so an unresolvable token surfaces later as 404.
func BearerToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if strings.TrimSpace(header) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token := header
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}

			c.Set(TokenContextKey, sanitize.Strip(token))
			return next(c)
		}
	}
}
