package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mywallet/wallet-system/internal/api/middleware"
)

// ctxToken extracts the session token injected by the BearerToken
// middleware. An empty token means the middleware did not run (or the
// header held nothing but markup), which is the same failure as a missing
// header.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get(middleware.TokenContextKey).(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	return token, nil
}
