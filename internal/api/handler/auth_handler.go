package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mywallet/wallet-system/internal/core/domain"
	"github.com/mywallet/wallet-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Param        body  body  signUpRequest  true  "User registration details"
// @Success      201
// @Failure      400  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	req.sanitize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "email already registered"})
		}
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// SignIn authenticates a user and opens a session.
//
// The response body is the bare token as text, not JSON; clients must treat
// it as an opaque string.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        body  body  signInRequest  true  "Login credentials"
// @Success      200  {string}  string  "session token"
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	req.sanitize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusForbidden, errorResponse{Error: "invalid credentials"})
		}
		return err
	}

	return c.String(http.StatusOK, token)
}

// Logout revokes the session behind the bearer token. Revoking a token that
// no longer exists still returns 200.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      200
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
