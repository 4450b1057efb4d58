package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionStore
	tokens   ports.TokenIssuer
}

func NewAuthHandler(sessions ports.SessionStore, tokens ports.TokenIssuer) *AuthHandler {
	return &AuthHandler{sessions: sessions, tokens: tokens}
}

// Login starts a session for the given email. Any password is accepted.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, user)
}

// Signup creates an account and starts a session for it.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.sessions.Signup(c.Request().Context(), req.Email, req.Password, req.Name, domain.Role(req.UserType))
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, user)
}

// Logout ends the current session. Logging out without a session succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session reports the active identity, if any.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	user, ok := h.sessions.Current()
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: ok, User: user})
}

func (h *AuthHandler) respond(c echo.Context, status int, user *domain.User) error {
	token, err := h.tokens.Issue(user)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	return c.JSON(status, authResponse{Token: token, User: user})
}
