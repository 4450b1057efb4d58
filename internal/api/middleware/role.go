package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/api/handler"
	"github.com/thrive/wellness-api/internal/core/domain"
)

// RequireRole admits only session users holding one of roles. Mount it
// behind RequireSession.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(handler.CtxUserKey).(*domain.User)
			if user == nil || !slices.Contains(roles, user.Role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": domain.ErrForbidden.Error()})
			}
			return next(c)
		}
	}
}
