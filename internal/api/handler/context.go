package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/core/domain"
)

// CtxUserKey is where RequireSession stores the session user.
const CtxUserKey = "user"

// ctxUser returns the user injected by the session middleware. A missing
// user means the route was mounted without it; that is a wiring bug and is
// reported as ErrNoSession before any service call.
func ctxUser(c echo.Context) (*domain.User, error) {
	u, ok := c.Get(CtxUserKey).(*domain.User)
	if !ok || u == nil {
		return nil, domain.ErrNoSession
	}
	return u, nil
}
