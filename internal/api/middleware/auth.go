package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/api/handler"
	"github.com/thrive/wellness-api/internal/core/domain"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

// SessionReader exposes the active identity.
type SessionReader interface {
	Current() (*domain.User, bool)
}

// RequireSession admits a request only when a session is active and the
// request carries that session's bearer token. Anything else is redirected
// to the login screen. On success the user is stored in the context.
//
// The token may also be passed as the access_token query parameter, for
// event-stream clients that cannot set headers.
func RequireSession(sessions SessionReader, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := sessions.Current()
			if !ok {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			raw, ok := bearerToken(c)
			if !ok {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			if sub, _ := claims.GetSubject(); sub != user.ID {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			c.Set(handler.CtxUserKey, user)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		t := c.QueryParam("access_token")
		return t, t != ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
