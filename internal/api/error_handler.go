package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thrive/wellness-api/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// errorMapping turns a wrapped sentinel into a status and client message.
// An empty message means the error text itself is safe to show.
type errorMapping struct {
	target error
	status int
	msg    string
}

var errorMappings = []errorMapping{
	{domain.ErrTherapistNotFound, http.StatusNotFound, "therapist not found"},
	{domain.ErrBlogPostNotFound, http.StatusNotFound, "blog post not found"},
	{domain.ErrFitnessContentNotFound, http.StatusNotFound, "fitness content not found"},
	{domain.ErrJournalEntryNotFound, http.StatusNotFound, "journal entry not found"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	{domain.ErrNoSession, http.StatusUnauthorized, "no active session"},
	{domain.ErrInvalidMood, http.StatusUnprocessableEntity, ""},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "request timed out"},
}

// NewHTTPErrorHandler renders every handler error as {"error": "..."}.
// Errors nobody anticipated are logged and answered with a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if errors.Is(err, context.Canceled) {
			log.Debug().Str("path", c.Path()).Msg("request cancelled by client")
			return
		}

		status, msg := statusFor(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, errorResponse{Error: msg})
	}
}

func statusFor(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("request rejected")
		}
		if he.Code == http.StatusNotFound && he.Message == http.StatusText(http.StatusNotFound) {
			return he.Code, "not found"
		}
		return he.Code, fmt.Sprint(he.Message)
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		if m.msg == "" {
			return m.status, err.Error()
		}
		return m.status, m.msg
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")
	return http.StatusInternalServerError, "something went wrong"
}
