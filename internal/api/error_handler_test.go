package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/thrive/wellness-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"wrapped not found", fmt.Errorf("get therapist: %w", domain.ErrTherapistNotFound), http.StatusNotFound, `{"error":"therapist not found"}`},
		{"invalid mood keeps detail", fmt.Errorf("%w: %q", domain.ErrInvalidMood, "bored"), http.StatusUnprocessableEntity, `{"error":"invalid mood: \"bored\""}`},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, `{"error":"invalid payload"}`},
		{"router 404", echo.ErrNotFound, http.StatusNotFound, `{"error":"not found"}`},
		{"no session", domain.ErrNoSession, http.StatusUnauthorized, `{"error":"no active session"}`},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, `{"error":"request timed out"}`},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, `{"error":"something went wrong"}`},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tt.err, c)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHTTPErrorHandler_ClientGone(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(fmt.Errorf("wait: %w", context.Canceled), c)
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}
