package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/service"
	"github.com/thrive/wellness-api/internal/infrastructure/db/memory"
)

var testNow = time.Date(2024, time.March, 3, 12, 0, 0, 0, time.UTC)

type fixedRanker float64

func (r fixedRanker) Score(string, domain.User) float64 { return float64(r) }

func newTestCatalog() *memory.Catalog {
	return memory.NewCatalog(func() time.Time { return testNow })
}

func newTestAPI(catalog *memory.Catalog) *service.MockAPI {
	return service.NewMockAPI(catalog, fixedRanker(0.85), zerolog.Nop(),
		service.WithLatencyScale(0),
		service.WithClock(func() time.Time { return testNow }),
		service.WithIDGenerator(func(prefix string) string { return prefix + "-test" }),
	)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newContext builds a request context with an optional JSON body and the
// given user already injected, the way RequireSession leaves it.
func newContext(e *echo.Echo, method, target, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(CtxUserKey, user)
	}
	return c, rec
}

func patient() *domain.User {
	return &domain.User{ID: "patient-1", Name: "Emily Chen", Email: "emily@example.com", Role: domain.RolePatient}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func assertHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d (%v)", code, he.Code, he.Message)
	}
	return he
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
}

// sseEvents returns the event names found in a text/event-stream body.
func sseEvents(body string) []string {
	var events []string
	for _, line := range strings.Split(body, "\n") {
		if name, ok := strings.CutPrefix(line, "event: "); ok {
			events = append(events, name)
		}
	}
	return events
}
