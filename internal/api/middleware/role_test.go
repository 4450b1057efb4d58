package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/api/handler"
	"github.com/thrive/wellness-api/internal/core/domain"
)

func runRequireRole(t *testing.T, user *domain.User, roles ...domain.Role) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/therapist-home", nil), rec)
	if user != nil {
		c.Set(handler.CtxUserKey, user)
	}

	called := false
	h := RequireRole(roles...)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestRequireRole(t *testing.T) {
	therapist := &domain.User{ID: "u1", Role: domain.RoleTherapist}
	patient := &domain.User{ID: "u2", Role: domain.RolePatient}

	tests := []struct {
		name       string
		user       *domain.User
		roles      []domain.Role
		wantCalled bool
		wantCode   int
	}{
		{"matching role", therapist, []domain.Role{domain.RoleTherapist}, true, http.StatusOK},
		{"other role", patient, []domain.Role{domain.RoleTherapist}, false, http.StatusForbidden},
		{"any of several", patient, []domain.Role{domain.RoleTherapist, domain.RolePatient}, true, http.StatusOK},
		{"no user", nil, []domain.Role{domain.RolePatient}, false, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, called := runRequireRole(t, tt.user, tt.roles...)
			if called != tt.wantCalled {
				t.Fatalf("next called = %v, want %v", called, tt.wantCalled)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}
