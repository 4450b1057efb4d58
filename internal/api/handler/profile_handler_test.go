package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/thrive/wellness-api/internal/core/domain"
)

func TestProfileHandler_Update(t *testing.T) {
	e := newEcho()
	stub := &stubSessionStore{
		updateFn: func(_ context.Context, patch domain.ProfilePatch) (*domain.User, error) {
			if patch.Bio == nil || *patch.Bio != "Runner" || patch.Name != nil {
				t.Fatalf("unexpected patch %+v", patch)
			}
			u := patient().Apply(patch)
			return &u, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newContext(e, http.MethodPatch, "/v1/profile", `{"bio":"Runner"}`, patient())
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var got domain.User
	decode(t, rec, &got)
	if got.Bio != "Runner" || got.Name != "Emily Chen" {
		t.Fatalf("unexpected profile %+v", got)
	}
}

func TestProfileHandler_Update_EmptyPatch(t *testing.T) {
	e := newEcho()
	stub := &stubSessionStore{
		updateFn: func(context.Context, domain.ProfilePatch) (*domain.User, error) {
			t.Fatalf("empty patch must not reach the store")
			return nil, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newContext(e, http.MethodPatch, "/v1/profile", `{}`, patient())
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)
}

func TestProfileHandler_Update_SpecializationsPatient(t *testing.T) {
	e := newEcho()
	h := NewProfileHandler(&stubSessionStore{})

	c, _ := newContext(e, http.MethodPatch, "/v1/profile", `{"specializations":["Anxiety"]}`, patient())
	assertHTTPError(t, h.Update(c), http.StatusUnprocessableEntity)
}

func TestProfileHandler_Update_SessionEnded(t *testing.T) {
	e := newEcho()
	stub := &stubSessionStore{
		updateFn: func(context.Context, domain.ProfilePatch) (*domain.User, error) { return nil, nil },
	}
	h := NewProfileHandler(stub)

	c, _ := newContext(e, http.MethodPatch, "/v1/profile", `{"name":"Em"}`, patient())
	if err := h.Update(c); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestProfileHandler_Get(t *testing.T) {
	e := newEcho()
	h := NewProfileHandler(&stubSessionStore{})

	c, rec := newContext(e, http.MethodGet, "/v1/profile", "", patient())
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var got domain.User
	decode(t, rec, &got)
	if got.ID != "patient-1" {
		t.Fatalf("unexpected profile %+v", got)
	}
}
