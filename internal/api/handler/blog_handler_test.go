package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/thrive/wellness-api/internal/core/domain"
)

func TestBlogHandler_List(t *testing.T) {
	e := newEcho()
	h := NewBlogHandler(newTestAPI(newTestCatalog()))

	c, rec := newContext(e, http.MethodGet, "/v1/blog", "", patient())
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var all blogListResponse
	decode(t, rec, &all)
	if len(all.Posts) == 0 || len(all.Tags) == 0 {
		t.Fatalf("expected posts and tags, got %+v", all)
	}

	c, rec = newContext(e, http.MethodGet, "/v1/blog?q=zzzz-no-match", "", patient())
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var none blogListResponse
	decode(t, rec, &none)
	if len(none.Posts) != 0 || none.Query != "zzzz-no-match" {
		t.Fatalf("expected no posts, got %+v", none)
	}
}

func TestBlogHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	h := NewBlogHandler(newTestAPI(newTestCatalog()))

	c, _ := newContext(e, http.MethodGet, "/v1/blog/nope", "", patient())
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := h.Get(c); !errors.Is(err, domain.ErrBlogPostNotFound) {
		t.Fatalf("expected ErrBlogPostNotFound, got %v", err)
	}
}
