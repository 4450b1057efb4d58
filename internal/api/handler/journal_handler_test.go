package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/thrive/wellness-api/internal/core/domain"
)

func TestJournalHandler_List(t *testing.T) {
	e := newEcho()
	h := NewJournalHandler(newTestAPI(newTestCatalog()))

	c, rec := newContext(e, http.MethodGet, "/v1/journal", "", patient())
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusOK)

	var resp journalResponse
	decode(t, rec, &resp)
	if resp.Summary.Total != 2 || len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", resp.Summary)
	}
	// anxious and happy tie; happy is listed first.
	if resp.Summary.MostCommonMood != domain.MoodHappy {
		t.Fatalf("unexpected most common mood %q", resp.Summary.MostCommonMood)
	}
	if len(resp.Months) != 1 || resp.Months[0].Month != "July 2023" {
		t.Fatalf("unexpected months %+v", resp.Months)
	}
	for _, entry := range resp.Entries {
		if entry.UserID != "patient-1" {
			t.Fatalf("entry not scoped to user: %+v", entry)
		}
	}
}

func TestJournalHandler_List_NoUser(t *testing.T) {
	e := newEcho()
	h := NewJournalHandler(newTestAPI(newTestCatalog()))

	c, _ := newContext(e, http.MethodGet, "/v1/journal", "", nil)
	if err := h.List(c); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestJournalHandler_Get(t *testing.T) {
	e := newEcho()
	h := NewJournalHandler(newTestAPI(newTestCatalog()))

	c, rec := newContext(e, http.MethodGet, "/v1/journal/journal-2", "", patient())
	c.SetParamNames("id")
	c.SetParamValues("journal-2")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var entry domain.JournalEntry
	decode(t, rec, &entry)
	if entry.Title != "Progress with therapy" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	c, _ = newContext(e, http.MethodGet, "/v1/journal/missing", "", patient())
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrJournalEntryNotFound) {
		t.Fatalf("expected ErrJournalEntryNotFound, got %v", err)
	}
}

func TestJournalHandler_Create(t *testing.T) {
	e := newEcho()
	h := NewJournalHandler(newTestAPI(newTestCatalog()))

	c, rec := newContext(e, http.MethodPost, "/v1/journal", `{"title":"Evening","content":"Went for a walk."}`, patient())
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertStatus(t, rec, http.StatusCreated)

	var entry domain.JournalEntry
	decode(t, rec, &entry)
	if entry.ID != "journal-test" || entry.Mood != domain.MoodNeutral || entry.UserID != "patient-1" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if !entry.CreatedAt.Equal(testNow) {
		t.Fatalf("unexpected timestamp %v", entry.CreatedAt)
	}
}

func TestJournalHandler_Create_Validation(t *testing.T) {
	e := newEcho()
	h := NewJournalHandler(newTestAPI(newTestCatalog()))

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"content":"x"}`},
		{"blank content", `{"title":"x","content":"  "}`},
		{"unknown mood", `{"title":"x","content":"y","mood":"ecstatic"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(e, http.MethodPost, "/v1/journal", tt.body, patient())
			assertHTTPError(t, h.Create(c), http.StatusUnprocessableEntity)
		})
	}
}
