package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/internal/core/service"
)

type JournalHandler struct {
	api ports.CatalogAPI
}

func NewJournalHandler(api ports.CatalogAPI) *JournalHandler {
	return &JournalHandler{api: api}
}

// List handles GET /v1/journal.
//
// @Summary      Journal entries
// @Tags         journal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  journalResponse
// @Router       /v1/journal [get]
func (h *JournalHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	entries, err := h.api.GetJournalEntries(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	tally := service.MoodTally(entries)
	return c.JSON(http.StatusOK, journalResponse{
		Entries: entries,
		Summary: journalSummary{
			Total:          len(entries),
			MostCommonMood: service.MostCommonMood(tally),
			Moods:          tally,
		},
		Months: service.GroupJournalByMonth(entries),
	})
}

// Get handles GET /v1/journal/:id.
//
// @Summary      Journal entry
// @Tags         journal
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  domain.JournalEntry
// @Failure      404  {object}  errorResponse
// @Router       /v1/journal/{id} [get]
func (h *JournalHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	entries, err := h.api.GetJournalEntries(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == id {
			return c.JSON(http.StatusOK, e)
		}
	}
	return fmt.Errorf("journal entry %q: %w", id, domain.ErrJournalEntryNotFound)
}

// Create handles POST /v1/journal.
//
// @Summary      Write a journal entry
// @Tags         journal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJournalEntryRequest  true  "Entry"
// @Success      201   {object}  domain.JournalEntry
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/journal [post]
func (h *JournalHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createJournalEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	mood, err := domain.ParseMood(req.Mood)
	if err != nil {
		return err
	}

	entry, err := h.api.SaveJournalEntry(c.Request().Context(), domain.JournalDraft{
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    mood,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}
