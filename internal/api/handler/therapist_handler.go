package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/internal/core/service"
)

// HomeLoader assembles the composite screens.
type HomeLoader interface {
	PatientHome(ctx context.Context, user *domain.User) (*service.PatientHome, error)
	TherapistHome(user *domain.User) *service.TherapistHome
	Directory(ctx context.Context, userID, query string) ([]service.RankedTherapist, error)
	Recommended(ctx context.Context, userID string) ([]domain.TherapistMatch, error)
}

type TherapistHandler struct {
	api  ports.CatalogAPI
	home HomeLoader
}

func NewTherapistHandler(api ports.CatalogAPI, home HomeLoader) *TherapistHandler {
	return &TherapistHandler{api: api, home: home}
}

// List handles GET /v1/therapists.
//
// @Summary      Therapist directory
// @Tags         therapists
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Search by name or specialization"
// @Success      200  {object}  directoryResponse
// @Router       /v1/therapists [get]
func (h *TherapistHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	q := c.QueryParam("q")
	ranked, err := h.home.Directory(c.Request().Context(), user.ID, q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, directoryResponse{Query: q, Therapists: ranked})
}

// Recommended handles GET /v1/therapists/recommended.
//
// @Summary      Recommended therapists
// @Tags         therapists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  recommendedResponse
// @Router       /v1/therapists/recommended [get]
func (h *TherapistHandler) Recommended(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	matches, err := h.home.Recommended(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recommendedResponse{Matches: matches})
}

// Get handles GET /v1/therapists/:id.
//
// @Summary      Therapist detail
// @Tags         therapists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Therapist id"
// @Success      200  {object}  therapistDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/therapists/{id} [get]
func (h *TherapistHandler) Get(c echo.Context) error {
	t, err := h.api.GetTherapistByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, therapistDetailResponse{Therapist: *t})
}
