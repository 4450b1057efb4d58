package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HomeHandler struct {
	home HomeLoader
}

func NewHomeHandler(home HomeLoader) *HomeHandler {
	return &HomeHandler{home: home}
}

// Patient handles GET /v1/home.
//
// @Summary      Patient home
// @Tags         home
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.PatientHome
// @Router       /v1/home [get]
func (h *HomeHandler) Patient(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	home, err := h.home.PatientHome(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, home)
}

// Therapist handles GET /v1/therapist-home.
//
// @Summary      Therapist home
// @Tags         home
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.TherapistHome
// @Failure      403  {object}  errorResponse
// @Router       /v1/therapist-home [get]
func (h *HomeHandler) Therapist(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.home.TherapistHome(user))
}
