package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
)

type ProfileHandler struct {
	sessions ports.SessionStore
}

func NewProfileHandler(sessions ports.SessionStore) *ProfileHandler {
	return &ProfileHandler{sessions: sessions}
}

// Get returns the signed-in user's profile.
//
// @Summary      Get profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update merges the supplied fields into the profile.
//
// @Summary      Edit profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profilePatchRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req profilePatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Specializations != nil && user.Role != domain.RoleTherapist {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "specializations can only be set by therapists")
	}

	patch := domain.ProfilePatch{
		Name:            req.Name,
		Email:           req.Email,
		ProfileImage:    req.ProfileImage,
		Bio:             req.Bio,
		Specializations: req.Specializations,
	}
	if patch.Empty() {
		return c.JSON(http.StatusOK, user)
	}

	updated, err := h.sessions.UpdateProfile(c.Request().Context(), patch)
	if err != nil {
		return err
	}
	if updated == nil {
		// The session ended between the middleware check and the update.
		return domain.ErrNoSession
	}
	return c.JSON(http.StatusOK, updated)
}
