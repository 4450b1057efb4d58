package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ScreenHandler serves the public screens that need no data.
type ScreenHandler struct{}

func NewScreenHandler() *ScreenHandler {
	return &ScreenHandler{}
}

// Landing handles GET /.
//
// @Summary      Landing screen
// @Tags         screens
// @Produce      json
// @Success      200  {object}  screenResponse
// @Router       / [get]
func (h *ScreenHandler) Landing(c echo.Context) error {
	return c.JSON(http.StatusOK, screenResponse{
		Screen:  "landing",
		Title:   "THRIVE",
		Actions: []string{"/login", "/signup"},
	})
}

// Login handles GET /login, the target of every unauthenticated redirect.
//
// @Summary      Login screen
// @Tags         screens
// @Produce      json
// @Success      200  {object}  screenResponse
// @Router       /login [get]
func (h *ScreenHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, screenResponse{
		Screen:  "login",
		Title:   "Welcome back",
		Actions: []string{"POST /auth/login", "/signup"},
	})
}

// Signup handles GET /signup.
//
// @Summary      Signup screen
// @Tags         screens
// @Produce      json
// @Success      200  {object}  screenResponse
// @Router       /signup [get]
func (h *ScreenHandler) Signup(c echo.Context) error {
	return c.JSON(http.StatusOK, screenResponse{
		Screen:  "signup",
		Title:   "Create your account",
		Actions: []string{"POST /auth/signup", "/login"},
	})
}
