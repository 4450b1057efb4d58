package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/internal/infrastructure/poll"
)

type FitnessHandler struct {
	streams     context.Context
	api         ports.CatalogAPI
	workoutTick time.Duration
}

func NewFitnessHandler(streams context.Context, api ports.CatalogAPI) *FitnessHandler {
	return &FitnessHandler{streams: orBackground(streams), api: api, workoutTick: time.Second}
}

// List handles GET /v1/fitness.
//
// @Summary      Fitness content
// @Tags         fitness
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  fitnessListResponse
// @Router       /v1/fitness [get]
func (h *FitnessHandler) List(c echo.Context) error {
	content, err := h.api.GetFitnessContent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fitnessListResponse{Content: content, Categories: domain.FitnessCategories})
}

// Category handles GET /v1/fitness/category/:category.
//
// @Summary      Fitness content by category
// @Tags         fitness
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true  "Category name, any case"
// @Success      200       {object}  fitnessCategoryResponse
// @Router       /v1/fitness/category/{category} [get]
func (h *FitnessHandler) Category(c echo.Context) error {
	category := c.Param("category")
	content, err := h.api.GetFitnessContentByCategory(c.Request().Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fitnessCategoryResponse{Category: category, Content: content})
}

// Get handles GET /v1/fitness/content/:id and /v1/fitness/individual/:id.
//
// @Summary      Fitness item
// @Tags         fitness
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Content id"
// @Success      200  {object}  domain.FitnessContent
// @Failure      404  {object}  errorResponse
// @Router       /v1/fitness/content/{id} [get]
func (h *FitnessHandler) Get(c echo.Context) error {
	item, err := h.api.GetFitnessContentByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

type workoutProgress struct {
	Elapsed   string  `json:"elapsed"`
	Remaining string  `json:"remaining"`
	Progress  float64 `json:"progress"`
	Complete  bool    `json:"complete"`
}

// Workout handles GET /v1/fitness/content/:id/workout. It streams progress
// every second and ends once the workout's full duration has elapsed.
//
// @Summary      Workout timer
// @Tags         fitness
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id   path  string  true  "Content id"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /v1/fitness/content/{id}/workout [get]
func (h *FitnessHandler) Workout(c echo.Context) error {
	item, err := h.api.GetFitnessContentByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	ctx, cancel := streamContext(c.Request().Context(), h.streams)
	defer cancel()

	// One tick stands for one second of the workout.
	limit := time.Duration(item.WorkoutLength()/time.Second) * h.workoutTick

	sse := startSSE(c)
	if limit <= 0 {
		return sse.Send("complete", workoutProgress{Elapsed: "0:00", Remaining: "0:00", Progress: 1, Complete: true})
	}
	sub := poll.StartTimer(ctx, "workout_timer", h.workoutTick, limit, func(elapsed time.Duration, complete bool) {
		p := workoutProgress{
			Elapsed:   formatTick(elapsed, h.workoutTick),
			Remaining: formatTick(limit-elapsed, h.workoutTick),
			Progress:  float64(elapsed) / float64(limit),
			Complete:  complete,
		}
		event := "progress"
		if complete {
			event = "complete"
		}
		_ = sse.Send(event, p)
	})
	defer sub.Stop()

	select {
	case <-ctx.Done():
	case <-sub.Done():
	}
	return nil
}
