package handler

import (
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/internal/core/service"
)

const maxStoryCircles = 4

type StoryHandler struct {
	api     ports.CatalogAPI
	catalog ports.CatalogRepository
	now     func() time.Time
	pick    func(n int) int
}

func NewStoryHandler(api ports.CatalogAPI, catalog ports.CatalogRepository) *StoryHandler {
	return &StoryHandler{api: api, catalog: catalog, now: time.Now, pick: rand.IntN}
}

// Stories handles GET /v1/story.
//
// @Summary      Stories
// @Tags         story
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  storyResponse
// @Router       /v1/story [get]
func (h *StoryHandler) Stories(c echo.Context) error {
	var (
		posts      []domain.BlogPost
		therapists []domain.User
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) {
		posts, err = h.api.GetBlogPosts(ctx)
		return err
	})
	g.Go(func() (err error) {
		therapists, err = h.api.GetTherapists(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	now := h.now()
	resp := storyResponse{
		Stories: make([]storyItem, 0, len(posts)),
		Circles: make([]storyCircle, 0, maxStoryCircles),
	}
	for _, p := range posts {
		resp.Stories = append(resp.Stories, storyItem{Post: p, TimeAgo: service.TimeAgo(p.PublishedDate, now)})
	}
	for _, t := range therapists {
		if len(resp.Circles) == maxStoryCircles {
			break
		}
		resp.Circles = append(resp.Circles, storyCircle{TherapistID: t.ID, Name: t.Name, ProfileImage: t.ProfileImage})
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateMeme handles GET /v1/create-meme.
//
// @Summary      Meme creator
// @Tags         story
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  memeResponse
// @Router       /v1/create-meme [get]
func (h *StoryHandler) CreateMeme(c echo.Context) error {
	resp := memeResponse{Templates: h.catalog.MemeTemplates()}
	if quotes := h.catalog.Quotes(); len(quotes) > 0 {
		resp.Quote = quotes[h.pick(len(quotes))]
	}
	return c.JSON(http.StatusOK, resp)
}
