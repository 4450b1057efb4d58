package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/internal/core/service"
)

type BlogHandler struct {
	api ports.CatalogAPI
}

func NewBlogHandler(api ports.CatalogAPI) *BlogHandler {
	return &BlogHandler{api: api}
}

// List handles GET /v1/blog.
//
// @Summary      Blog posts
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Search title, content and tags"
// @Param        tag  query     string  false  "Only posts with this tag"
// @Success      200  {object}  blogListResponse
// @Router       /v1/blog [get]
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.api.GetBlogPosts(c.Request().Context())
	if err != nil {
		return err
	}
	q, tag := c.QueryParam("q"), c.QueryParam("tag")
	return c.JSON(http.StatusOK, blogListResponse{
		Posts: service.SearchBlogPosts(posts, q, tag),
		Tags:  service.BlogTags(posts),
		Query: q,
		Tag:   tag,
	})
}

// Get handles GET /v1/blog/:id.
//
// @Summary      Blog post
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.BlogPost
// @Failure      404  {object}  errorResponse
// @Router       /v1/blog/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	post, err := h.api.GetBlogPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}
