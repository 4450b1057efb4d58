package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/internal/infrastructure/poll"
	"github.com/thrive/wellness-api/pkg/logger"
)

const (
	callTick            = time.Second
	defaultPollInterval = 5 * time.Second
)

type ChatHandler struct {
	streams      context.Context
	api          ports.CatalogAPI
	catalog      ports.CatalogRepository
	poller       *poll.Poller[[]domain.ChatMessage]
	pollInterval time.Duration
	callTick     time.Duration
	log          zerolog.Logger
}

// NewChatHandler builds the chat screens. Open streams end when streams is
// cancelled; nil means they only end with the client. A pollInterval that
// is not positive falls back to five seconds.
func NewChatHandler(streams context.Context, api ports.CatalogAPI, catalog ports.CatalogRepository, pollInterval time.Duration, log zerolog.Logger) *ChatHandler {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &ChatHandler{
		streams:      orBackground(streams),
		api:          api,
		catalog:      catalog,
		poller:       poll.NewPoller[[]domain.ChatMessage]("chat_poll", log),
		pollInterval: pollInterval,
		callTick:     callTick,
		log:          logger.Component(log, "chat"),
	}
}

// Get handles GET /v1/chat/:id.
//
// @Summary      Conversation
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipient id"
// @Success      200  {object}  chatResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/chat/{id} [get]
func (h *ChatHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	recipient, err := h.recipient(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	msgs, err := h.api.GetChatMessages(ctx, user.ID, recipient.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Recipient: *recipient, Messages: msgs})
}

// Send handles POST /v1/chat/:id.
//
// @Summary      Send a message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Recipient id"
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.ChatMessage
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/chat/{id} [post]
func (h *ChatHandler) Send(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	recipient, err := h.recipient(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	msg, err := h.api.SendChatMessage(ctx, domain.OutgoingMessage{
		SenderID:   user.ID,
		ReceiverID: recipient.ID,
		Content:    req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// Stream handles GET /v1/chat/:id/stream. The transcript is re-fetched on
// every poll interval until the client disconnects or the server stops.
//
// @Summary      Live conversation
// @Tags         chat
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id   path  string  true  "Recipient id"
// @Success      200
// @Router       /v1/chat/{id}/stream [get]
func (h *ChatHandler) Stream(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	recipient, err := h.recipient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	ctx, cancel := streamContext(c.Request().Context(), h.streams)
	defer cancel()

	sse := startSSE(c)
	sub := h.poller.Start(ctx, h.pollInterval,
		func(ctx context.Context) ([]domain.ChatMessage, error) {
			return h.api.GetChatMessages(ctx, user.ID, recipient.ID)
		},
		func(msgs []domain.ChatMessage) {
			if err := sse.Send("messages", msgs); err != nil {
				h.log.Debug().Err(err).Msg("chat stream write failed")
			}
		},
	)
	defer sub.Stop()

	<-ctx.Done()
	return nil
}

// Call handles GET /v1/video-call/:id.
//
// @Summary      Video call
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipient id"
// @Success      200  {object}  videoCallResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/video-call/{id} [get]
func (h *ChatHandler) Call(c echo.Context) error {
	recipient, err := h.recipient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, videoCallResponse{Recipient: *recipient, Status: "connecting"})
}

// CallStream handles GET /v1/video-call/:id/stream, ticking the call
// duration every second until the client hangs up.
//
// @Summary      Call duration
// @Tags         chat
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id   path  string  true  "Recipient id"
// @Success      200
// @Router       /v1/video-call/{id}/stream [get]
func (h *ChatHandler) CallStream(c echo.Context) error {
	if _, err := h.recipient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	ctx, cancel := streamContext(c.Request().Context(), h.streams)
	defer cancel()

	sse := startSSE(c)
	sub := poll.StartTimer(ctx, "call_timer", h.callTick, 0, func(elapsed time.Duration, _ bool) {
		_ = sse.Send("duration", map[string]any{
			"elapsed": formatTick(elapsed, h.callTick),
			"seconds": int(elapsed / h.callTick),
		})
	})
	defer sub.Stop()

	<-ctx.Done()
	return nil
}

// recipient resolves id to a therapist, falling back to the patient list so
// therapists can open conversations with their patients.
func (h *ChatHandler) recipient(ctx context.Context, id string) (*domain.User, error) {
	t, err := h.api.GetTherapistByID(ctx, id)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, domain.ErrTherapistNotFound) {
		return nil, err
	}
	for _, p := range h.catalog.Patients() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("chat recipient %q: %w", id, err)
}
