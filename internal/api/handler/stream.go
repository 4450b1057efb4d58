package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thrive/wellness-api/internal/core/service"
)

// sseStream writes server-sent events to a committed response. Send is safe
// to call from the poller goroutine while the handler waits.
type sseStream struct {
	mu  sync.Mutex
	res *echo.Response
}

// streamContext ends when the client disconnects or when streams, the
// lifetime shared by every open event stream, is cancelled. http.Server
// never cancels request contexts on Shutdown, so long-lived handlers must
// watch streams to let the server drain.
func streamContext(req, streams context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(req)
	stop := context.AfterFunc(streams, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func startSSE(c echo.Context) *sseStream {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()
	return &sseStream{res: res}
}

func (s *sseStream) Send(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.res, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	s.res.Flush()
	return nil
}

// formatTick renders the number of elapsed ticks as m:ss, one tick being
// one second on the clock face.
func formatTick(elapsed, tick time.Duration) string {
	return service.FormatDuration(time.Duration(elapsed/tick) * time.Second)
}
