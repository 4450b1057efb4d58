// Package poll runs the periodic background work behind live screens:
// transcript polling and the call and workout timers. Every goroutine it
// starts is owned by a Subscription and ends when that subscription is
// stopped or its parent context is done.
package poll

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/thrive/wellness-api/internal/api/metrics"
	"github.com/thrive/wellness-api/pkg/logger"
)

// DefaultInterval replaces a poll interval or timer tick that is not
// positive.
const DefaultInterval = time.Second

func orDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultInterval
	}
	return d
}

// Subscription is a handle on one running poller or timer.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func newSubscription(ctx context.Context, kind string) (*Subscription, context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	metrics.ActiveSubscriptions.WithLabelValues(kind).Inc()
	return &Subscription{cancel: cancel, done: make(chan struct{})}, ctx
}

// Stop cancels the in-flight work and waits for the goroutine to exit.
// Once Stop returns nothing is delivered any more. It is safe to call more
// than once, but not from inside a deliver or onTick callback.
func (s *Subscription) Stop() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed when the subscription's goroutine has exited, either
// through Stop, parent cancellation or a timer reaching its limit.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Poller repeatedly fetches a T and hands each result to a callback.
type Poller[T any] struct {
	kind string
	log  zerolog.Logger
}

// NewPoller returns a poller whose subscriptions are reported under kind.
func NewPoller[T any](kind string, log zerolog.Logger) *Poller[T] {
	return &Poller[T]{kind: kind, log: logger.Component(log, "poll").With().Str("kind", kind).Logger()}
}

// Start fetches immediately and then every interval. Successful results go
// to deliver; failures are logged and the next tick retries.
func (p *Poller[T]) Start(ctx context.Context, interval time.Duration, fetch func(context.Context) (T, error), deliver func(T)) *Subscription {
	sub, ctx := newSubscription(ctx, p.kind)
	interval = orDefault(interval)

	go func() {
		defer close(sub.done)
		defer metrics.ActiveSubscriptions.WithLabelValues(p.kind).Dec()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			p.poll(ctx, fetch, deliver)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return sub
}

func (p *Poller[T]) poll(ctx context.Context, fetch func(context.Context) (T, error), deliver func(T)) {
	v, err := fetch(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			p.log.Warn().Err(err).Msg("poll fetch failed")
		}
		return
	}
	deliver(v)
}

// StartTimer reports elapsed time every tick, starting with zero. With a
// positive limit it stops by itself once elapsed reaches limit, reporting
// that last tick with complete set.
func StartTimer(ctx context.Context, kind string, tick, limit time.Duration, onTick func(elapsed time.Duration, complete bool)) *Subscription {
	sub, ctx := newSubscription(ctx, kind)
	tick = orDefault(tick)

	go func() {
		defer close(sub.done)
		defer metrics.ActiveSubscriptions.WithLabelValues(kind).Dec()

		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		var elapsed time.Duration
		for {
			if limit > 0 && elapsed >= limit {
				onTick(limit, true)
				return
			}
			onTick(elapsed, false)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				elapsed += tick
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return sub
}
