package poll

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller_FetchesImmediatelyAndOnTick(t *testing.T) {
	var n atomic.Int32
	got := make(chan int32, 16)

	p := NewPoller[int32]("test", zerolog.Nop())
	sub := p.Start(context.Background(), 10*time.Millisecond,
		func(context.Context) (int32, error) { return n.Add(1), nil },
		func(v int32) { got <- v },
	)
	defer sub.Stop()

	select {
	case v := <-got:
		assert.Equal(t, int32(1), v)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("first fetch was not immediate")
	}

	require.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestPoller_NoDeliveryAfterStop(t *testing.T) {
	var (
		mu        sync.Mutex
		stopped   bool
		lateCalls int
	)
	release := make(chan struct{})

	p := NewPoller[string]("test", zerolog.Nop())
	sub := p.Start(context.Background(), time.Millisecond,
		func(ctx context.Context) (string, error) {
			select {
			case <-release:
			case <-ctx.Done():
			}
			return "stale", nil
		},
		func(string) {
			mu.Lock()
			if stopped {
				lateCalls++
			}
			mu.Unlock()
		},
	)

	sub.Stop()
	mu.Lock()
	stopped = true
	mu.Unlock()
	close(release)

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, lateCalls)
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	p := NewPoller[int]("test", zerolog.Nop())
	sub := p.Start(context.Background(), time.Hour,
		func(context.Context) (int, error) { return 0, nil },
		func(int) {},
	)

	sub.Stop()
	sub.Stop()

	select {
	case <-sub.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}
}

func TestPoller_ParentCancelEndsSubscription(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPoller[int]("test", zerolog.Nop())
	sub := p.Start(ctx, time.Hour,
		func(context.Context) (int, error) { return 0, nil },
		func(int) {},
	)

	cancel()
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription outlived its parent context")
	}
}

func TestPoller_FetchErrorsAreSkipped(t *testing.T) {
	var calls atomic.Int32
	delivered := make(chan int, 4)

	p := NewPoller[int]("test", zerolog.Nop())
	sub := p.Start(context.Background(), 5*time.Millisecond,
		func(context.Context) (int, error) {
			if calls.Add(1) == 1 {
				return 0, errors.New("flaky")
			}
			return 42, nil
		},
		func(v int) { delivered <- v },
	)
	defer sub.Stop()

	select {
	case v := <-delivered:
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("poller did not recover from a failed fetch")
	}
}

func TestStartTimer_CompletesAtLimit(t *testing.T) {
	var (
		mu    sync.Mutex
		ticks []time.Duration
		final bool
	)

	sub := StartTimer(context.Background(), "test", 5*time.Millisecond, 15*time.Millisecond, func(elapsed time.Duration, complete bool) {
		mu.Lock()
		defer mu.Unlock()
		ticks = append(ticks, elapsed)
		final = complete
	})

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("timer did not complete")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []time.Duration{0, 5 * time.Millisecond, 10 * time.Millisecond, 15 * time.Millisecond}, ticks)
	assert.True(t, final)
}

func TestStartTimer_UnboundedRunsUntilStopped(t *testing.T) {
	var n atomic.Int32
	sub := StartTimer(context.Background(), "test", time.Millisecond, 0, func(_ time.Duration, complete bool) {
		assert.False(t, complete)
		n.Add(1)
	})

	require.Eventually(t, func() bool { return n.Load() >= 5 }, time.Second, time.Millisecond)
	sub.Stop()

	after := n.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, n.Load())
}

func TestPoller_NonPositiveIntervalUsesDefault(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		got := make(chan int, 1)
		p := NewPoller[int]("test", zerolog.Nop())

		var sub *Subscription
		require.NotPanics(t, func() {
			sub = p.Start(context.Background(), interval,
				func(context.Context) (int, error) { return 7, nil },
				func(v int) {
					select {
					case got <- v:
					default:
					}
				},
			)
		})

		select {
		case v := <-got:
			assert.Equal(t, 7, v)
		case <-time.After(time.Second):
			t.Fatalf("interval %v: no fetch", interval)
		}
		sub.Stop()
	}
}

func TestStartTimer_ZeroTickUsesDefault(t *testing.T) {
	first := make(chan time.Duration, 1)

	var sub *Subscription
	require.NotPanics(t, func() {
		sub = StartTimer(context.Background(), "test", 0, 0, func(elapsed time.Duration, _ bool) {
			select {
			case first <- elapsed:
			default:
			}
		})
	})
	defer sub.Stop()

	select {
	case elapsed := <-first:
		assert.Zero(t, elapsed)
	case <-time.After(time.Second):
		t.Fatal("timer never ticked")
	}
}
