package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type memCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newMemCounter() *memCounter {
	return &memCounter{counts: make(map[string]int64)}
}

func (m *memCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	return m.counts[key], nil
}

func (m *memCounter) Get(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key], nil
}

func TestSlidingWindowAllow(t *testing.T) {
	ctx := context.Background()
	window := time.Minute

	// Align to a window boundary so interpolation math is predictable.
	base := time.Unix(0, 0).Add(1000 * window)

	t.Run("allows up to the limit in a fresh window", func(t *testing.T) {
		clk := &fakeClock{now: base}
		limiter := SlidingWindowFactory(clk, newMemCounter(), "test")(3, window)

		for i := 0; i < 3; i++ {
			res, err := limiter.Allow(ctx, "client-a")
			require.NoError(t, err)
			assert.True(t, res.Allowed, "request %d should pass", i+1)
		}

		res, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, int64(0), res.Remaining)
		assert.Greater(t, res.RetryAfter, time.Duration(0))
	})

	t.Run("keys are isolated", func(t *testing.T) {
		clk := &fakeClock{now: base}
		limiter := SlidingWindowFactory(clk, newMemCounter(), "test")(1, window)

		res, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, res.Allowed)

		res, err = limiter.Allow(ctx, "client-b")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("previous window weighs into the next one", func(t *testing.T) {
		clk := &fakeClock{now: base}
		counter := newMemCounter()
		limiter := SlidingWindowFactory(clk, counter, "test")(10, window)

		// Saturate the first window.
		for i := 0; i < 10; i++ {
			_, err := limiter.Allow(ctx, "client-a")
			require.NoError(t, err)
		}

		// Right after the boundary almost all prior weight remains.
		clk.now = base.Add(window + time.Second)
		res, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.False(t, res.Allowed)

		// Near the end of the second window the old requests have decayed.
		clk.now = base.Add(2*window - time.Second)
		res, err = limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("remaining decreases monotonically within a window", func(t *testing.T) {
		clk := &fakeClock{now: base}
		limiter := SlidingWindowFactory(clk, newMemCounter(), "test")(5, window)

		var last int64 = 6
		for i := 0; i < 5; i++ {
			res, err := limiter.Allow(ctx, "client-a")
			require.NoError(t, err)
			assert.Less(t, res.Remaining, last)
			last = res.Remaining
		}
	})

	t.Run("allowed result carries no retry hint", func(t *testing.T) {
		clk := &fakeClock{now: base}
		limiter := SlidingWindowFactory(clk, newMemCounter(), "test")(5, window)

		res, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, time.Duration(0), res.RetryAfter)
	})
}
