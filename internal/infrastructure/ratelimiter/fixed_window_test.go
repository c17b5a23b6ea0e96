package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type manualClock struct{ t time.Time }

func (c *manualClock) now() time.Time { return c.t }

func TestFixedWindowAllow(t *testing.T) {
	clock := &manualClock{t: time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)}
	rl := newFixedWindow(2, time.Minute, clock.now)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)

	clock.t = clock.t.Add(15 * time.Second)
	ok, retry := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 45*time.Second, retry)

	// Other clients have their own window.
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)

	clock.t = clock.t.Add(45 * time.Second)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestFixedWindowCleanup(t *testing.T) {
	clock := &manualClock{t: time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC)}
	rl := newFixedWindow(1, time.Second, clock.now)

	rl.Allow("a")
	rl.Allow("b")
	require.Len(t, rl.windows, 2)

	clock.t = clock.t.Add(2 * time.Second)
	rl.cleanup()
	assert.Empty(t, rl.windows)
}

func TestFixedWindowCloseStopsCleanup(t *testing.T) {
	defer goleak.VerifyNone(t)

	rl := NewFixedWindowRateLimiter(10, time.Millisecond)
	ok, _ := rl.Allow("a")
	assert.True(t, ok)

	rl.Close()
	rl.Close()
}
