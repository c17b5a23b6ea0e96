package dispatcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hilthontt/sovereign/internal/infrastructure/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type resultLog struct {
	mu      sync.Mutex
	results []string
}

func (r *resultLog) TaskFinished(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func (r *resultLog) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.results...)
}

func TestDispatcherRunsTasks(t *testing.T) {
	results := &resultLog{}
	d := New(4, time.Second, logging.NewNop(), results)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- d.Run(ctx) }()

	var ran atomic.Int32
	finished := make(chan struct{}, 3)
	_, ok := d.Submit("ok", func(context.Context) error { ran.Add(1); finished <- struct{}{}; return nil })
	require.True(t, ok)
	_, ok = d.Submit("fails", func(context.Context) error { finished <- struct{}{}; return errors.New("boom") })
	require.True(t, ok)
	_, ok = d.Submit("panics", func(context.Context) error { finished <- struct{}{}; panic("bad task") })
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		select {
		case <-finished:
		case <-time.After(time.Second):
			t.Fatal("task did not run")
		}
	}

	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), ran.Load())
	assert.ElementsMatch(t, []string{ResultCompleted, ResultFailed, ResultFailed}, results.snapshot())
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	results := &resultLog{}
	d := New(1, time.Second, logging.NewNop(), results)

	noop := func(context.Context) error { return nil }
	_, ok := d.Submit("first", noop)
	assert.True(t, ok)
	_, ok = d.Submit("second", noop)
	assert.False(t, ok)
	assert.Equal(t, []string{ResultDropped}, results.snapshot())
}

func TestDispatcherDrainsOnShutdown(t *testing.T) {
	d := New(8, time.Second, logging.NewNop(), nil)

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		_, ok := d.Submit("queued", func(context.Context) error { ran.Add(1); return nil })
		require.True(t, ok)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx))

	assert.Equal(t, int32(5), ran.Load())

	_, ok := d.Submit("late", func(context.Context) error { return nil })
	assert.False(t, ok)
}

func TestDispatcherTaskTimeout(t *testing.T) {
	d := New(1, 20*time.Millisecond, logging.NewNop(), nil)

	errCh := make(chan error, 1)
	_, ok := d.Submit("slow", func(ctx context.Context) error {
		<-ctx.Done()
		errCh <- ctx.Err()
		return ctx.Err()
	})
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- d.Run(ctx) }()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("task was not cancelled")
	}

	cancel()
	require.NoError(t, <-done)
}
