package heartbeat_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/totpqr/pkg/heartbeat"
)

// syncBuffer guards a bytes.Buffer written by the heartbeat goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func noop(context.Context, time.Time) error { return nil }

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		hb, err := heartbeat.New(noop)
		require.NoError(t, err)
		assert.Equal(t, heartbeat.DefaultInterval, hb.Interval())
	})

	t.Run("nil job", func(t *testing.T) {
		t.Parallel()
		_, err := heartbeat.New(nil)
		assert.ErrorIs(t, err, heartbeat.ErrNilJob)
	})

	for _, d := range []time.Duration{0, -time.Second} {
		t.Run("invalid interval "+d.String(), func(t *testing.T) {
			t.Parallel()
			_, err := heartbeat.New(noop, heartbeat.WithInterval(d))
			assert.ErrorIs(t, err, heartbeat.ErrInvalidInterval)
		})
	}

	t.Run("from config", func(t *testing.T) {
		t.Parallel()
		hb, err := heartbeat.New(noop, heartbeat.FromConfig(heartbeat.Config{Interval: 5 * time.Second})...)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, hb.Interval())

		hb, err = heartbeat.New(noop, heartbeat.FromConfig(heartbeat.Config{})...)
		require.NoError(t, err)
		assert.Equal(t, heartbeat.DefaultInterval, hb.Interval())
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("runs immediately and on every tick", func(t *testing.T) {
		t.Parallel()
		var runs atomic.Int32
		hb, err := heartbeat.New(func(context.Context, time.Time) error {
			runs.Add(1)
			return nil
		}, heartbeat.WithInterval(10*time.Millisecond))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- hb.Run(ctx) }()

		assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			require.Fail(t, "run did not stop")
		}
	})

	t.Run("first run does not wait for the ticker", func(t *testing.T) {
		t.Parallel()
		ran := make(chan struct{}, 1)
		hb, err := heartbeat.New(func(context.Context, time.Time) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		}, heartbeat.WithInterval(time.Hour))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = hb.Run(ctx) }()

		select {
		case <-ran:
		case <-time.After(time.Second):
			require.Fail(t, "job did not run on start")
		}
	})

	t.Run("passes clock time", func(t *testing.T) {
		t.Parallel()
		fixed := time.Unix(59, 0)
		got := make(chan time.Time, 1)
		hb, err := heartbeat.New(func(_ context.Context, now time.Time) error {
			select {
			case got <- now:
			default:
			}
			return nil
		}, heartbeat.WithClock(func() time.Time { return fixed }))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = hb.Run(ctx) }()

		select {
		case now := <-got:
			assert.True(t, fixed.Equal(now))
		case <-time.After(time.Second):
			require.Fail(t, "job did not run")
		}
	})

	t.Run("failures are logged and do not stop the loop", func(t *testing.T) {
		t.Parallel()
		var buf syncBuffer
		var runs atomic.Int32
		hb, err := heartbeat.New(func(context.Context, time.Time) error {
			switch runs.Add(1) {
			case 1:
				return errors.New("clock drift")
			case 2:
				panic("boom")
			}
			return nil
		},
			heartbeat.WithInterval(5*time.Millisecond),
			heartbeat.WithName("code-ticker"),
			heartbeat.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- hb.Run(ctx) }()

		assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
		cancel()
		<-done

		out := buf.String()
		assert.Contains(t, out, "heartbeat started")
		assert.Contains(t, out, "component=code-ticker")
		assert.Contains(t, out, "clock drift")
		assert.Contains(t, out, heartbeat.ErrJobPanicked.Error())
		assert.Contains(t, out, "heartbeat stopped")
	})

	t.Run("cancelled before start", func(t *testing.T) {
		t.Parallel()
		var runs atomic.Int32
		hb, err := heartbeat.New(func(context.Context, time.Time) error {
			runs.Add(1)
			return nil
		})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, hb.Run(ctx), context.Canceled)
		assert.Zero(t, runs.Load())
	})
}
