package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run(`runs until the context is done`, func(t *testing.T) {
		var calls atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		worker := NewInstance("test", time.Millisecond, time.Millisecond)
		go func() {
			worker.Run(ctx, func(ctx context.Context) { calls.Add(1) })
			close(done)
		}()
		require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop")
		}
	})

	t.Run(`survives a panicking job`, func(t *testing.T) {
		var calls atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		worker := NewInstance("test", time.Millisecond, time.Millisecond)
		go worker.Run(ctx, func(ctx context.Context) {
			if calls.Add(1) == 1 {
				panic("boom")
			}
		})
		require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	})
}
