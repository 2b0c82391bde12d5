package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bmizerany/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitLimit(t *testing.T) {
	var running, peak int32
	tasks := make([]Task, 20)
	for idx := range tasks {
		tasks[idx] = func(ctx context.Context) error {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&running, -1)
			return nil
		}
	}

	require.Nil(t, Await(context.Background(), 3, tasks...))
	require.True(t, atomic.LoadInt32(&peak) <= 3)
}

func TestAwaitError(t *testing.T) {
	boom := errors.New("boom")
	err := AwaitWithDefaultLimit(context.Background(),
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return boom },
	)
	assert.Equal(t, boom, err)
}

func TestMapKeepsOrder(t *testing.T) {
	items := []int{5, 1, 4, 2, 3}
	results, err := Map(context.Background(), 2, items, func(ctx context.Context, v int) (int, error) {
		time.Sleep(time.Duration(v) * time.Millisecond)
		return v * 10, nil
	})
	require.Nil(t, err)
	assert.Equal(t, []int{50, 10, 40, 20, 30}, results)
}
