package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteKeepsOrderAndErrors(t *testing.T) {
	boom := errors.New("boom")
	pool := NewPool[int, int](3, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n * n, nil
	}).WithLabel(func(n int) string { return "unit" })

	tasks := pool.Execute(context.Background(), []int{1, 2, 3, 4})

	require.Len(t, tasks, 4)
	assert.Equal(t, 1, tasks[0].Result)
	assert.ErrorIs(t, tasks[1].Err, boom)
	assert.Equal(t, 9, tasks[2].Result)
	assert.Equal(t, 16, tasks[3].Result)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.Input)
	}
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	pool := NewPool[int, int](2, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	tasks := pool.Execute(ctx, []int{1, 2, 3})

	require.Len(t, tasks, 3)
	for _, task := range tasks {
		if task.Err == nil {
			continue
		}
		assert.ErrorIs(t, task.Err, context.Canceled)
	}
	assert.LessOrEqual(t, int(calls.Load()), 3)
}

func TestNewPoolClampsWorkers(t *testing.T) {
	pool := NewPool[int, int](0, func(_ context.Context, n int) (int, error) { return n, nil })
	assert.Equal(t, 1, pool.workers)
}
