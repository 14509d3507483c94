package accrual

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		tasks      int
		workers    int
		failEvery  int
		panicFirst bool
		wantRan    int32
	}{
		{name: "runs every task", tasks: 20, workers: 4, wantRan: 20},
		{name: "failures do not stop the pool", tasks: 6, workers: 2, failEvery: 2, wantRan: 6},
		{name: "non-positive size gets one worker", tasks: 3, workers: 0, wantRan: 3},
		{name: "panic is recovered", tasks: 4, workers: 1, panicFirst: true, wantRan: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.workers)
			var ran atomic.Int32

			for i := 0; i < tt.tasks; i++ {
				i := i
				err := wp.AddTask(context.Background(), func() error {
					if tt.panicFirst && i == 0 {
						panic("broken investment")
					}
					ran.Add(1)
					if tt.failEvery > 0 && i%tt.failEvery == 0 {
						return assert.AnError
					}
					return nil
				})
				require.NoError(t, err)
			}

			wp.Close()
			assert.Equal(t, tt.wantRan, ran.Load())
		})
	}
}

func TestWorkerPool_CloseWaitsForQueuedTasks(t *testing.T) {
	wp := NewWorkerPool(1)

	release := make(chan struct{})
	var done atomic.Bool
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		<-release
		done.Store(true)
		return nil
	}))

	var closed sync.WaitGroup
	closed.Add(1)
	go func() {
		defer closed.Done()
		wp.Close()
	}()

	close(release)
	closed.Wait()
	assert.True(t, done.Load())
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		close(started)
		<-release
		return nil
	}))
	<-started
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error {
		t.Error("task must not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	close(release)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}

func TestWorkerPool_AddTaskAfterClose(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()

	err := wp.AddTask(context.Background(), func() error {
		t.Error("task must not run")
		return nil
	})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPool_CloseDuringSubmission(t *testing.T) {
	wp := NewWorkerPool(2)

	var accepted, rejected atomic.Int32
	var ran atomic.Int32
	submitted := make(chan struct{})
	go func() {
		defer close(submitted)
		for i := 0; i < 200; i++ {
			err := wp.AddTask(context.Background(), func() error {
				ran.Add(1)
				return nil
			})
			if err != nil {
				assert.ErrorIs(t, err, ErrPoolClosed)
				rejected.Add(1)
				continue
			}
			accepted.Add(1)
		}
	}()

	assert.NotPanics(t, wp.Close)
	<-submitted
	assert.Equal(t, int32(200), accepted.Load()+rejected.Load())
	assert.Equal(t, accepted.Load(), ran.Load(), "every accepted task runs before Close returns")
}
