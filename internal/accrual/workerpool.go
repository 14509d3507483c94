package accrual

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=accrual

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one accrual unit. A panic inside it is recovered and reported as
// an error so one bad investment cannot take the run down.
type Task func() error

var ErrPoolClosed = errors.New("worker pool is closed")

// WorkerPool runs tasks on a fixed number of goroutines. AddTask blocks while
// every worker is busy and the queue is full.
type WorkerPool struct {
	mu      sync.RWMutex
	closed  bool
	tasks   chan Task
	workers sync.WaitGroup
}

func NewWorkerPool(size int) *WorkerPool {
	size = max(size, 1)
	wp := &WorkerPool{tasks: make(chan Task, size)}
	wp.workers.Add(size)
	for range size {
		go wp.work()
	}
	return wp
}

func (wp *WorkerPool) work() {
	defer wp.workers.Done()
	for task := range wp.tasks {
		if err := runTask(task); err != nil {
			zap.L().Debug("accrual task failed", zap.Error(err))
		}
	}
}

func runTask(task Task) (err error) {
	defer func() {
		if p := recover(); p != nil {
			zap.L().Error("accrual task panicked", zap.Any("panic", p), zap.Stack("stack"))
			err = fmt.Errorf("task panicked: %v", p)
		}
	}()
	return task()
}

// AddTask queues task. It fails with ErrPoolClosed once Close has been called.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if !wp.closed {
		wp.closed = true
		close(wp.tasks)
	}
	wp.mu.Unlock()
	wp.workers.Wait()
}
