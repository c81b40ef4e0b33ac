package reconciler

import (
	"context"

	"go.uber.org/zap"
)

// WorkerPoolI bounds how many stale sessions a sweep settles concurrently.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is a single session settlement attempt.
type Task func() error

// WorkerPool runs settlement tasks on a fixed set of goroutines, so a large
// backlog of unconfirmed sessions cannot open unbounded gateway connections.
type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}

	for i := 0; i < size; i++ {
		go wp.settle()
	}
	return wp
}

func (wp *WorkerPool) settle() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("Session settlement failed", zap.Error(err))
		}
	}
}

// AddTask enqueues a settlement attempt, blocking while all workers are busy
// so a sweep larger than the pool backpressures instead of piling up.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	close(wp.tasks)
}
