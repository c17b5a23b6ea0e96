package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hilthontt/sovereign/internal/infrastructure/logging"
)

const (
	ResultCompleted = "completed"
	ResultFailed    = "failed"
	ResultDropped   = "dropped"
)

type TaskFunc func(ctx context.Context) error

type Task struct {
	ID   string
	Name string
	Run  TaskFunc
}

type Observer interface {
	TaskFinished(result string)
}

// Dispatcher runs tasks after the request that scheduled them has been
// answered. A single worker drains a bounded queue; Submit never blocks.
type Dispatcher struct {
	queue       chan Task
	taskTimeout time.Duration
	logger      logging.Logger
	observer    Observer

	mu      sync.Mutex
	stopped bool
}

func New(queueSize int, taskTimeout time.Duration, logger logging.Logger, observer Observer) *Dispatcher {
	return &Dispatcher{
		queue:       make(chan Task, queueSize),
		taskTimeout: taskTimeout,
		logger:      logger,
		observer:    observer,
	}
}

// Submit enqueues fn. It returns false when the queue is full or the
// dispatcher has stopped.
func (d *Dispatcher) Submit(name string, fn TaskFunc) (string, bool) {
	task := Task{ID: uuid.NewString(), Name: name, Run: fn}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		d.finish(task, ResultDropped, fmt.Errorf("dispatcher stopped"))
		return task.ID, false
	}

	select {
	case d.queue <- task:
		return task.ID, true
	default:
		d.finish(task, ResultDropped, fmt.Errorf("queue full (%d)", cap(d.queue)))
		return task.ID, false
	}
}

// Run processes tasks until ctx is cancelled, then runs whatever is still
// queued before returning.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info(logging.Dispatcher, logging.Startup, "background dispatcher started", map[logging.ExtraKey]any{
		"QueueSize": cap(d.queue),
	})

	for {
		select {
		case task := <-d.queue:
			d.execute(ctx, task)
		case <-ctx.Done():
			d.drain()
			d.logger.Info(logging.Dispatcher, logging.Shutdown, "background dispatcher stopped", nil)
			return nil
		}
	}
}

func (d *Dispatcher) drain() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	for {
		select {
		case task := <-d.queue:
			d.execute(context.Background(), task)
		default:
			return
		}
	}
}

func (d *Dispatcher) execute(ctx context.Context, task Task) {
	if d.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.taskTimeout)
		defer cancel()
	}

	err := d.safeRun(ctx, task)
	if err != nil {
		d.finish(task, ResultFailed, err)
		return
	}
	d.finish(task, ResultCompleted, nil)
}

func (d *Dispatcher) safeRun(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task.Run(ctx)
}

func (d *Dispatcher) finish(task Task, result string, err error) {
	if d.observer != nil {
		d.observer.TaskFinished(result)
	}

	extra := map[logging.ExtraKey]any{
		"TaskId":   task.ID,
		"TaskName": task.Name,
		"Result":   result,
	}

	switch result {
	case ResultCompleted:
		d.logger.Debug(logging.Dispatcher, logging.Scheduling, "background task finished", extra)
	default:
		extra[logging.ErrorMessage] = err.Error()
		d.logger.Warn(logging.Dispatcher, logging.Scheduling, "background task did not complete", extra)
	}
}
