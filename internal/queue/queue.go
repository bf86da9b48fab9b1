// Package queue runs background placement and publish jobs on a fixed worker pool.
package queue

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Default configuration values for the queue.
const (
	defaultWorkers = 2
	defaultBuffer  = 64
)

// Job is a unit of background work. Implementations are plain value types so
// a job survives in the channel after its enqueuer returns.
type Job interface {
	// Kind routes the job to its registered handler.
	Kind() string
}

// PlacementJob asks for a finalized upload session to be processed.
type PlacementJob struct {
	SessionID ulid.ULID
}

// Kind implements Job.
func (PlacementJob) Kind() string { return "placement" }

// PublishJob asks for an approved recitation to be published.
type PublishJob struct {
	RecitationID int

	// Replace means the files overwrite an earlier publication and the
	// catalog rows already exist.
	Replace bool
}

// Kind implements Job.
func (PublishJob) Kind() string { return "publish" }

// Handler processes one job. Handlers own their error handling; a handler
// that fails records the failure itself, the queue only logs it.
type Handler func(ctx context.Context, job Job) error

// Queue dispatches jobs to handlers on a fixed pool of workers.
type Queue struct {
	jobs     chan Job
	handlers map[string]Handler
	workers  int
	logger   zerolog.Logger

	done   chan struct{}
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option is a functional option for configuring the queue.
type Option func(*Queue)

// WithLogger sets the logger for the queue.
func WithLogger(logger zerolog.Logger) Option {
	return func(q *Queue) {
		q.logger = logger
	}
}

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

// WithBuffer sets the job channel capacity.
func WithBuffer(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.jobs = make(chan Job, n)
		}
	}
}

// New creates a new job queue. Register handlers before calling Start.
func New(opts ...Option) *Queue {
	q := &Queue{
		jobs:     make(chan Job, defaultBuffer),
		handlers: make(map[string]Handler),
		workers:  defaultWorkers,
		logger:   zerolog.Nop(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Register binds a handler to a job kind. Must be called before Start.
func (q *Queue) Register(kind string, h Handler) {
	q.handlers[kind] = h
}

// Start launches the worker pool.
func (q *Queue) Start(ctx context.Context) {
	ctx, q.cancel = context.WithCancel(ctx)

	for range q.workers {
		q.wg.Go(func() {
			q.run(ctx)
		})
	}

	q.logger.Info().Int("workers", q.workers).Msg("job queue started")
}

// Stop shuts down the workers. Jobs still in the channel are abandoned;
// their state lives in the database and the retry scan picks them back up.
func (q *Queue) Stop() {
	close(q.done)
	if q.cancel != nil {
		q.cancel()
	}
	q.wg.Wait()
	q.logger.Info().Msg("job queue stopped")
}

// Enqueue submits a job. It blocks while the buffer is full and reports
// false once the queue has been stopped.
func (q *Queue) Enqueue(job Job) bool {
	select {
	case <-q.done:
		return false
	default:
	}

	select {
	case q.jobs <- job:
		return true
	case <-q.done:
		return false
	}
}

// Len reports the number of jobs waiting in the buffer.
func (q *Queue) Len() int {
	return len(q.jobs)
}

func (q *Queue) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-q.jobs:
			q.dispatch(ctx, job)
		}
	}
}

func (q *Queue) dispatch(ctx context.Context, job Job) {
	handler, ok := q.handlers[job.Kind()]
	if !ok {
		q.logger.Error().Str("kind", job.Kind()).Msg("no handler registered for job kind")
		return
	}

	if err := handler(ctx, job); err != nil {
		q.logger.Error().Err(err).Str("kind", job.Kind()).Msg("job failed")
	}
}
