package publish

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/queue"
)

// RetryCoordinator re-enqueues approved recitations whose publish never
// completed, whether because a worker crashed mid-publish or because the
// queue was shut down with jobs still buffered.
type RetryCoordinator struct {
	db       *generated.Client
	queue    *queue.Queue
	eventBus *events.Bus
	logger   zerolog.Logger
	interval time.Duration

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// RetryOption is a functional option for configuring the RetryCoordinator.
type RetryOption func(*RetryCoordinator)

// WithRetryLogger sets the logger for the coordinator.
func WithRetryLogger(logger zerolog.Logger) RetryOption {
	return func(c *RetryCoordinator) {
		c.logger = logger
	}
}

// NewRetryCoordinator creates a retry coordinator. An interval of zero
// disables the periodic scan; Scan can still be called directly.
func NewRetryCoordinator(
	db *generated.Client,
	q *queue.Queue,
	eventBus *events.Bus,
	interval time.Duration,
	opts ...RetryOption,
) *RetryCoordinator {
	c := &RetryCoordinator{
		db:       db,
		queue:    q,
		eventBus: eventBus,
		logger:   zerolog.Nop(),
		interval: interval,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start launches the periodic scan when an interval is configured.
func (c *RetryCoordinator) Start(ctx context.Context) {
	if c.interval <= 0 {
		c.logger.Debug().Msg("publish retry scan disabled")
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := c.Scan(ctx); err != nil {
					c.logger.Error().Err(err).Msg("publish retry scan failed")
				}
			case <-c.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the periodic scan and waits for an in-flight one to finish.
func (c *RetryCoordinator) Stop() {
	c.once.Do(func() {
		close(c.done)
	})
	c.wg.Wait()
}

// Scan finds approved recitations that never reached the synchronized state
// and enqueues a publish for each. Returns how many were enqueued.
func (c *RetryCoordinator) Scan(ctx context.Context) (int, error) {
	stuck, err := c.db.Recitation.Query().
		Where(
			recitation.ReviewStatusEQ(recitation.ReviewStatusApproved),
			recitation.SyncStatusNEQ(recitation.SyncStatusSynchronized),
		).
		Order(generated.Asc(recitation.FieldID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stuck recitations: %w", err)
	}

	enqueued := 0
	for _, rec := range stuck {
		// Only a recitation whose row already reached both catalogs gets
		// the files-only treatment; anything less and the fresh attempt
		// must run the catalog steps, with the step flags keeping partial
		// inserts from repeating.
		replace, err := c.alreadyCataloged(ctx, rec.ID)
		if err != nil {
			c.logger.Error().Err(err).
				Int("recitation_id", rec.ID).
				Msg("failed to inspect publish attempts")
			continue
		}
		if c.queue.Enqueue(queue.PublishJob{RecitationID: rec.ID, Replace: replace}) {
			enqueued++
		}
	}

	if enqueued > 0 {
		c.logger.Info().Int("count", enqueued).Msg("re-enqueued stuck publishes")
	}
	c.eventBus.Publish(events.Event{
		Type: events.PublishRetryScan,
		Data: map[string]any{
			"count": enqueued,
		},
	})
	return enqueued, nil
}

// alreadyCataloged reports whether an earlier attempt wrote the recitation's
// row to both external catalogs.
func (c *RetryCoordinator) alreadyCataloged(ctx context.Context, recitationID int) (bool, error) {
	return c.db.PublishTracker.Query().
		Where(
			publishtracker.RecitationIDEQ(recitationID),
			publishtracker.FirstDbUpdatedEQ(true),
			publishtracker.SecondDbUpdatedEQ(true),
		).
		Exist(ctx)
}
