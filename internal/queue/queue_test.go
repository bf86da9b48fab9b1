package queue_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/queue"
)

func TestJobKinds(t *testing.T) {
	assert.Equal(t, "placement", queue.PlacementJob{}.Kind())
	assert.Equal(t, "publish", queue.PublishJob{}.Kind())
}

func TestQueueDispatch(t *testing.T) {
	q := queue.New(queue.WithWorkers(1))

	var got atomic.Int64
	done := make(chan struct{})
	q.Register("publish", func(_ context.Context, job queue.Job) error {
		pj, ok := job.(queue.PublishJob)
		require.True(t, ok)
		got.Store(int64(pj.RecitationID))
		close(done)
		return nil
	})

	q.Start(context.Background())
	defer q.Stop()

	require.True(t, q.Enqueue(queue.PublishJob{RecitationID: 42}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not dispatched")
	}
	assert.Equal(t, int64(42), got.Load())
}

func TestQueueConcurrentWorkers(t *testing.T) {
	q := queue.New(queue.WithWorkers(4))

	var mu sync.Mutex
	seen := make(map[int]bool)
	var wg sync.WaitGroup
	wg.Add(10)

	q.Register("publish", func(_ context.Context, job queue.Job) error {
		defer wg.Done()
		pj := job.(queue.PublishJob) //nolint:errcheck // registered for publish only
		mu.Lock()
		seen[pj.RecitationID] = true
		mu.Unlock()
		return nil
	})

	q.Start(context.Background())
	defer q.Stop()

	for i := range 10 {
		require.True(t, q.Enqueue(queue.PublishJob{RecitationID: i}))
	}

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(5 * time.Second):
		t.Fatal("jobs did not all complete")
	}

	assert.Len(t, seen, 10)
}

func TestQueueSeparateHandlers(t *testing.T) {
	q := queue.New(queue.WithWorkers(1))

	var placements, publishes atomic.Int64
	var wg sync.WaitGroup
	wg.Add(2)

	q.Register("placement", func(_ context.Context, _ queue.Job) error {
		defer wg.Done()
		placements.Add(1)
		return nil
	})
	q.Register("publish", func(_ context.Context, _ queue.Job) error {
		defer wg.Done()
		publishes.Add(1)
		return nil
	})

	q.Start(context.Background())
	defer q.Stop()

	require.True(t, q.Enqueue(queue.PlacementJob{SessionID: ulid.Make()}))
	require.True(t, q.Enqueue(queue.PublishJob{RecitationID: 7}))

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("jobs did not complete")
	}

	assert.Equal(t, int64(1), placements.Load())
	assert.Equal(t, int64(1), publishes.Load())
}

func TestQueueHandlerErrorDoesNotStopWorkers(t *testing.T) {
	q := queue.New(queue.WithWorkers(1))

	var calls atomic.Int64
	done := make(chan struct{})
	q.Register("publish", func(_ context.Context, _ queue.Job) error {
		if calls.Add(1) == 1 {
			return errors.New("transient failure")
		}
		close(done)
		return nil
	})

	q.Start(context.Background())
	defer q.Stop()

	require.True(t, q.Enqueue(queue.PublishJob{RecitationID: 1}))
	require.True(t, q.Enqueue(queue.PublishJob{RecitationID: 2}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second job was not dispatched after first failed")
	}
}

func TestQueueEnqueueAfterStop(t *testing.T) {
	q := queue.New(queue.WithWorkers(1))
	q.Register("publish", func(_ context.Context, _ queue.Job) error { return nil })
	q.Start(context.Background())
	q.Stop()

	assert.False(t, q.Enqueue(queue.PublishJob{RecitationID: 1}))
}

func TestQueueLen(t *testing.T) {
	// Never started, so jobs accumulate in the buffer.
	q := queue.New(queue.WithBuffer(8))
	q.Register("publish", func(_ context.Context, _ queue.Job) error { return nil })

	require.True(t, q.Enqueue(queue.PublishJob{RecitationID: 1}))
	require.True(t, q.Enqueue(queue.PublishJob{RecitationID: 2}))
	assert.Equal(t, 2, q.Len())
}
