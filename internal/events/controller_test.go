package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/event"
	"github.com/khanesh/khanesh/internal/events"
	testpkg "github.com/khanesh/khanesh/internal/testing"
)

func TestEventsController(t *testing.T) {
	t.Run("records all events", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()
		db := testpkg.NewTestDB(t)

		c := events.NewController(bus, db, events.WithControllerLogger(zerolog.Nop()))
		err := c.Start(context.Background())
		require.NoError(t, err)
		defer c.Stop()

		session := testpkg.NewUploadSession(t, db)

		// Publish various events
		bus.Publish(events.Event{
			Type: events.SystemStarted,
		})

		bus.Publish(events.Event{
			Type:    events.SessionInitiated,
			Subject: session,
		})

		bus.Publish(events.Event{
			Type:    events.PlacementStarted,
			Subject: session,
		})

		time.Sleep(100 * time.Millisecond)

		// Verify events were recorded
		timeline, err := db.Event.Query().
			Order(event.ByTimestamp()).
			All(context.Background())
		require.NoError(t, err)
		assert.Len(t, timeline, 3)
	})

	t.Run("generates correct messages", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()
		db := testpkg.NewTestDB(t)

		c := events.NewController(bus, db, events.WithControllerLogger(zerolog.Nop()))
		err := c.Start(context.Background())
		require.NoError(t, err)
		defer c.Stop()

		rec := testpkg.NewRecitation(t, db, func(r *generated.RecitationCreate) {
			r.SetTitle("غزل شمارهٔ ۱")
		})

		bus.Publish(events.Event{
			Type:    events.ModerationApproved,
			Subject: rec,
		})

		time.Sleep(50 * time.Millisecond)

		timeline, err := db.Event.Query().
			Order(event.ByTimestamp()).
			Limit(1).
			All(context.Background())
		require.NoError(t, err)
		require.Len(t, timeline, 1)
		assert.Equal(t, "Approved: غزل شمارهٔ ۱", timeline[0].Message)
		assert.Equal(t, event.SubjectTypeRecitation, timeline[0].SubjectType)
	})

	t.Run("handles file rejection event", func(t *testing.T) {
		bus := events.New()
		defer bus.Close()
		db := testpkg.NewTestDB(t)

		c := events.NewController(bus, db, events.WithControllerLogger(zerolog.Nop()))
		err := c.Start(context.Background())
		require.NoError(t, err)
		defer c.Stop()

		session := testpkg.NewUploadSession(t, db)

		bus.Publish(events.Event{
			Type:    events.PlacementFileRejected,
			Subject: session,
			Data: map[string]any{
				"file_name": "1209.pdf",
				"reason":    "unsupported extension",
			},
		})

		time.Sleep(50 * time.Millisecond)

		timeline, err := db.Event.Query().
			Order(event.ByTimestamp()).
			Limit(1).
			All(context.Background())
		require.NoError(t, err)
		require.Len(t, timeline, 1)
		assert.Contains(t, timeline[0].Message, "File rejected")
		assert.Contains(t, timeline[0].Message, "1209.pdf")
		assert.Equal(t, event.SubjectTypeUploadSession, timeline[0].SubjectType)
	})
}
