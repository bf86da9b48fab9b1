package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/catalog"
	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/queue"
	testpkg "github.com/khanesh/khanesh/internal/testing"
	"github.com/khanesh/khanesh/internal/transfer"
)

type fixture struct {
	db       *generated.Client
	svc      *Service
	uploader *testpkg.MockUploader
	first    *testpkg.MockCatalog
	second   *testpkg.MockCatalog
	notifier *testpkg.MockNotifier
	queue    *queue.Queue
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		db:       testpkg.NewTestDB(t),
		uploader: testpkg.NewMockUploader(),
		first:    testpkg.NewMockCatalog(),
		second:   testpkg.NewMockCatalog(),
		notifier: testpkg.NewMockNotifier(),
		queue:    queue.New(),
	}
	f.uploader.Root = t.TempDir()
	f.svc = NewService(
		f.db,
		f.uploader,
		[]catalog.Catalog{f.first, f.second},
		f.notifier,
		f.queue,
		events.New(),
		config.RemoteConfig{
			AudioPath:      "/srv/audio",
			DescriptorPath: "/srv/xml",
		},
	)
	return f
}

// newApprovedRecitation creates an approved recitation backed by real local
// files waiting to go out.
func (f *fixture) newApprovedRecitation(t *testing.T, fns ...func(*generated.RecitationCreate)) *generated.Recitation {
	t.Helper()

	dir := t.TempDir()
	mp3Path := filepath.Join(dir, "recitation.mp3")
	xmlPath := filepath.Join(dir, "recitation.xml")
	require.NoError(t, os.WriteFile(mp3Path, []byte("mp3 payload"), 0600))
	require.NoError(t, os.WriteFile(xmlPath, []byte("<xml/>"), 0600))

	all := append([]func(*generated.RecitationCreate){
		func(c *generated.RecitationCreate) {
			c.SetReviewStatus(recitation.ReviewStatusApproved)
			c.SetLocalMp3Path(mp3Path)
			c.SetLocalXMLPath(xmlPath)
			c.SetMp3Size(int64(len("mp3 payload")))
		},
	}, fns...)
	return testpkg.NewRecitation(t, f.db, all...)
}

// tracker returns the latest publish attempt of a recitation.
func (f *fixture) tracker(t *testing.T, recitationID int) *generated.PublishTracker {
	t.Helper()

	tracker, err := f.db.PublishTracker.Query().
		Where(publishtracker.RecitationIDEQ(recitationID)).
		Order(generated.Desc(publishtracker.FieldCreatedAt)).
		First(context.Background())
	require.NoError(t, err)
	return tracker
}

func TestPublish(t *testing.T) {
	t.Run("PublishesAllSteps", func(t *testing.T) {
		f := newFixture(t)
		rec := f.newApprovedRecitation(t)

		require.NoError(t, f.svc.Publish(context.Background(), rec.ID, false))

		calls := f.uploader.GetPutCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, "/srv/xml/"+rec.FileStem+".xml", calls[0].RemotePath)
		assert.Equal(t, "/srv/audio/"+rec.FileStem+".mp3", calls[1].RemotePath)

		for _, c := range []*testpkg.MockCatalog{f.first, f.second} {
			rows := c.GetRows()
			require.Len(t, rows, 1)
			assert.Equal(t, rec.PoemID, rows[0].PoemID)
			assert.Equal(t, rec.Checksum, rows[0].Checksum)
			assert.Equal(t, rec.LegacyGUID, rows[0].LegacyGUID)
			assert.Equal(t, "/srv/audio/"+rec.FileStem+".mp3", rows[0].MP3Path)
			assert.Equal(t, int64(len("mp3 payload")), rows[0].MP3Size)
		}

		tracker := f.tracker(t, rec.ID)
		assert.True(t, tracker.XMLCopied)
		assert.True(t, tracker.Mp3Copied)
		assert.True(t, tracker.FirstDbUpdated)
		assert.True(t, tracker.SecondDbUpdated)
		assert.True(t, tracker.Finished)
		assert.NotNil(t, tracker.FinishedAt)

		got, err := f.db.Recitation.Get(context.Background(), rec.ID)
		require.NoError(t, err)
		assert.Equal(t, recitation.SyncStatusSynchronized, got.SyncStatus)

		pushes := f.notifier.GetPushes()
		require.Len(t, pushes, 1)
		assert.Equal(t, "Recitation published", pushes[0].Title)
	})

	t.Run("AlreadySynchronizedIsNoop", func(t *testing.T) {
		f := newFixture(t)
		rec := f.newApprovedRecitation(t, func(c *generated.RecitationCreate) {
			c.SetSyncStatus(recitation.SyncStatusSynchronized)
		})

		require.NoError(t, f.svc.Publish(context.Background(), rec.ID, false))

		assert.Empty(t, f.uploader.GetPutCalls())
		assert.Empty(t, f.first.GetRows())
	})

	t.Run("ReplaceSkipsCatalogs", func(t *testing.T) {
		f := newFixture(t)
		rec := f.newApprovedRecitation(t, func(c *generated.RecitationCreate) {
			c.SetSyncStatus(recitation.SyncStatusFilesChanged)
		})

		require.NoError(t, f.svc.Publish(context.Background(), rec.ID, true))

		assert.Len(t, f.uploader.GetPutCalls(), 2)
		assert.Empty(t, f.first.GetRows())
		assert.Empty(t, f.second.GetRows())

		tracker := f.tracker(t, rec.ID)
		assert.True(t, tracker.Finished)
		assert.True(t, tracker.Replace)
		assert.False(t, tracker.FirstDbUpdated)
		assert.False(t, tracker.SecondDbUpdated)

		got, err := f.db.Recitation.Get(context.Background(), rec.ID)
		require.NoError(t, err)
		assert.Equal(t, recitation.SyncStatusSynchronized, got.SyncStatus)
	})

	t.Run("FailedStepRecordsErrorAndResumes", func(t *testing.T) {
		f := newFixture(t)
		rec := f.newApprovedRecitation(t)

		f.uploader.OnPut = func(_ context.Context, req transfer.Request, _ transfer.ProgressFunc) error {
			if strings.HasSuffix(req.RemotePath, ".mp3") {
				return errors.New("connection reset")
			}
			return nil
		}

		err := f.svc.Publish(context.Background(), rec.ID, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload audio")

		tracker := f.tracker(t, rec.ID)
		assert.True(t, tracker.XMLCopied)
		assert.False(t, tracker.Mp3Copied)
		assert.False(t, tracker.Finished)
		assert.Contains(t, tracker.LastError, "connection reset")

		got, err := f.db.Recitation.Get(context.Background(), rec.ID)
		require.NoError(t, err)
		assert.NotEqual(t, recitation.SyncStatusSynchronized, got.SyncStatus)
		assert.Empty(t, f.notifier.GetPushes())

		// The second attempt gets its own tracker row, seeded with the
		// completed steps so only the failed one reruns.
		f.uploader.OnPut = nil
		require.NoError(t, f.svc.Publish(context.Background(), rec.ID, false))

		calls := f.uploader.GetPutCalls()
		require.Len(t, calls, 3) // xml, failed mp3, resumed mp3
		assert.True(t, strings.HasSuffix(calls[2].RemotePath, ".mp3"))

		count, err := f.db.PublishTracker.Query().
			Where(publishtracker.RecitationIDEQ(rec.ID)).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		latest := f.tracker(t, rec.ID)
		assert.True(t, latest.Finished)
		assert.Empty(t, latest.LastError)

		// The failed attempt survives untouched as history.
		failed, err := f.db.PublishTracker.Query().
			Where(
				publishtracker.RecitationIDEQ(rec.ID),
				publishtracker.FinishedEQ(false),
			).
			Only(context.Background())
		require.NoError(t, err)
		assert.Contains(t, failed.LastError, "connection reset")
	})

	t.Run("CatalogFailureLeavesUploadsFlagged", func(t *testing.T) {
		f := newFixture(t)
		rec := f.newApprovedRecitation(t)

		f.first.OnInsert = func(context.Context, catalog.Row) error {
			return errors.New("duplicate key")
		}

		err := f.svc.Publish(context.Background(), rec.ID, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first catalog")

		tracker := f.tracker(t, rec.ID)
		assert.True(t, tracker.XMLCopied)
		assert.True(t, tracker.Mp3Copied)
		assert.False(t, tracker.FirstDbUpdated)

		// Retry touches neither upload again.
		f.first.OnInsert = nil
		require.NoError(t, f.svc.Publish(context.Background(), rec.ID, false))
		assert.Len(t, f.uploader.GetPutCalls(), 2)
		assert.Len(t, f.second.GetRows(), 1)
	})

	t.Run("UnknownRecitation", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.Publish(context.Background(), 999999, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestModerate(t *testing.T) {
	t.Run("ApproveSchedulesPublish", func(t *testing.T) {
		f := newFixture(t)
		rec := testpkg.NewRecitation(t, f.db)
		moderator := uuid.New()

		got, err := f.svc.Moderate(context.Background(), rec.ID, moderator, ResultApprove, "خوانش خوبی است")
		require.NoError(t, err)
		assert.Equal(t, recitation.ReviewStatusApproved, got.ReviewStatus)
		require.NotNil(t, got.ReviewerID)
		assert.Equal(t, moderator, *got.ReviewerID)
		assert.Equal(t, "خوانش خوبی است", got.ReviewMessage)
		assert.NotNil(t, got.ReviewedAt)

		assert.Equal(t, 1, f.queue.Len())

		pushes := f.notifier.GetPushes()
		require.Len(t, pushes, 1)
		assert.Equal(t, "Recitation approved", pushes[0].Title)
	})

	t.Run("RejectStopsRetries", func(t *testing.T) {
		f := newFixture(t)
		rec := testpkg.NewRecitation(t, f.db)

		got, err := f.svc.Moderate(context.Background(), rec.ID, uuid.New(), ResultReject, "کیفیت صدا پایین است")
		require.NoError(t, err)
		assert.Equal(t, recitation.ReviewStatusRejected, got.ReviewStatus)
		assert.Equal(t, recitation.SyncStatusSynchronized, got.SyncStatus)
		assert.Equal(t, 0, f.queue.Len())

		pushes := f.notifier.GetPushes()
		require.Len(t, pushes, 1)
		assert.Contains(t, pushes[0].Body, "کیفیت صدا پایین است")
	})

	t.Run("FixRequestLeavesStatusUnchanged", func(t *testing.T) {
		f := newFixture(t)
		rec := testpkg.NewRecitation(t, f.db)

		got, err := f.svc.Moderate(context.Background(), rec.ID, uuid.New(), ResultFixRequested, "عنوان را اصلاح کنید")
		require.NoError(t, err)
		assert.Equal(t, rec.ReviewStatus, got.ReviewStatus)
		assert.Equal(t, "عنوان را اصلاح کنید", got.ReviewMessage)
		assert.Equal(t, 0, f.queue.Len())
		require.Len(t, f.notifier.GetPushes(), 1)

		// The uploader can amend and the moderator can still pass a verdict.
		_, err = f.svc.Moderate(context.Background(), rec.ID, uuid.New(), ResultApprove, "")
		require.NoError(t, err)
	})

	t.Run("ModeratedRecitationConflicts", func(t *testing.T) {
		f := newFixture(t)

		for _, status := range []recitation.ReviewStatus{
			recitation.ReviewStatusApproved,
			recitation.ReviewStatusRejected,
		} {
			rec := testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
				c.SetReviewStatus(status)
			})
			_, err := f.svc.Moderate(context.Background(), rec.ID, uuid.New(), ResultApprove, "")
			assert.ErrorIs(t, err, ErrAlreadyModerated, "status %s", status)
		}
	})

	t.Run("UnknownResult", func(t *testing.T) {
		f := newFixture(t)
		rec := testpkg.NewRecitation(t, f.db)

		_, err := f.svc.Moderate(context.Background(), rec.ID, uuid.New(), ModerationResult("publish"), "")
		assert.ErrorIs(t, err, ErrUnknownResult)
	})

	t.Run("UnknownRecitation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Moderate(context.Background(), 999999, uuid.New(), ResultApprove, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRetryScan(t *testing.T) {
	t.Run("EnqueuesStuckApproved", func(t *testing.T) {
		f := newFixture(t)

		fresh := testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetReviewStatus(recitation.ReviewStatusApproved)
			c.SetSyncStatus(recitation.SyncStatusNewItem)
		})
		// Published once in full, then its files were replaced.
		changed := testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetReviewStatus(recitation.ReviewStatusApproved)
			c.SetSyncStatus(recitation.SyncStatusFilesChanged)
		})
		f.db.PublishTracker.Create().
			SetRecitationID(changed.ID).
			SetXMLCopied(true).
			SetMp3Copied(true).
			SetFirstDbUpdated(true).
			SetSecondDbUpdated(true).
			SetFinished(true).
			SaveX(context.Background())
		// Neither drafts nor already-synchronized recitations qualify.
		testpkg.NewRecitation(t, f.db)
		testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetReviewStatus(recitation.ReviewStatusApproved)
			c.SetSyncStatus(recitation.SyncStatusSynchronized)
		})

		q := queue.New()
		jobs := make(chan queue.PublishJob, 4)
		q.Register("publish", func(_ context.Context, job queue.Job) error {
			jobs <- job.(queue.PublishJob)
			return nil
		})
		q.Start(context.Background())
		defer q.Stop()

		coord := NewRetryCoordinator(f.db, q, events.New(), 0)
		count, err := coord.Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		got := map[int]bool{}
		for range 2 {
			select {
			case job := <-jobs:
				got[job.RecitationID] = job.Replace
			case <-time.After(5 * time.Second):
				t.Fatal("timed out waiting for enqueued jobs")
			}
		}
		assert.Equal(t, map[int]bool{fresh.ID: false, changed.ID: true}, got)
	})

	t.Run("ReplacedBeforeFirstPublishRunsCatalogSteps", func(t *testing.T) {
		f := newFixture(t)

		// Files were swapped while still a draft, then the recitation was
		// approved and its first publish attempt died before the catalog
		// inserts. The retry must not skip them.
		rec := testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetReviewStatus(recitation.ReviewStatusApproved)
			c.SetSyncStatus(recitation.SyncStatusFilesChanged)
		})
		f.db.PublishTracker.Create().
			SetRecitationID(rec.ID).
			SetXMLCopied(true).
			SetLastError("connection reset").
			SaveX(context.Background())

		q := queue.New()
		jobs := make(chan queue.PublishJob, 1)
		q.Register("publish", func(_ context.Context, job queue.Job) error {
			jobs <- job.(queue.PublishJob)
			return nil
		})
		q.Start(context.Background())
		defer q.Stop()

		coord := NewRetryCoordinator(f.db, q, events.New(), 0)
		count, err := coord.Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		select {
		case job := <-jobs:
			assert.Equal(t, rec.ID, job.RecitationID)
			assert.False(t, job.Replace)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for enqueued job")
		}
	})

	t.Run("NothingStuck", func(t *testing.T) {
		f := newFixture(t)
		testpkg.NewRecitation(t, f.db)

		coord := NewRetryCoordinator(f.db, queue.New(), events.New(), 0)
		count, err := coord.Scan(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("PeriodicScan", func(t *testing.T) {
		f := newFixture(t)
		testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetReviewStatus(recitation.ReviewStatusApproved)
		})

		q := queue.New()
		jobs := make(chan queue.PublishJob, 16)
		q.Register("publish", func(_ context.Context, job queue.Job) error {
			jobs <- job.(queue.PublishJob)
			return nil
		})
		q.Start(context.Background())
		defer q.Stop()

		coord := NewRetryCoordinator(f.db, q, events.New(), 10*time.Millisecond)
		coord.Start(context.Background())
		defer coord.Stop()

		select {
		case job := <-jobs:
			assert.False(t, job.Replace)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for periodic scan")
		}

		coord.Stop() // stopping twice is fine
	})
}

func TestModerateThenPublishRoundTrip(t *testing.T) {
	f := newFixture(t)
	rec := f.newApprovedRecitation(t, func(c *generated.RecitationCreate) {
		c.SetReviewStatus(recitation.ReviewStatusDraft)
	})

	_, err := f.svc.Moderate(context.Background(), rec.ID, uuid.New(), ResultApprove, "")
	require.NoError(t, err)
	require.Equal(t, 1, f.queue.Len())

	require.NoError(t, f.svc.Publish(context.Background(), rec.ID, false))

	got, err := f.db.Recitation.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, recitation.SyncStatusSynchronized, got.SyncStatus)

	// Approval and publication each notify the uploader.
	require.Len(t, f.notifier.GetPushes(), 2)
}
