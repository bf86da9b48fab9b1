package session_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/profile"
	"github.com/khanesh/khanesh/internal/queue"
	"github.com/khanesh/khanesh/internal/session"
	testpkg "github.com/khanesh/khanesh/internal/testing"
)

// fixture wires a session service against an in-memory database.
type fixture struct {
	db     *generated.Client
	svc    *session.Service
	queue  *queue.Queue
	userID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testpkg.NewTestDB(t)
	bus := events.New()
	t.Cleanup(bus.Close)
	q := queue.New() // never started, jobs stay observable in the buffer

	userID := uuid.New()
	testpkg.NewProfile(t, db, func(p *generated.RecitationProfileCreate) {
		p.SetUserID(userID)
	})

	profiles := profile.NewService(db)
	svc := session.NewService(db, profiles, q, bus, config.IngestConfig{
		TempPath:     t.TempDir(),
		MaxFileBytes: 1 << 20,
	})

	return &fixture{db: db, svc: svc, queue: q, userID: userID}
}

func TestInitiate(t *testing.T) {
	t.Run("OpensSession", func(t *testing.T) {
		fx := newFixture(t)

		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)
		assert.Equal(t, fx.userID, sess.UserID)
		assert.Nil(t, sess.EndedAt)
	})

	t.Run("RequiresDefaultProfile", func(t *testing.T) {
		fx := newFixture(t)

		_, err := fx.svc.Initiate(context.Background(), uuid.New(), false)
		assert.ErrorIs(t, err, profile.ErrNoDefaultProfile)
	})

	t.Run("ReplaceSession", func(t *testing.T) {
		fx := newFixture(t)

		sess, err := fx.svc.Initiate(context.Background(), fx.userID, true)
		require.NoError(t, err)
		assert.Equal(t, "replace_audio", string(sess.Kind))
	})
}

func TestSaveFile(t *testing.T) {
	t.Run("StagesAcceptedFile", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)

		file, err := fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"ghazal1.mp3", "audio/mpeg", strings.NewReader("mp3 bytes"))
		require.NoError(t, err)

		assert.Equal(t, "ghazal1.mp3", file.OriginalName)
		assert.Equal(t, "ghazal1", file.DisplayName)
		assert.Equal(t, int64(9), file.ByteLength)
		assert.False(t, file.Processed)
		assert.Equal(t, "not processed yet", file.ResultMessage)

		data, readErr := os.ReadFile(file.TempPath)
		require.NoError(t, readErr)
		assert.Equal(t, "mp3 bytes", string(data))
	})

	t.Run("RejectsUnsupportedExtension", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)

		file, err := fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"cover.jpg", "image/jpeg", strings.NewReader("jpeg"))
		require.NoError(t, err)

		assert.True(t, file.Processed)
		assert.Contains(t, file.ResultMessage, "unsupported file type")
		assert.Empty(t, file.TempPath)
	})

	t.Run("CollisionSafeTempNames", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)

		first, err := fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"same.mp3", "audio/mpeg", strings.NewReader("a"))
		require.NoError(t, err)
		second, err := fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"same.mp3", "audio/mpeg", strings.NewReader("b"))
		require.NoError(t, err)

		assert.NotEqual(t, first.TempPath, second.TempPath)
	})

	t.Run("EnforcesSizeLimit", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)

		big := strings.NewReader(strings.Repeat("x", (1<<20)+1))
		_, err = fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"big.mp3", "audio/mpeg", big)
		assert.ErrorIs(t, err, session.ErrFileTooLarge)
	})

	t.Run("ForeignSession", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)

		_, err = fx.svc.SaveFile(context.Background(), uuid.New(), sess.ID,
			"a.mp3", "audio/mpeg", strings.NewReader("x"))
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("FinalizedSession", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)
		_, err = fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"a.mp3", "audio/mpeg", strings.NewReader("x"))
		require.NoError(t, err)
		_, err = fx.svc.Finalize(context.Background(), fx.userID, sess.ID)
		require.NoError(t, err)

		_, err = fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"b.mp3", "audio/mpeg", strings.NewReader("y"))
		assert.ErrorIs(t, err, session.ErrSessionEnded)
	})
}

func TestFinalize(t *testing.T) {
	t.Run("EnqueuesPlacement", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)
		_, err = fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"a.mp3", "audio/mpeg", strings.NewReader("x"))
		require.NoError(t, err)

		finalized, err := fx.svc.Finalize(context.Background(), fx.userID, sess.ID)
		require.NoError(t, err)
		assert.NotNil(t, finalized.EndedAt)
		assert.Equal(t, 1, fx.queue.Len())
	})

	t.Run("EmptySession", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)

		_, err = fx.svc.Finalize(context.Background(), fx.userID, sess.ID)
		assert.ErrorIs(t, err, session.ErrNoFiles)
	})

	t.Run("OnlyRejectedFiles", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)
		_, err = fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"cover.jpg", "image/jpeg", strings.NewReader("jpeg"))
		require.NoError(t, err)

		_, err = fx.svc.Finalize(context.Background(), fx.userID, sess.ID)
		assert.ErrorIs(t, err, session.ErrNoFiles)
	})

	t.Run("AlreadyFinalized", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)
		_, err = fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"a.mp3", "audio/mpeg", strings.NewReader("x"))
		require.NoError(t, err)
		_, err = fx.svc.Finalize(context.Background(), fx.userID, sess.ID)
		require.NoError(t, err)

		_, err = fx.svc.Finalize(context.Background(), fx.userID, sess.ID)
		assert.ErrorIs(t, err, session.ErrSessionEnded)
	})
}

func TestGetAndList(t *testing.T) {
	t.Run("GetWithFiles", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)
		_, err = fx.svc.SaveFile(context.Background(), fx.userID, sess.ID,
			"a.mp3", "audio/mpeg", strings.NewReader("x"))
		require.NoError(t, err)

		got, err := fx.svc.Get(context.Background(), fx.userID, sess.ID)
		require.NoError(t, err)
		assert.Len(t, got.Edges.Files, 1)
	})

	t.Run("GetForeign", func(t *testing.T) {
		fx := newFixture(t)
		sess, err := fx.svc.Initiate(context.Background(), fx.userID, false)
		require.NoError(t, err)

		_, err = fx.svc.Get(context.Background(), uuid.New(), sess.ID)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("ListPaginates", func(t *testing.T) {
		fx := newFixture(t)
		for range 5 {
			_, err := fx.svc.Initiate(context.Background(), fx.userID, false)
			require.NoError(t, err)
		}
		// Another user's session must not leak in.
		testpkg.NewUploadSession(t, fx.db)

		page1, total, err := fx.svc.ListUploads(context.Background(), fx.userID, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, page1, 2)

		page3, _, err := fx.svc.ListUploads(context.Background(), fx.userID, 3, 2)
		require.NoError(t, err)
		assert.Len(t, page3, 1)
	})
}
