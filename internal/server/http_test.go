package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/apitypes"
	"github.com/khanesh/khanesh/internal/bundle"
	"github.com/khanesh/khanesh/internal/catalog"
	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/profile"
	"github.com/khanesh/khanesh/internal/publish"
	"github.com/khanesh/khanesh/internal/queue"
	"github.com/khanesh/khanesh/internal/server"
	"github.com/khanesh/khanesh/internal/session"
	testutil "github.com/khanesh/khanesh/internal/testing"
)

// testServer creates an HTTP server backed by real services over an
// in-memory database. The queue is never started so tests can assert
// enqueued jobs via Len.
type testServer struct {
	server   *server.HTTPServer
	db       *generated.Client
	queue    *queue.Queue
	uploader *testutil.MockUploader
	notifier *testutil.MockNotifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewTestDB(t)
	bus := events.New()
	q := queue.New()

	profiles := profile.NewService(db)
	sessions := session.NewService(db, profiles, q, bus, config.IngestConfig{
		TempPath: t.TempDir(),
	})

	uploader := testutil.NewMockUploader()
	notifier := testutil.NewMockNotifier()
	pub := publish.NewService(
		db,
		uploader,
		[]catalog.Catalog{testutil.NewMockCatalog()},
		notifier,
		q,
		bus,
		config.RemoteConfig{AudioPath: "/srv/audio", DescriptorPath: "/srv/xml"},
	)
	retry := publish.NewRetryCoordinator(db, q, bus, 0)

	srv := server.NewHTTPServer(db, sessions, profiles, pub, retry, q)

	return &testServer{
		server:   srv,
		db:       db,
		queue:    q,
		uploader: uploader,
		notifier: notifier,
	}
}

// doJSON performs a request with an optional JSON body and X-User-ID header.
func (ts *testServer) doJSON(t *testing.T, method, path string, userID uuid.UUID, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != uuid.Nil {
		req.Header.Set("X-User-ID", userID.String())
	}

	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, req)
	return rec
}

// uploadFile performs a multipart file upload into a session.
func (ts *testServer) uploadFile(t *testing.T, userID uuid.UUID, sessionID, name string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-User-ID", userID.String())

	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func validProfileRequest() apitypes.ProfileRequest {
	return apitypes.ProfileRequest{
		Name:       "پیش‌فرض",
		ArtistName: "هنرمند نمونه",
		ArtistURL:  "https://example.com/artist",
		FileSuffix: "hrm",
		IsDefault:  true,
	}
}

// --- Health Endpoint Tests ---

func TestHealthHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/health", uuid.Nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decode[apitypes.HealthResponse](t, rec)
	assert.Equal(t, "ok", response.Status)
}

// --- Stats Endpoint Tests ---

func TestStatsHandler(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.doJSON(t, http.MethodGet, "/api/stats", uuid.Nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		stats := decode[apitypes.Stats](t, rec)
		assert.Equal(t, 0, stats.Recitations)
		assert.Equal(t, 0, stats.QueueDepth)
	})

	t.Run("CountsByStatus", func(t *testing.T) {
		ts := newTestServer(t)

		testutil.NewRecitation(t, ts.db)
		testutil.NewRecitation(t, ts.db, func(c *generated.RecitationCreate) {
			c.SetReviewStatus(recitation.ReviewStatusApproved)
			c.SetSyncStatus(recitation.SyncStatusSynchronized)
		})

		rec := ts.doJSON(t, http.MethodGet, "/api/stats", uuid.Nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		stats := decode[apitypes.Stats](t, rec)
		assert.Equal(t, 2, stats.Recitations)
		assert.Equal(t, 1, stats.ByReviewStatus["draft"])
		assert.Equal(t, 1, stats.ByReviewStatus["approved"])
		assert.Equal(t, 1, stats.BySyncStatus["synchronized"])
	})
}

// --- Upload Session Endpoint Tests ---

func TestSessionHandlers(t *testing.T) {
	t.Run("MissingUserHeader", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.doJSON(t, http.MethodPost, "/api/sessions", uuid.Nil, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NoDefaultProfile", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.doJSON(t, http.MethodPost, "/api/sessions", uuid.New(), map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InitiateUploadFinalize", func(t *testing.T) {
		ts := newTestServer(t)
		uid := uuid.New()
		testutil.NewProfile(t, ts.db, func(c *generated.RecitationProfileCreate) {
			c.SetUserID(uid)
		})

		rec := ts.doJSON(t, http.MethodPost, "/api/sessions", uid, map[string]any{})
		require.Equal(t, http.StatusCreated, rec.Code)
		sess := decode[apitypes.UploadSession](t, rec)
		assert.Equal(t, "new_audio", sess.Kind)
		assert.Equal(t, "not_started", sess.ProcessStatus)

		rec = ts.uploadFile(t, uid, sess.ID, "1-hrm.mp3", []byte("mp3 payload"))
		require.Equal(t, http.StatusCreated, rec.Code)
		file := decode[apitypes.UploadFile](t, rec)
		assert.Equal(t, "1-hrm.mp3", file.OriginalName)
		assert.EqualValues(t, len("mp3 payload"), file.Size)

		rec = ts.doJSON(t, http.MethodPost, "/api/sessions/"+sess.ID+"/finalize", uid, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// Finalize hands the session to the placement queue
		assert.Equal(t, 1, ts.queue.Len())

		rec = ts.doJSON(t, http.MethodGet, "/api/sessions/"+sess.ID, uid, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[apitypes.UploadSession](t, rec)
		require.Len(t, got.Files, 1)

		rec = ts.doJSON(t, http.MethodGet, "/api/sessions", uid, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		history := decode[apitypes.UploadHistory](t, rec)
		assert.Equal(t, 1, history.Total)
	})

	t.Run("FinalizeEmptySession", func(t *testing.T) {
		ts := newTestServer(t)
		uid := uuid.New()
		testutil.NewProfile(t, ts.db, func(c *generated.RecitationProfileCreate) {
			c.SetUserID(uid)
		})

		rec := ts.doJSON(t, http.MethodPost, "/api/sessions", uid, map[string]any{})
		require.Equal(t, http.StatusCreated, rec.Code)
		sess := decode[apitypes.UploadSession](t, rec)

		rec = ts.doJSON(t, http.MethodPost, "/api/sessions/"+sess.ID+"/finalize", uid, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("OtherUsersSessionHidden", func(t *testing.T) {
		ts := newTestServer(t)
		sess := testutil.NewUploadSession(t, ts.db)

		rec := ts.doJSON(t, http.MethodGet, "/api/sessions/"+sess.ID.String(), uuid.New(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidSessionID", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.doJSON(t, http.MethodGet, "/api/sessions/not-a-ulid", uuid.New(), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ReplaceSession", func(t *testing.T) {
		ts := newTestServer(t)
		uid := uuid.New()
		testutil.NewProfile(t, ts.db, func(c *generated.RecitationProfileCreate) {
			c.SetUserID(uid)
		})

		rec := ts.doJSON(t, http.MethodPost, "/api/sessions", uid, map[string]any{
			"replace": true,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		sess := decode[apitypes.UploadSession](t, rec)
		assert.Equal(t, "replace_audio", sess.Kind)
	})
}

// --- Profile Endpoint Tests ---

func TestProfileHandlers(t *testing.T) {
	t.Run("AddListUpdateDelete", func(t *testing.T) {
		ts := newTestServer(t)
		uid := uuid.New()

		rec := ts.doJSON(t, http.MethodPost, "/api/profiles", uid, validProfileRequest())
		require.Equal(t, http.StatusCreated, rec.Code)
		created := decode[apitypes.Profile](t, rec)
		assert.True(t, created.IsDefault)

		rec = ts.doJSON(t, http.MethodGet, "/api/profiles", uid, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]apitypes.Profile](t, rec)
		require.Len(t, list, 1)

		update := validProfileRequest()
		update.Name = "خوانش دوم"
		rec = ts.doJSON(t, http.MethodPut, "/api/profiles/"+created.ID, uid, update)
		require.Equal(t, http.StatusOK, rec.Code)
		updated := decode[apitypes.Profile](t, rec)
		assert.Equal(t, "خوانش دوم", updated.Name)

		rec = ts.doJSON(t, http.MethodDelete, "/api/profiles/"+created.ID, uid, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = ts.doJSON(t, http.MethodGet, "/api/profiles", uid, nil)
		list = decode[[]apitypes.Profile](t, rec)
		assert.Empty(t, list)
	})

	t.Run("RejectsInvalidSuffix", func(t *testing.T) {
		ts := newTestServer(t)

		req := validProfileRequest()
		req.FileSuffix = "toolong"
		rec := ts.doJSON(t, http.MethodPost, "/api/profiles", uuid.New(), req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UpdateUnknownProfile", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.doJSON(t, http.MethodPut, "/api/profiles/"+ulid.Make().String(), uuid.New(), validProfileRequest())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// --- Recitation Endpoint Tests ---

func TestRecitationHandlers(t *testing.T) {
	t.Run("ListScopedToOwner", func(t *testing.T) {
		ts := newTestServer(t)
		uid := uuid.New()
		testutil.NewRecitation(t, ts.db, func(c *generated.RecitationCreate) {
			c.SetUserID(uid)
		})
		testutil.NewRecitation(t, ts.db)

		rec := ts.doJSON(t, http.MethodGet, "/api/recitations", uid, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[apitypes.RecitationPage](t, rec)
		assert.Equal(t, 1, page.Total)

		// Moderators see everything
		rec = ts.doJSON(t, http.MethodGet, "/api/recitations?all=true", uid, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page = decode[apitypes.RecitationPage](t, rec)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("StatusFilter", func(t *testing.T) {
		ts := newTestServer(t)
		testutil.NewRecitation(t, ts.db, func(c *generated.RecitationCreate) {
			c.SetReviewStatus(recitation.ReviewStatusApproved)
		})
		testutil.NewRecitation(t, ts.db)

		rec := ts.doJSON(t, http.MethodGet, "/api/recitations?all=true&status=approved", uuid.New(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[apitypes.RecitationPage](t, rec)
		assert.Equal(t, 1, page.Total)

		rec = ts.doJSON(t, http.MethodGet, "/api/recitations?all=true&status=bogus", uuid.New(), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.doJSON(t, http.MethodGet, "/api/recitations/424242", uuid.Nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("UpdateMetadata", func(t *testing.T) {
		ts := newTestServer(t)
		uid := uuid.New()
		target := testutil.NewRecitation(t, ts.db, func(c *generated.RecitationCreate) {
			c.SetUserID(uid)
		})

		body := apitypes.RecitationUpdateRequest{
			Title:      "غزل اصلاح‌شده",
			ArtistName: "هنرمند نمونه",
			ArtistURL:  "https://example.com/artist",
		}
		rec := ts.doJSON(t, http.MethodPut, fmt.Sprintf("/api/recitations/%d", target.ID), uid, body)
		require.Equal(t, http.StatusOK, rec.Code)
		updated := decode[apitypes.Recitation](t, rec)
		assert.Equal(t, "غزل اصلاح‌شده", updated.Title)
	})

	t.Run("UpdateSomeoneElsesRecitation", func(t *testing.T) {
		ts := newTestServer(t)
		target := testutil.NewRecitation(t, ts.db)

		body := apitypes.RecitationUpdateRequest{
			Title:      "غزل",
			ArtistName: "هنرمند نمونه",
		}
		rec := ts.doJSON(t, http.MethodPut, fmt.Sprintf("/api/recitations/%d", target.ID), uuid.New(), body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("UpdateRejectsLatinArtistName", func(t *testing.T) {
		ts := newTestServer(t)
		uid := uuid.New()
		target := testutil.NewRecitation(t, ts.db, func(c *generated.RecitationCreate) {
			c.SetUserID(uid)
		})

		body := apitypes.RecitationUpdateRequest{
			Title:      "غزل",
			ArtistName: "John Doe",
		}
		rec := ts.doJSON(t, http.MethodPut, fmt.Sprintf("/api/recitations/%d", target.ID), uid, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// --- Moderation Endpoint Tests ---

func TestModerateHandler(t *testing.T) {
	t.Run("ApproveSchedulesPublish", func(t *testing.T) {
		ts := newTestServer(t)
		target := testutil.NewRecitation(t, ts.db)

		body := apitypes.ModerationRequest{Result: "approve", Message: "خوانش خوبی است"}
		rec := ts.doJSON(t, http.MethodPost, fmt.Sprintf("/api/recitations/%d/moderate", target.ID), uuid.New(), body)
		require.Equal(t, http.StatusOK, rec.Code)

		moderated := decode[apitypes.Recitation](t, rec)
		assert.Equal(t, "approved", moderated.ReviewStatus)
		assert.Equal(t, 1, ts.queue.Len())
	})

	t.Run("SecondModerationConflicts", func(t *testing.T) {
		ts := newTestServer(t)
		target := testutil.NewRecitation(t, ts.db)
		path := fmt.Sprintf("/api/recitations/%d/moderate", target.ID)

		rec := ts.doJSON(t, http.MethodPost, path, uuid.New(), apitypes.ModerationRequest{Result: "reject"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.doJSON(t, http.MethodPost, path, uuid.New(), apitypes.ModerationRequest{Result: "approve"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("UnknownResult", func(t *testing.T) {
		ts := newTestServer(t)
		target := testutil.NewRecitation(t, ts.db)

		body := apitypes.ModerationRequest{Result: "publish"}
		rec := ts.doJSON(t, http.MethodPost, fmt.Sprintf("/api/recitations/%d/moderate", target.ID), uuid.New(), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// --- Verse Sync Endpoint Tests ---

func TestVerseSyncHandler(t *testing.T) {
	descriptor := func(t *testing.T, poemID int) string {
		t.Helper()
		xml := fmt.Sprintf(`<DesktopGanjoorPoemAudioList>
  <PoemAudio>
    <PoemId>%d</PoemId>
    <PoemTitle>غزل</PoemTitle>
    <FilePath>C:\audio\1.mp3</FilePath>
    <FileCheckSum>%s</FileCheckSum>
    <SyncGuid>%s</SyncGuid>
    <SyncArray>
      <SyncInfo><VerseOrder>-1</VerseOrder><AudioMiliseconds>0</AudioMiliseconds></SyncInfo>
      <SyncInfo><VerseOrder>1</VerseOrder><AudioMiliseconds>5500</AudioMiliseconds></SyncInfo>
    </SyncArray>
  </PoemAudio>
</DesktopGanjoorPoemAudioList>`, poemID, testutil.RandomChecksum(), uuid.NewString())

		path := filepath.Join(t.TempDir(), "descriptor.xml")
		require.NoError(t, os.WriteFile(path, []byte(xml), 0600))
		return path
	}

	t.Run("ResolvesVerseTexts", func(t *testing.T) {
		ts := newTestServer(t)
		poem := testutil.NewPoem(t, ts.db, func(c *generated.PoemCreate) {
			c.SetVerses([]string{"بیت یکم", "بیت دوم"})
		})
		target := testutil.NewRecitation(t, ts.db, func(c *generated.RecitationCreate) {
			c.SetPoemID(poem.ID)
			c.SetLocalXMLPath(descriptor(t, poem.ID))
		})

		rec := ts.doJSON(t, http.MethodGet, fmt.Sprintf("/api/recitations/%d/verses", target.ID), uuid.Nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		syncs := decode[[]bundle.VerseSync](t, rec)
		require.Len(t, syncs, 2)
		assert.Equal(t, "بیت یکم", syncs[0].VerseText)
		assert.Equal(t, 1, syncs[0].VerseOrder)
		assert.Equal(t, "بیت دوم", syncs[1].VerseText)
		assert.Equal(t, 5500, syncs[1].AudioMilliseconds)
	})

	t.Run("NoDescriptorOnDisk", func(t *testing.T) {
		ts := newTestServer(t)
		target := testutil.NewRecitation(t, ts.db)

		rec := ts.doJSON(t, http.MethodGet, fmt.Sprintf("/api/recitations/%d/verses", target.ID), uuid.Nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MalformedDescriptor", func(t *testing.T) {
		ts := newTestServer(t)
		path := filepath.Join(t.TempDir(), "bad.xml")
		require.NoError(t, os.WriteFile(path, []byte("<not a descriptor"), 0600))
		target := testutil.NewRecitation(t, ts.db, func(c *generated.RecitationCreate) {
			c.SetLocalXMLPath(path)
		})

		rec := ts.doJSON(t, http.MethodGet, fmt.Sprintf("/api/recitations/%d/verses", target.ID), uuid.Nil, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

// --- Publish Queue Endpoint Tests ---

func TestPublishQueueHandler(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	first := testutil.NewRecitation(t, ts.db)
	second := testutil.NewRecitation(t, ts.db)

	_, err := ts.db.PublishTracker.Create().
		SetRecitationID(first.ID).
		SetFinished(true).
		Save(ctx)
	require.NoError(t, err)
	_, err = ts.db.PublishTracker.Create().
		SetRecitationID(second.ID).
		SetLastError("connection reset").
		Save(ctx)
	require.NoError(t, err)

	rec := ts.doJSON(t, http.MethodGet, "/api/publish/queue", uuid.Nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[apitypes.TrackerPage](t, rec)
	assert.Equal(t, 2, page.Total)

	rec = ts.doJSON(t, http.MethodGet, "/api/publish/queue?finished=false", uuid.Nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page = decode[apitypes.TrackerPage](t, rec)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, second.ID, page.Items[0].RecitationID)
	assert.Equal(t, "connection reset", page.Items[0].LastError)

	rec = ts.doJSON(t, http.MethodGet, "/api/publish/queue?finished=maybe", uuid.Nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- Retry Endpoint Tests ---

func TestRetryHandler(t *testing.T) {
	ts := newTestServer(t)

	testutil.NewRecitation(t, ts.db, func(c *generated.RecitationCreate) {
		c.SetReviewStatus(recitation.ReviewStatusApproved)
	})

	rec := ts.doJSON(t, http.MethodPost, "/api/publish/retry", uuid.Nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	response := decode[apitypes.RetryScanResponse](t, rec)
	assert.Equal(t, 1, response.Enqueued)
	assert.Equal(t, 1, ts.queue.Len())
}

// --- Timeline Endpoint Tests ---

func TestEventsHandler(t *testing.T) {
	seedEvent := func(t *testing.T, ts *testServer, evType string, fn func(*generated.EventCreate)) {
		t.Helper()
		create := ts.db.Event.Create().
			SetType(evType).
			SetTimestamp(time.Now()).
			SetCreatedAt(time.Now())
		if fn != nil {
			fn(create)
		}
		_, err := create.Save(context.Background())
		require.NoError(t, err)
	}

	t.Run("ListsEvents", func(t *testing.T) {
		ts := newTestServer(t)
		seedEvent(t, ts, string(events.SystemStarted), nil)
		seedEvent(t, ts, string(events.PlacementComplete), func(c *generated.EventCreate) {
			c.SetSubjectType("upload_session")
			c.SetSubjectID(ulid.Make().String())
		})

		rec := ts.doJSON(t, http.MethodGet, "/api/events", uuid.Nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]apitypes.Event](t, rec)
		assert.Len(t, list, 2)
	})

	t.Run("SubjectTypeFilter", func(t *testing.T) {
		ts := newTestServer(t)
		seedEvent(t, ts, string(events.SystemStarted), nil)
		seedEvent(t, ts, string(events.ModerationApproved), func(c *generated.EventCreate) {
			c.SetSubjectType("recitation")
			c.SetSubjectID("7")
		})

		rec := ts.doJSON(t, http.MethodGet, "/api/events?subject_type=recitation", uuid.Nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]apitypes.Event](t, rec)
		require.Len(t, list, 1)
		assert.Equal(t, "7", list[0].SubjectID)

		rec = ts.doJSON(t, http.MethodGet, "/api/events?subject_type=bogus", uuid.Nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.doJSON(t, http.MethodGet, "/api/events?limit=zero", uuid.Nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
