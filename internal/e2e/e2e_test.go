//go:build e2e

package e2e

import (
	"context"
	"net/http"
	"strconv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/apitypes"
	"github.com/khanesh/khanesh/internal/bundle"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	testutil "github.com/khanesh/khanesh/internal/testing"
)

// TestUploadToPublishFlow walks one recitation through the whole pipeline:
// profile setup, upload session, placement, moderation, publication to the
// local remote.
func TestUploadToPublishFlow(t *testing.T) {
	h := NewHarness(t)
	ctx := context.Background()
	uid := uuid.New()

	poem := testutil.NewPoem(t, h.DB, func(c *generated.PoemCreate) {
		c.SetVerses([]string{"بیت یکم", "بیت دوم"})
	})

	h.SetupUser(uid)

	var sess apitypes.UploadSession
	code := h.PostJSON(http.MethodPost, "/api/sessions", uid, map[string]any{}, &sess)
	require.Equal(t, http.StatusCreated, code)

	mp3, descriptor := h.MakeBundle(poem.ID, poem.Title, 2)
	require.Equal(t, http.StatusCreated, h.UploadFile(uid, sess.ID, "recording.mp3", mp3))
	require.Equal(t, http.StatusCreated, h.UploadFile(uid, sess.ID, "recording.xml", descriptor))

	code = h.PostJSON(http.MethodPost, "/api/sessions/"+sess.ID+"/finalize", uid, nil, nil)
	require.Equal(t, http.StatusOK, code)

	// Placement runs in the background and drafts the recitation.
	var rec *generated.Recitation
	h.WaitFor("recitation was not placed", func() bool {
		var err error
		rec, err = h.DB.Recitation.Query().
			Where(recitation.PoemIDEQ(poem.ID)).
			Only(ctx)
		return err == nil
	})
	assert.Equal(t, recitation.ReviewStatusDraft, rec.ReviewStatus)
	assert.Equal(t, 1, rec.AudioOrder)
	assert.FileExists(t, filepath.Join(h.AudioPath, rec.FileStem+".mp3"))
	assert.FileExists(t, filepath.Join(h.XMLPath, rec.FileStem+".xml"))

	// Nothing is published until a moderator approves.
	assert.NoFileExists(t, filepath.Join(h.RemoteRoot, "audio", rec.FileStem+".mp3"))

	code = h.PostJSON(http.MethodPost,
		"/api/recitations/"+strconv.Itoa(rec.ID)+"/moderate",
		uuid.New(),
		apitypes.ModerationRequest{Result: "approve", Message: "خوانش خوبی است"},
		nil,
	)
	require.Equal(t, http.StatusOK, code)

	h.WaitFor("recitation was not published", func() bool {
		updated, err := h.DB.Recitation.Get(ctx, rec.ID)
		return err == nil && updated.SyncStatus == recitation.SyncStatusSynchronized
	})

	assert.FileExists(t, filepath.Join(h.RemoteRoot, "audio", rec.FileStem+".mp3"))
	assert.FileExists(t, filepath.Join(h.RemoteRoot, "xml", rec.FileStem+".xml"))

	tracker, err := h.DB.PublishTracker.Query().
		Where(publishtracker.RecitationIDEQ(rec.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, tracker.Finished)
	assert.True(t, tracker.XMLCopied)
	assert.True(t, tracker.Mp3Copied)
	assert.Empty(t, tracker.LastError)

	// Verse sync endpoint resolves the descriptor against the poem text.
	var syncs []bundle.VerseSync
	code = h.PostJSON(http.MethodGet, "/api/recitations/"+strconv.Itoa(rec.ID)+"/verses", uuid.Nil, nil, &syncs)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, syncs, 2)
	assert.Equal(t, "بیت یکم", syncs[0].VerseText)

	// The timeline recorded the whole journey.
	var timeline []apitypes.Event
	code = h.PostJSON(http.MethodGet, "/api/events", uuid.Nil, nil, &timeline)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, timeline)
}

// TestAudioWithoutDescriptorIsSkipped uploads a lone mp3; the session must
// finish with the file marked, no recitation created and nothing published.
func TestAudioWithoutDescriptorIsSkipped(t *testing.T) {
	h := NewHarness(t)
	ctx := context.Background()
	uid := uuid.New()

	h.SetupUser(uid)

	var sess apitypes.UploadSession
	code := h.PostJSON(http.MethodPost, "/api/sessions", uid, map[string]any{}, &sess)
	require.Equal(t, http.StatusCreated, code)

	require.Equal(t, http.StatusCreated, h.UploadFile(uid, sess.ID, "orphan.mp3", []byte("mp3 payload")))
	code = h.PostJSON(http.MethodPost, "/api/sessions/"+sess.ID+"/finalize", uid, nil, nil)
	require.Equal(t, http.StatusOK, code)

	h.WaitFor("session did not finish processing", func() bool {
		var fetched apitypes.UploadSession
		getCode := h.PostJSON(http.MethodGet, "/api/sessions/"+sess.ID, uid, nil, &fetched)
		return getCode == http.StatusOK && fetched.ProcessStatus == string(uploadsession.ProcessStatusFinished)
	})

	n, err := h.DB.Recitation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	entries, err := os.ReadDir(filepath.Join(h.RemoteRoot))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
