package placement

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/fileutil"
	"github.com/khanesh/khanesh/internal/queue"
	testpkg "github.com/khanesh/khanesh/internal/testing"
)

type fixture struct {
	db       *generated.Client
	engine   *Engine
	queue    *queue.Queue
	notifier *testpkg.MockNotifier
	cfg      config.IngestConfig
	userID   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		db:       testpkg.NewTestDB(t),
		queue:    queue.New(),
		notifier: testpkg.NewMockNotifier(),
		userID:   uuid.New(),
		cfg: config.IngestConfig{
			TempPath:       t.TempDir(),
			AudioPath:      filepath.Join(t.TempDir(), "audio"),
			DescriptorPath: filepath.Join(t.TempDir(), "xml"),
		},
	}
	f.engine = NewEngine(f.db, f.queue, events.New(), f.notifier, f.cfg)
	testpkg.NewProfile(t, f.db, func(c *generated.RecitationProfileCreate) {
		c.SetUserID(f.userID)
	})
	return f
}

func (f *fixture) newSession(t *testing.T, fns ...func(*generated.UploadSessionCreate)) *generated.UploadSession {
	t.Helper()

	all := append([]func(*generated.UploadSessionCreate){
		func(c *generated.UploadSessionCreate) { c.SetUserID(f.userID) },
	}, fns...)
	return testpkg.NewUploadSession(t, f.db, all...)
}

// stageFile writes content into the staging area and records it on the session.
func (f *fixture) stageFile(
	t *testing.T,
	sess *generated.UploadSession,
	name string,
	content []byte,
) *generated.UploadSessionFile {
	t.Helper()

	path := filepath.Join(f.cfg.TempPath, name)
	require.NoError(t, os.WriteFile(path, content, 0600))

	return testpkg.NewUploadSessionFile(t, f.db, sess, func(c *generated.UploadSessionFileCreate) {
		c.SetOriginalName(name)
		c.SetTempPath(path)
		c.SetByteLength(int64(len(content)))
	})
}

// stageBundle stages an audio file and a descriptor referencing it.
func (f *fixture) stageBundle(
	t *testing.T,
	sess *generated.UploadSession,
	poemID int,
	title string,
	audio []byte,
) (mp3, xml *generated.UploadSessionFile, checksum string) {
	t.Helper()

	mp3 = f.stageFile(t, sess, fmt.Sprintf("%d.mp3", poemID), audio)

	sum, err := fileutil.Checksum(mp3.TempPath)
	require.NoError(t, err)

	doc := descriptorXML(poemID, title, sum, uuid.New())
	xml = f.stageFile(t, sess, fmt.Sprintf("%d.xml", poemID), []byte(doc))
	return mp3, xml, sum
}

func descriptorXML(poemID int, title, checksum string, guid uuid.UUID) string {
	return fmt.Sprintf(`<DesktopGanjoorPoemAudioList>
  <PoemAudio>
    <PoemId>%d</PoemId>
    <PoemTitle>%s</PoemTitle>
    <FilePath>C:\Audio\recitation.mp3</FilePath>
    <FileCheckSum>%s</FileCheckSum>
    <SyncGuid>%s</SyncGuid>
    <SyncArray>
      <SyncInfo><VerseOrder>0</VerseOrder><AudioMiliseconds>2500</AudioMiliseconds></SyncInfo>
    </SyncArray>
  </PoemAudio>
</DesktopGanjoorPoemAudioList>`, poemID, title, checksum, guid)
}

func (f *fixture) reload(t *testing.T, file *generated.UploadSessionFile) *generated.UploadSessionFile {
	t.Helper()

	got, err := f.db.UploadSessionFile.Get(context.Background(), file.ID)
	require.NoError(t, err)
	return got
}

func TestProcess(t *testing.T) {
	t.Run("CreatesDraftRecitation", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)
		sess := f.newSession(t)
		mp3, xml, sum := f.stageBundle(t, sess, poem.ID, "دیباچه", []byte("mp3 payload"))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		rec, err := f.db.Recitation.Query().
			Where(recitation.ChecksumEQ(sum)).
			Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, poem.ID, rec.PoemID)
		assert.Equal(t, f.userID, rec.UserID)
		assert.Equal(t, "دیباچه", rec.Title)
		assert.Equal(t, 1, rec.AudioOrder)
		assert.Equal(t, fmt.Sprintf("%d-hrm", poem.ID), rec.FileStem)
		assert.Equal(t, recitation.ReviewStatusDraft, rec.ReviewStatus)
		assert.Equal(t, recitation.SyncStatusNewItem, rec.SyncStatus)
		assert.Equal(t, int64(len("mp3 payload")), rec.Mp3Size)

		// Both files landed under their stem.
		assert.FileExists(t, filepath.Join(f.cfg.AudioPath, rec.FileStem+".mp3"))
		assert.FileExists(t, filepath.Join(f.cfg.DescriptorPath, rec.FileStem+".xml"))
		assert.NoFileExists(t, mp3.TempPath)
		assert.NoFileExists(t, xml.TempPath)

		for _, file := range []*generated.UploadSessionFile{mp3, xml} {
			got := f.reload(t, file)
			assert.True(t, got.Processed)
			assert.Equal(t, msgRecitationCreated, got.ResultMessage)
		}

		sess, err = f.db.UploadSession.Get(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, uploadsession.ProcessStatusFinished, sess.ProcessStatus)
		assert.Equal(t, 100, sess.ProcessProgress)

		pushes := f.notifier.GetPushes()
		require.Len(t, pushes, 1)
		assert.Equal(t, f.userID.String(), pushes[0].UserID)
		assert.Contains(t, pushes[0].Body, "1 recitation(s) placed")
	})

	t.Run("SubstitutesGenericTitle", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)
		sess := f.newSession(t)
		_, _, sum := f.stageBundle(t, sess, poem.ID, "فایل صوتی ۱", []byte("generic title audio"))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		rec, err := f.db.Recitation.Query().
			Where(recitation.ChecksumEQ(sum)).
			Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, poem.Title, rec.Title)
	})

	t.Run("SkipsDuplicateChecksum", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)
		sess := f.newSession(t)
		mp3, _, sum := f.stageBundle(t, sess, poem.ID, "دیباچه", []byte("already submitted"))
		testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetChecksum(sum)
		})

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		count, err := f.db.Recitation.Query().
			Where(recitation.ChecksumEQ(sum)).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, msgDuplicate, f.reload(t, mp3).ResultMessage)
	})

	t.Run("SkipsDuplicateWithoutAudioCounterpart", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)
		sess := f.newSession(t)

		// Only the descriptor was resubmitted; the dedup verdict must win
		// over the missing-audio one.
		existing := testpkg.NewRecitation(t, f.db)
		doc := descriptorXML(poem.ID, "دیباچه", existing.Checksum, uuid.New())
		xml := f.stageFile(t, sess, "resubmitted.xml", []byte(doc))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		assert.Equal(t, msgDuplicate, f.reload(t, xml).ResultMessage)
	})

	t.Run("MarksRepeatedAudioInSession", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)
		sess := f.newSession(t)
		first, _, _ := f.stageBundle(t, sess, poem.ID, "دیباچه", []byte("same take twice"))
		second := f.stageFile(t, sess, "copy.mp3", []byte("same take twice"))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		assert.Equal(t, msgRecitationCreated, f.reload(t, first).ResultMessage)
		assert.Equal(t, msgDuplicateAudio, f.reload(t, second).ResultMessage)
	})

	t.Run("RejectsUnknownPoem", func(t *testing.T) {
		f := newFixture(t)
		sess := f.newSession(t)
		mp3, _, _ := f.stageBundle(t, sess, 424242, "دیباچه", []byte("orphan poem audio"))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		got := f.reload(t, mp3)
		assert.True(t, got.Processed)
		assert.Equal(t, "poem 424242 not found", got.ResultMessage)
	})

	t.Run("MarksAudioWithoutDescriptor", func(t *testing.T) {
		f := newFixture(t)
		sess := f.newSession(t)
		lone := f.stageFile(t, sess, "lone.mp3", []byte("unreferenced audio"))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		got := f.reload(t, lone)
		assert.True(t, got.Processed)
		assert.Equal(t, msgNoDescriptor, got.ResultMessage)
	})

	t.Run("MarksDescriptorWithoutAudio", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)
		sess := f.newSession(t)
		doc := descriptorXML(poem.ID, "دیباچه", testpkg.RandomChecksum(), uuid.New())
		xml := f.stageFile(t, sess, "alone.xml", []byte(doc))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		got := f.reload(t, xml)
		assert.True(t, got.Processed)
		assert.Equal(t, msgNoAudioCounterpart, got.ResultMessage)
	})

	t.Run("RetiresOggFiles", func(t *testing.T) {
		f := newFixture(t)
		sess := f.newSession(t)
		ogg := f.stageFile(t, sess, "legacy.ogg", []byte("ogg payload"))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		got := f.reload(t, ogg)
		assert.True(t, got.Processed)
		assert.Equal(t, msgOggRetired, got.ResultMessage)
	})

	t.Run("RejectsMalformedDescriptor", func(t *testing.T) {
		f := newFixture(t)
		sess := f.newSession(t)
		xml := f.stageFile(t, sess, "broken.xml", []byte("<not-a-descriptor>"))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		got := f.reload(t, xml)
		assert.True(t, got.Processed)
		assert.Equal(t, msgDescriptorInvalid, got.ResultMessage)
	})

	t.Run("IncrementsAudioOrder", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)
		testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetPoemID(poem.ID)
			c.SetAudioOrder(3)
		})
		sess := f.newSession(t)
		_, _, sum := f.stageBundle(t, sess, poem.ID, "دیباچه", []byte("second narration"))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		rec, err := f.db.Recitation.Query().
			Where(recitation.ChecksumEQ(sum)).
			Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, rec.AudioOrder)
	})

	t.Run("RerollsCollidingGUID", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)
		sess := f.newSession(t)

		guid := uuid.New()
		testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetLegacyGUID(guid)
		})

		mp3 := f.stageFile(t, sess, "taken-guid.mp3", []byte("colliding guid audio"))
		sum, err := fileutil.Checksum(mp3.TempPath)
		require.NoError(t, err)
		f.stageFile(t, sess, "taken-guid.xml",
			[]byte(descriptorXML(poem.ID, "دیباچه", sum, guid)))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		rec, err := f.db.Recitation.Query().
			Where(recitation.ChecksumEQ(sum)).
			Only(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, guid, rec.LegacyGUID)
	})

	t.Run("TiebreaksTakenStem", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)
		sess := f.newSession(t)
		_, _, sum := f.stageBundle(t, sess, poem.ID, "دیباچه", []byte("second take"))

		stem := fmt.Sprintf("%d-hrm", poem.ID)
		require.NoError(t, os.MkdirAll(f.cfg.AudioPath, 0750))
		require.NoError(t, os.WriteFile(
			filepath.Join(f.cfg.AudioPath, stem+".mp3"), []byte("first take"), 0600))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		rec, err := f.db.Recitation.Query().
			Where(recitation.ChecksumEQ(sum)).
			Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stem+"1", rec.FileStem)
	})

	t.Run("EmptySession", func(t *testing.T) {
		f := newFixture(t)
		err := f.engine.Process(context.Background(), testpkg.NewUploadSession(t, f.db).ID)
		require.NoError(t, err)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		f := newFixture(t)
		err := f.engine.Process(context.Background(), ulid.Make())
		require.Error(t, err)
	})
}

func TestProcessReplace(t *testing.T) {
	newReplaceFixture := func(t *testing.T, status recitation.ReviewStatus) (*fixture, *generated.Recitation, *generated.UploadSession, string) {
		t.Helper()

		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)

		require.NoError(t, os.MkdirAll(f.cfg.AudioPath, 0750))
		require.NoError(t, os.MkdirAll(f.cfg.DescriptorPath, 0750))
		oldMp3 := filepath.Join(f.cfg.AudioPath, "old.mp3")
		oldXML := filepath.Join(f.cfg.DescriptorPath, "old.xml")
		require.NoError(t, os.WriteFile(oldMp3, []byte("old audio"), 0600))
		require.NoError(t, os.WriteFile(oldXML, []byte("old descriptor"), 0600))

		target := testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetUserID(f.userID)
			c.SetPoemID(poem.ID)
			c.SetReviewStatus(status)
			c.SetLocalMp3Path(oldMp3)
			c.SetLocalXMLPath(oldXML)
		})

		sess := f.newSession(t, func(c *generated.UploadSessionCreate) {
			c.SetKind(uploadsession.KindReplaceAudio)
		})
		_, _, sum := f.stageBundle(t, sess, poem.ID, "دیباچه", []byte("re-recorded audio"))
		return f, target, sess, sum
	}

	t.Run("ReplacesApprovedAndEnqueuesPublish", func(t *testing.T) {
		f, target, sess, sum := newReplaceFixture(t, recitation.ReviewStatusApproved)

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		got, err := f.db.Recitation.Get(context.Background(), target.ID)
		require.NoError(t, err)
		assert.Equal(t, sum, got.Checksum)
		assert.Equal(t, recitation.SyncStatusFilesChanged, got.SyncStatus)
		assert.Equal(t, int64(len("re-recorded audio")), got.Mp3Size)
		assert.NotNil(t, got.FileUpdatedAt)

		replaced, err := os.ReadFile(target.LocalMp3Path)
		require.NoError(t, err)
		assert.Equal(t, "re-recorded audio", string(replaced))

		assert.Equal(t, 1, f.queue.Len())
	})

	t.Run("DraftTargetWaitsForModeration", func(t *testing.T) {
		f, target, sess, sum := newReplaceFixture(t, recitation.ReviewStatusDraft)

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		got, err := f.db.Recitation.Get(context.Background(), target.ID)
		require.NoError(t, err)
		assert.Equal(t, sum, got.Checksum)
		assert.Equal(t, 0, f.queue.Len())
	})

	t.Run("NoTargetFallsBackToCreate", func(t *testing.T) {
		f := newFixture(t)
		poem := testpkg.NewPoem(t, f.db)

		sess := f.newSession(t, func(c *generated.UploadSessionCreate) {
			c.SetKind(uploadsession.KindReplaceAudio)
		})
		_, _, sum := f.stageBundle(t, sess, poem.ID, "دیباچه", []byte("first recording"))

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		rec, err := f.db.Recitation.Query().
			Where(recitation.ChecksumEQ(sum)).
			Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, recitation.ReviewStatusDraft, rec.ReviewStatus)
		assert.Equal(t, 0, f.queue.Len())
	})

	t.Run("OtherArtistsRecitationUntouched", func(t *testing.T) {
		f, target, sess, sum := newReplaceFixture(t, recitation.ReviewStatusApproved)

		// Shift the target to another artist so the lookup misses it.
		_, err := target.Update().SetArtistName("هنرمند دیگر").Save(context.Background())
		require.NoError(t, err)

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		got, err := f.db.Recitation.Get(context.Background(), target.ID)
		require.NoError(t, err)
		assert.NotEqual(t, sum, got.Checksum)

		untouched, err := os.ReadFile(target.LocalMp3Path)
		require.NoError(t, err)
		assert.Equal(t, "old audio", string(untouched))
	})

	t.Run("DuplicateChecksumLeavesTargetFiles", func(t *testing.T) {
		f, target, sess, sum := newReplaceFixture(t, recitation.ReviewStatusApproved)

		// Identical content already lives on an unrelated recitation; the
		// dedup must fire before any file is overwritten.
		testpkg.NewRecitation(t, f.db, func(c *generated.RecitationCreate) {
			c.SetChecksum(sum)
			c.SetArtistName("هنرمند دیگر")
		})

		require.NoError(t, f.engine.Process(context.Background(), sess.ID))

		got, err := f.db.Recitation.Get(context.Background(), target.ID)
		require.NoError(t, err)
		assert.NotEqual(t, sum, got.Checksum)

		untouched, err := os.ReadFile(target.LocalMp3Path)
		require.NoError(t, err)
		assert.Equal(t, "old audio", string(untouched))
		assert.Equal(t, 0, f.queue.Len())
	})
}
