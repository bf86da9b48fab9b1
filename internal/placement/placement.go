// Package placement turns a finalized upload session into recitation drafts.
//
// The engine pairs each uploaded descriptor with its audio file by checksum,
// names the pair after the poem and the uploader's file suffix, moves both
// files out of the staging area, and records a draft recitation awaiting
// moderation. Replace sessions overwrite the files of an existing recitation
// instead. One bad file never aborts the batch: every file ends up with an
// individual result message.
package placement

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/khanesh/khanesh/internal/bundle"
	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/ent/generated/recitationprofile"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/fileutil"
	"github.com/khanesh/khanesh/internal/notify"
	"github.com/khanesh/khanesh/internal/queue"
)

// Result messages recorded on upload session files.
const (
	msgRecitationCreated  = "recitation created, awaiting moderation"
	msgRecitationReplaced = "recitation files replaced"
	msgDuplicate          = "duplicate of an already submitted recitation"
	msgDuplicateAudio     = "identical to another audio file in this upload"
	msgNoAudioCounterpart = "descriptor references an audio file missing from this upload"
	msgNoDescriptor       = "no descriptor references this audio file"
	msgOggRetired         = "ogg files are no longer published"
	msgChecksumFailed     = "failed to read the uploaded file"
	msgDescriptorInvalid  = "descriptor could not be parsed"
)

// Engine processes finalized upload sessions.
type Engine struct {
	db       *generated.Client
	queue    *queue.Queue
	eventBus *events.Bus
	notifier notify.Notifier
	logger   zerolog.Logger

	audioPath      string
	descriptorPath string
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets the logger for the engine.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a new placement engine.
func NewEngine(
	db *generated.Client,
	q *queue.Queue,
	eventBus *events.Bus,
	notifier notify.Notifier,
	cfg config.IngestConfig,
	opts ...Option,
) *Engine {
	e := &Engine{
		db:             db,
		queue:          q,
		eventBus:       eventBus,
		notifier:       notifier,
		logger:         zerolog.Nop(),
		audioPath:      cfg.AudioPath,
		descriptorPath: cfg.DescriptorPath,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process runs placement for one finalized session. The returned error covers
// session-level failures only; per-file problems are recorded on the files.
func (e *Engine) Process(ctx context.Context, sessionID ulid.ULID) error {
	sess, err := e.db.UploadSession.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	files, err := sess.QueryFiles().All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session files: %w", err)
	}

	sess, err = sess.Update().
		SetProcessStatus(uploadsession.ProcessStatusRunning).
		SetProcessStartedAt(time.Now()).
		SetProcessProgress(0).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark session running: %w", err)
	}

	e.logger.Info().
		Str("session_id", sess.ID.String()).
		Int("files", len(files)).
		Msg("placement started")
	e.eventBus.Publish(events.Event{
		Type:    events.PlacementStarted,
		Subject: sess,
	})

	// Staged files are consumed or abandoned, never kept.
	defer e.cleanupTemps(files)

	staged := stagedFiles(files)
	e.checksumPass(ctx, sess, staged)

	placed, failed := e.placementPass(ctx, sess, staged)

	sess, err = sess.Update().
		SetProcessStatus(uploadsession.ProcessStatusFinished).
		SetProcessEndedAt(time.Now()).
		SetProcessProgress(100).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark session finished: %w", err)
	}

	e.logger.Info().
		Str("session_id", sess.ID.String()).
		Int("placed", placed).
		Int("failed", failed).
		Msg("placement complete")
	e.eventBus.Publish(events.Event{
		Type:    events.PlacementComplete,
		Subject: sess,
		Data: map[string]any{
			"count": placed,
		},
	})

	e.notifyOwner(ctx, sess, placed, failed)
	return nil
}

// stagedFiles filters out rejected uploads that never reached the temp area.
func stagedFiles(files []*generated.UploadSessionFile) []*generated.UploadSessionFile {
	var staged []*generated.UploadSessionFile
	for _, f := range files {
		if f.TempPath != "" && !f.Processed {
			staged = append(staged, f)
		}
	}
	return staged
}

// checksumPass computes an MD5 for every staged file, advancing the session
// progress through the first half of the bar.
func (e *Engine) checksumPass(ctx context.Context, sess *generated.UploadSession, staged []*generated.UploadSessionFile) {
	for i, f := range staged {
		sum, err := fileutil.Checksum(f.TempPath)
		if err != nil {
			e.logger.Error().Err(err).
				Str("file", f.OriginalName).
				Msg("checksum failed")
			e.markFile(ctx, f, msgChecksumFailed)
			continue
		}

		updated, err := f.Update().SetChecksum(sum).Save(ctx)
		if err != nil {
			e.logger.Error().Err(err).
				Str("file", f.OriginalName).
				Msg("failed to save checksum")
			continue
		}
		*f = *updated

		e.setProgress(ctx, sess, (i+1)*50/len(staged))
	}
}

// placementPass pairs descriptors with audio files and places each pair.
// Returns how many recitations were created or replaced, and how many staged
// files ended in a failure message.
func (e *Engine) placementPass(
	ctx context.Context,
	sess *generated.UploadSession,
	staged []*generated.UploadSessionFile,
) (placed, failed int) {
	audioByChecksum := make(map[string]*generated.UploadSessionFile)
	var descriptors []*generated.UploadSessionFile

	for _, f := range staged {
		if f.Processed {
			failed++ // checksum pass already recorded the failure
			continue
		}
		switch filepath.Ext(f.TempPath) {
		case ".mp3":
			if _, dup := audioByChecksum[f.Checksum]; dup {
				e.markFile(ctx, f, msgDuplicateAudio)
				failed++
				continue
			}
			audioByChecksum[f.Checksum] = f
		case ".ogg":
			e.markFile(ctx, f, msgOggRetired)
		case ".xml":
			descriptors = append(descriptors, f)
		}
	}

	for i, desc := range descriptors {
		ok := e.placeDescriptor(ctx, sess, desc, audioByChecksum)
		if ok {
			placed++
		} else {
			failed++
		}
		e.setProgress(ctx, sess, 50+(i+1)*50/len(descriptors))
	}

	// Whatever audio is left had no descriptor naming it.
	for _, f := range audioByChecksum {
		if !f.Processed {
			e.markFile(ctx, f, msgNoDescriptor)
			failed++
		}
	}
	return placed, failed
}

// placeDescriptor handles one descriptor file, which may list several
// recitations. It reports true when at least one entry was placed.
func (e *Engine) placeDescriptor(
	ctx context.Context,
	sess *generated.UploadSession,
	desc *generated.UploadSessionFile,
	audioByChecksum map[string]*generated.UploadSessionFile,
) bool {
	entries, err := bundle.ParseFile(desc.TempPath)
	if err != nil {
		e.logger.Warn().Err(err).
			Str("file", desc.OriginalName).
			Msg("descriptor rejected")
		e.markFile(ctx, desc, msgDescriptorInvalid)
		e.eventBus.Publish(events.Event{
			Type:    events.PlacementFileRejected,
			Subject: sess,
			Data: map[string]any{
				"file_name": desc.OriginalName,
				"reason":    msgDescriptorInvalid,
			},
		})
		return false
	}

	anyPlaced := false
	for i := range entries {
		audio := &entries[i]

		// Known content is skipped before the audio pairing, so a
		// resubmitted descriptor reports the duplication rather than a
		// missing counterpart.
		duplicate, err := e.db.Recitation.Query().
			Where(recitation.ChecksumEQ(audio.Checksum)).
			Exist(ctx)
		if err != nil {
			e.markFile(ctx, desc, e.internalError(err, "duplicate check failed"))
			continue
		}
		if duplicate {
			e.markFile(ctx, desc, msgDuplicate)
			if mp3, found := audioByChecksum[audio.Checksum]; found {
				e.markFile(ctx, mp3, msgDuplicate)
			}
			continue
		}

		mp3, found := audioByChecksum[audio.Checksum]
		if !found {
			e.markFile(ctx, desc, msgNoAudioCounterpart)
			continue
		}

		if msg := e.placePair(ctx, sess, audio, desc, mp3); msg == "" {
			anyPlaced = true
		} else {
			e.markFile(ctx, mp3, msg)
			e.markFile(ctx, desc, msg)
			e.eventBus.Publish(events.Event{
				Type:    events.PlacementFileRejected,
				Subject: sess,
				Data: map[string]any{
					"file_name": mp3.OriginalName,
					"reason":    msg,
				},
			})
		}
	}
	return anyPlaced
}

// placePair places one descriptor entry with its audio file. It returns an
// empty string on success or the failure message for both files.
func (e *Engine) placePair(
	ctx context.Context,
	sess *generated.UploadSession,
	audio *bundle.PoemAudio,
	desc, mp3 *generated.UploadSessionFile,
) string {
	if sess.Kind == uploadsession.KindReplaceAudio {
		target, err := e.replaceTarget(ctx, sess, audio)
		if err != nil {
			return e.internalError(err, "replace target lookup failed")
		}
		if target != nil {
			return e.replaceRecitation(ctx, desc, mp3, target)
		}
		// Nothing of this poem under this artist yet; a replace session
		// degrades to a plain upload.
	}
	return e.createRecitation(ctx, sess, audio, desc, mp3)
}

// replaceTarget finds the uploader's existing recitation of the descriptor's
// poem under the default profile's artist name, or nil when there is none.
func (e *Engine) replaceTarget(
	ctx context.Context,
	sess *generated.UploadSession,
	audio *bundle.PoemAudio,
) (*generated.Recitation, error) {
	prof, err := e.defaultProfile(ctx, sess.UserID)
	if err != nil {
		if generated.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	target, err := e.db.Recitation.Query().
		Where(
			recitation.UserIDEQ(sess.UserID),
			recitation.PoemIDEQ(audio.PoemID),
			recitation.ArtistNameEQ(prof.ArtistName),
		).
		First(ctx)
	if err != nil {
		if generated.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return target, nil
}

//nolint:gocognit // the create path walks many ordered steps
func (e *Engine) createRecitation(
	ctx context.Context,
	sess *generated.UploadSession,
	audio *bundle.PoemAudio,
	desc, mp3 *generated.UploadSessionFile,
) string {
	poem, err := e.db.Poem.Get(ctx, audio.PoemID)
	if err != nil {
		if generated.IsNotFound(err) {
			return fmt.Sprintf("poem %d not found", audio.PoemID)
		}
		return e.internalError(err, "poem lookup failed")
	}

	prof, err := e.defaultProfile(ctx, sess.UserID)
	if err != nil {
		return "uploader has no default recitation profile"
	}

	guid, err := e.freeGUID(ctx, audio.SyncGUID)
	if err != nil {
		return e.internalError(err, "guid allocation failed")
	}

	order, err := e.nextAudioOrder(ctx, poem.ID)
	if err != nil {
		return e.internalError(err, "audio order lookup failed")
	}

	title := audio.Title()
	if audio.HasGenericTitle() {
		title = poem.Title
	}

	stem, err := fileutil.FreeStem(
		fmt.Sprintf("%d-%s", poem.ID, prof.FileSuffix),
		[]string{e.audioPath, e.descriptorPath},
		[]string{".mp3", ".xml"},
	)
	if err != nil {
		return e.internalError(err, "no free file name")
	}

	mp3Path, xmlPath, err := e.moveIntoPlace(stem, mp3.TempPath, desc.TempPath)
	if err != nil {
		return e.internalError(err, "failed to move files into place")
	}

	info, err := os.Stat(mp3Path)
	if err != nil {
		return e.internalError(err, "failed to stat placed audio")
	}

	rec, err := e.db.Recitation.Create().
		SetUserID(sess.UserID).
		SetPoemID(poem.ID).
		SetAudioOrder(order).
		SetTitle(title).
		SetArtistName(prof.ArtistName).
		SetArtistURL(prof.ArtistURL).
		SetSourceName(prof.SourceName).
		SetSourceURL(prof.SourceURL).
		SetFileSuffix(prof.FileSuffix).
		SetLegacyGUID(guid).
		SetChecksum(mp3.Checksum).
		SetMp3Size(info.Size()).
		SetFileStem(stem).
		SetLocalMp3Path(mp3Path).
		SetLocalXMLPath(xmlPath).
		Save(ctx)
	if err != nil {
		return e.internalError(err, "failed to create recitation")
	}

	e.markFile(ctx, mp3, msgRecitationCreated)
	e.markFile(ctx, desc, msgRecitationCreated)

	e.logger.Info().
		Int("recitation_id", rec.ID).
		Int("poem_id", poem.ID).
		Str("file_stem", stem).
		Msg("recitation drafted")
	e.eventBus.Publish(events.Event{
		Type:    events.PlacementRecitationCreated,
		Subject: rec,
	})
	return ""
}

func (e *Engine) replaceRecitation(
	ctx context.Context,
	desc, mp3 *generated.UploadSessionFile,
	target *generated.Recitation,
) string {
	if err := fileutil.MoveFile(mp3.TempPath, target.LocalMp3Path); err != nil {
		return e.internalError(err, "failed to replace audio file")
	}
	if err := fileutil.MoveFile(desc.TempPath, target.LocalXMLPath); err != nil {
		return e.internalError(err, "failed to replace descriptor file")
	}

	info, err := os.Stat(target.LocalMp3Path)
	if err != nil {
		return e.internalError(err, "failed to stat replaced audio")
	}

	target, err = target.Update().
		SetChecksum(mp3.Checksum).
		SetMp3Size(info.Size()).
		SetFileUpdatedAt(time.Now()).
		SetSyncStatus(recitation.SyncStatusFilesChanged).
		Save(ctx)
	if err != nil {
		return e.internalError(err, "failed to update replaced recitation")
	}

	e.markFile(ctx, mp3, msgRecitationReplaced)
	e.markFile(ctx, desc, msgRecitationReplaced)

	e.logger.Info().
		Int("recitation_id", target.ID).
		Msg("recitation files replaced")
	e.eventBus.Publish(events.Event{
		Type:    events.PlacementRecitationReplaced,
		Subject: target,
	})

	// Already-approved recitations go straight back out; drafts wait for
	// the moderator as usual.
	if target.ReviewStatus == recitation.ReviewStatusApproved {
		e.queue.Enqueue(queue.PublishJob{RecitationID: target.ID, Replace: true})
	}
	return ""
}

// freeGUID keeps the desktop client's identifier unless it collides, in
// which case a fresh one is rolled.
func (e *Engine) freeGUID(ctx context.Context, guid uuid.UUID) (uuid.UUID, error) {
	for {
		taken, err := e.db.Recitation.Query().
			Where(recitation.LegacyGUIDEQ(guid)).
			Exist(ctx)
		if err != nil {
			return uuid.Nil, err
		}
		if !taken {
			return guid, nil
		}
		guid = uuid.New()
	}
}

func (e *Engine) nextAudioOrder(ctx context.Context, poemID int) (int, error) {
	top, err := e.db.Recitation.Query().
		Where(recitation.PoemIDEQ(poemID)).
		Order(generated.Desc(recitation.FieldAudioOrder)).
		First(ctx)
	if err != nil {
		if generated.IsNotFound(err) {
			return 1, nil
		}
		return 0, err
	}
	return top.AudioOrder + 1, nil
}

func (e *Engine) defaultProfile(ctx context.Context, userID uuid.UUID) (*generated.RecitationProfile, error) {
	return e.db.RecitationProfile.Query().
		Where(
			recitationprofile.UserIDEQ(userID),
			recitationprofile.IsDefaultEQ(true),
		).
		First(ctx)
}

func (e *Engine) moveIntoPlace(stem, mp3Temp, xmlTemp string) (mp3Path, xmlPath string, err error) {
	if err := os.MkdirAll(e.audioPath, 0750); err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(e.descriptorPath, 0750); err != nil {
		return "", "", err
	}

	mp3Path = filepath.Join(e.audioPath, stem+".mp3")
	xmlPath = filepath.Join(e.descriptorPath, stem+".xml")

	if err := fileutil.MoveFile(mp3Temp, mp3Path); err != nil {
		return "", "", err
	}
	// Descriptors can pair with several audio files, so copy instead of move.
	if err := fileutil.CopyFile(xmlTemp, xmlPath); err != nil {
		_ = os.Remove(mp3Path)
		return "", "", err
	}
	return mp3Path, xmlPath, nil
}

// markFile stamps a final result message onto a session file.
func (e *Engine) markFile(ctx context.Context, f *generated.UploadSessionFile, msg string) {
	updated, err := f.Update().
		SetProcessed(true).
		SetResultMessage(msg).
		Save(ctx)
	if err != nil {
		e.logger.Error().Err(err).
			Str("file", f.OriginalName).
			Msg("failed to record file result")
		return
	}
	*f = *updated
}

func (e *Engine) setProgress(ctx context.Context, sess *generated.UploadSession, pct int) {
	updated, err := sess.Update().SetProcessProgress(pct).Save(ctx)
	if err != nil {
		e.logger.Error().Err(err).
			Str("session_id", sess.ID.String()).
			Msg("failed to update progress")
		return
	}
	*sess = *updated
}

func (e *Engine) internalError(err error, msg string) string {
	e.logger.Error().Err(err).Msg(msg)
	return msg
}

func (e *Engine) cleanupTemps(files []*generated.UploadSessionFile) {
	for _, f := range files {
		if f.TempPath != "" {
			_ = os.Remove(f.TempPath)
		}
	}
}

func (e *Engine) notifyOwner(ctx context.Context, sess *generated.UploadSession, placed, failed int) {
	body := fmt.Sprintf("%d recitation(s) placed, %d file(s) skipped", placed, failed)
	if err := e.notifier.Push(ctx, sess.UserID.String(), "Upload processed", body); err != nil {
		e.logger.Warn().Err(err).
			Str("session_id", sess.ID.String()).
			Msg("failed to notify uploader")
	}
}
