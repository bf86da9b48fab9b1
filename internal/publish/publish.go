// Package publish pushes approved recitations out to the remote file host
// and mirrors them into the external site catalogs.
//
// Every publish attempt is tracked step by step in the database, so an
// interrupted attempt can be resumed from its last completed step instead of
// re-uploading everything. The moderation transitions live here too, since
// approval is what schedules a publish.
package publish

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/khanesh/khanesh/internal/catalog"
	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/notify"
	"github.com/khanesh/khanesh/internal/queue"
	"github.com/khanesh/khanesh/internal/transfer"
)

// ModerationResult is a moderator's verdict on a recitation.
type ModerationResult string

// Moderation verdicts.
const (
	ResultApprove      ModerationResult = "approve"
	ResultReject       ModerationResult = "reject"
	ResultFixRequested ModerationResult = "fix_requested"
)

// Service errors.
var (
	// ErrNotFound is returned when the recitation does not exist.
	ErrNotFound = errors.New("recitation not found")
	// ErrAlreadyModerated is returned when a verdict is passed on a
	// recitation that already left the draft or pending state.
	ErrAlreadyModerated = errors.New("recitation has already been moderated")
	// ErrUnknownResult is returned for an unrecognised moderation verdict.
	ErrUnknownResult = errors.New("unknown moderation result")
)

// Service publishes recitations and handles moderation verdicts.
type Service struct {
	db       *generated.Client
	uploader transfer.Uploader
	catalogs []catalog.Catalog
	notifier notify.Notifier
	queue    *queue.Queue
	eventBus *events.Bus
	logger   zerolog.Logger

	remoteAudioPath      string
	remoteDescriptorPath string
}

// Option is a functional option for configuring the Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a publish service. The catalogs are written in order;
// the conventional deployment passes exactly two.
func NewService(
	db *generated.Client,
	uploader transfer.Uploader,
	catalogs []catalog.Catalog,
	notifier notify.Notifier,
	q *queue.Queue,
	eventBus *events.Bus,
	cfg config.RemoteConfig,
	opts ...Option,
) *Service {
	s := &Service{
		db:                   db,
		uploader:             uploader,
		catalogs:             catalogs,
		notifier:             notifier,
		queue:                q,
		eventBus:             eventBus,
		logger:               zerolog.Nop(),
		remoteAudioPath:      cfg.AudioPath,
		remoteDescriptorPath: cfg.DescriptorPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Publish pushes one recitation out. Each attempt gets its own tracker row;
// steps a previous attempt completed are carried over and skipped. Replace
// publishes re-upload the files but leave the catalog rows alone, since
// those were written on first publish.
func (s *Service) Publish(ctx context.Context, recitationID int, replace bool) error {
	rec, err := s.db.Recitation.Get(ctx, recitationID)
	if err != nil {
		if generated.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load recitation: %w", err)
	}

	if rec.SyncStatus == recitation.SyncStatusSynchronized {
		s.logger.Debug().Int("recitation_id", rec.ID).Msg("already synchronized, nothing to publish")
		return nil
	}

	tracker, err := s.beginAttempt(ctx, rec.ID, replace)
	if err != nil {
		return err
	}

	s.logger.Info().
		Int("recitation_id", rec.ID).
		Str("tracker_id", tracker.ID.String()).
		Bool("replace", replace).
		Msg("publish started")
	s.eventBus.Publish(events.Event{
		Type:    events.PublishStarted,
		Subject: rec,
		Data: map[string]any{
			"replace": replace,
		},
	})

	if err := s.runSteps(ctx, rec, tracker, replace); err != nil {
		s.recordFailure(ctx, rec, tracker, err)
		return err
	}

	if _, err := tracker.Update().
		SetFinished(true).
		SetFinishedAt(time.Now()).
		SetLastError("").
		Save(ctx); err != nil {
		return fmt.Errorf("failed to finish tracker: %w", err)
	}

	rec, err = rec.Update().
		SetSyncStatus(recitation.SyncStatusSynchronized).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark recitation synchronized: %w", err)
	}

	s.logger.Info().Int("recitation_id", rec.ID).Msg("publish complete")
	s.eventBus.Publish(events.Event{
		Type:    events.PublishComplete,
		Subject: rec,
	})

	s.push(ctx, rec.UserID, "Recitation published",
		fmt.Sprintf("«%s» is now available to listeners", rec.Title))
	return nil
}

// beginAttempt opens a tracker row for this attempt; earlier rows stay as
// history. Step flags of the latest unfinished attempt carry over so the new
// attempt resumes where the failed one stopped.
func (s *Service) beginAttempt(ctx context.Context, recitationID int, replace bool) (*generated.PublishTracker, error) {
	prev, err := s.db.PublishTracker.Query().
		Where(
			publishtracker.RecitationIDEQ(recitationID),
			publishtracker.FinishedEQ(false),
		).
		Order(generated.Desc(publishtracker.FieldCreatedAt)).
		First(ctx)
	if err != nil && !generated.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query trackers: %w", err)
	}

	create := s.db.PublishTracker.Create().
		SetRecitationID(recitationID).
		SetReplace(replace)
	if prev != nil {
		create.
			SetXMLCopied(prev.XMLCopied).
			SetMp3Copied(prev.Mp3Copied).
			SetFirstDbUpdated(prev.FirstDbUpdated).
			SetSecondDbUpdated(prev.SecondDbUpdated)
	}

	tracker, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracker: %w", err)
	}
	return tracker, nil
}

func (s *Service) runSteps(
	ctx context.Context,
	rec *generated.Recitation,
	tracker *generated.PublishTracker,
	replace bool,
) error {
	remoteMP3 := path.Join(s.remoteAudioPath, rec.FileStem+".mp3")
	remoteXML := path.Join(s.remoteDescriptorPath, rec.FileStem+".xml")

	if !tracker.XMLCopied {
		if err := s.uploader.Put(ctx, transfer.Request{
			LocalPath:  rec.LocalXMLPath,
			RemotePath: remoteXML,
		}, nil); err != nil {
			return fmt.Errorf("failed to upload descriptor: %w", err)
		}
		if err := s.flagStep(ctx, rec, tracker, "xml_copied",
			func(u *generated.PublishTrackerUpdateOne) { u.SetXMLCopied(true) }); err != nil {
			return err
		}
	}

	if !tracker.Mp3Copied {
		if err := s.uploader.Put(ctx, transfer.Request{
			LocalPath:  rec.LocalMp3Path,
			RemotePath: remoteMP3,
			Size:       rec.Mp3Size,
		}, nil); err != nil {
			return fmt.Errorf("failed to upload audio: %w", err)
		}
		if err := s.flagStep(ctx, rec, tracker, "mp3_copied",
			func(u *generated.PublishTrackerUpdateOne) { u.SetMp3Copied(true) }); err != nil {
			return err
		}
	}

	// Replace publishes only refresh files; the catalog rows were written
	// when the recitation was first published.
	if replace {
		return nil
	}

	row := catalog.Row{
		PoemID:      rec.PoemID,
		AudioOrder:  rec.AudioOrder,
		Title:       rec.Title,
		ArtistName:  rec.ArtistName,
		ArtistURL:   rec.ArtistURL,
		SourceName:  rec.SourceName,
		SourceURL:   rec.SourceURL,
		LegacyGUID:  rec.LegacyGUID,
		Checksum:    rec.Checksum,
		MP3Path:     remoteMP3,
		XMLPath:     remoteXML,
		MP3Size:     rec.Mp3Size,
		PublishedAt: time.Now(),
	}

	if !tracker.FirstDbUpdated && len(s.catalogs) > 0 {
		if err := s.catalogs[0].InsertRecitation(ctx, row); err != nil {
			return fmt.Errorf("failed to insert into first catalog: %w", err)
		}
		if err := s.flagStep(ctx, rec, tracker, "first_db_updated",
			func(u *generated.PublishTrackerUpdateOne) { u.SetFirstDbUpdated(true) }); err != nil {
			return err
		}
	}

	if !tracker.SecondDbUpdated && len(s.catalogs) > 1 {
		if err := s.catalogs[1].InsertRecitation(ctx, row); err != nil {
			return fmt.Errorf("failed to insert into second catalog: %w", err)
		}
		if err := s.flagStep(ctx, rec, tracker, "second_db_updated",
			func(u *generated.PublishTrackerUpdateOne) { u.SetSecondDbUpdated(true) }); err != nil {
			return err
		}
	}

	return nil
}

// flagStep persists a completed step so a resumed publish skips it.
func (s *Service) flagStep(
	ctx context.Context,
	rec *generated.Recitation,
	tracker *generated.PublishTracker,
	step string,
	set func(*generated.PublishTrackerUpdateOne),
) error {
	update := tracker.Update()
	set(update)
	updated, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to flag step %s: %w", step, err)
	}
	*tracker = *updated

	s.logger.Debug().
		Int("recitation_id", rec.ID).
		Str("step", step).
		Msg("publish step done")
	s.eventBus.Publish(events.Event{
		Type:    events.PublishStepDone,
		Subject: rec,
		Data: map[string]any{
			"step": step,
		},
	})
	return nil
}

// recordFailure stamps the error onto the tracker. Completed step flags are
// left intact for the retry to resume from.
func (s *Service) recordFailure(
	ctx context.Context,
	rec *generated.Recitation,
	tracker *generated.PublishTracker,
	stepErr error,
) {
	s.logger.Error().Err(stepErr).
		Int("recitation_id", rec.ID).
		Msg("publish failed")

	if _, err := tracker.Update().
		SetLastError(stepErr.Error()).
		Save(ctx); err != nil {
		s.logger.Error().Err(err).
			Str("tracker_id", tracker.ID.String()).
			Msg("failed to record publish error")
	}

	s.eventBus.Publish(events.Event{
		Type:    events.PublishFailed,
		Subject: rec,
		Data: map[string]any{
			"error": stepErr.Error(),
		},
	})
}

// Moderate applies a moderator's verdict to a recitation. Only draft and
// pending recitations accept a verdict; everything else conflicts.
func (s *Service) Moderate(
	ctx context.Context,
	recitationID int,
	moderatorID uuid.UUID,
	result ModerationResult,
	message string,
) (*generated.Recitation, error) {
	rec, err := s.db.Recitation.Get(ctx, recitationID)
	if err != nil {
		if generated.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load recitation: %w", err)
	}

	if rec.ReviewStatus != recitation.ReviewStatusDraft &&
		rec.ReviewStatus != recitation.ReviewStatusPending {
		return nil, ErrAlreadyModerated
	}

	switch result {
	case ResultApprove:
		return s.approve(ctx, rec, moderatorID, message)
	case ResultReject:
		return s.reject(ctx, rec, moderatorID, message)
	case ResultFixRequested:
		return s.requestFix(ctx, rec, moderatorID, message)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownResult, result)
	}
}

func (s *Service) approve(
	ctx context.Context,
	rec *generated.Recitation,
	moderatorID uuid.UUID,
	message string,
) (*generated.Recitation, error) {
	rec, err := rec.Update().
		SetReviewStatus(recitation.ReviewStatusApproved).
		SetReviewMessage(message).
		SetReviewerID(moderatorID).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to approve recitation: %w", err)
	}

	s.logger.Info().Int("recitation_id", rec.ID).Msg("recitation approved")
	s.eventBus.Publish(events.Event{
		Type:    events.ModerationApproved,
		Subject: rec,
	})

	s.queue.Enqueue(queue.PublishJob{RecitationID: rec.ID})
	s.push(ctx, rec.UserID, "Recitation approved",
		fmt.Sprintf("«%s» was approved and is being published", rec.Title))
	return rec, nil
}

func (s *Service) reject(
	ctx context.Context,
	rec *generated.Recitation,
	moderatorID uuid.UUID,
	message string,
) (*generated.Recitation, error) {
	// Rejected recitations are marked synchronized so the retry scan never
	// considers them stuck.
	rec, err := rec.Update().
		SetReviewStatus(recitation.ReviewStatusRejected).
		SetReviewMessage(message).
		SetReviewerID(moderatorID).
		SetReviewedAt(time.Now()).
		SetSyncStatus(recitation.SyncStatusSynchronized).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reject recitation: %w", err)
	}

	s.logger.Info().Int("recitation_id", rec.ID).Msg("recitation rejected")
	s.eventBus.Publish(events.Event{
		Type:    events.ModerationRejected,
		Subject: rec,
	})

	body := fmt.Sprintf("«%s» was not approved", rec.Title)
	if message != "" {
		body = fmt.Sprintf("%s: %s", body, message)
	}
	s.push(ctx, rec.UserID, "Recitation rejected", body)
	return rec, nil
}

func (s *Service) requestFix(
	ctx context.Context,
	rec *generated.Recitation,
	moderatorID uuid.UUID,
	message string,
) (*generated.Recitation, error) {
	// Review status is left alone: the uploader amends the metadata and the
	// recitation comes back through the same moderation gate.
	rec, err := rec.Update().
		SetReviewMessage(message).
		SetReviewerID(moderatorID).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record fix request: %w", err)
	}

	s.logger.Info().Int("recitation_id", rec.ID).Msg("fixes requested")
	s.eventBus.Publish(events.Event{
		Type:    events.ModerationFixRequested,
		Subject: rec,
	})

	s.push(ctx, rec.UserID, "Recitation needs changes", message)
	return rec, nil
}

func (s *Service) push(ctx context.Context, userID uuid.UUID, title, body string) {
	if err := s.notifier.Push(ctx, userID.String(), title, body); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to notify user")
	}
}
