// Package session handles upload intake: opening a session, staging the
// uploaded files, and handing the finalized batch to the placement queue.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/uploadsession"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/profile"
	"github.com/khanesh/khanesh/internal/queue"
)

// Errors returned by the session service.
var (
	// ErrNotFound is returned when a session does not exist or belongs to
	// another user.
	ErrNotFound = errors.New("upload session not found")

	// ErrSessionEnded is returned when files are added to a finalized session.
	ErrSessionEnded = errors.New("upload session already finalized")

	// ErrNoFiles is returned when an empty session is finalized.
	ErrNoFiles = errors.New("upload session has no accepted files")

	// ErrFileTooLarge is returned when an uploaded file exceeds the size limit.
	ErrFileTooLarge = errors.New("uploaded file exceeds the size limit")
)

// pendingResultMessage is recorded on every accepted file until placement
// overwrites it with the real outcome.
const pendingResultMessage = "not processed yet"

// acceptedExtensions are the only upload types placement understands.
//
//nolint:gochecknoglobals // lookup table
var acceptedExtensions = map[string]bool{
	".mp3": true,
	".xml": true,
	".ogg": true,
}

// Service manages upload sessions.
type Service struct {
	db       *generated.Client
	profiles *profile.Service
	queue    *queue.Queue
	eventBus *events.Bus
	logger   zerolog.Logger

	tempPath     string
	maxFileBytes int64
}

// Option is a functional option for configuring the Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new session service.
func NewService(
	db *generated.Client,
	profiles *profile.Service,
	q *queue.Queue,
	eventBus *events.Bus,
	cfg config.IngestConfig,
	opts ...Option,
) *Service {
	s := &Service{
		db:           db,
		profiles:     profiles,
		queue:        q,
		eventBus:     eventBus,
		logger:       zerolog.Nop(),
		tempPath:     cfg.TempPath,
		maxFileBytes: cfg.MaxFileBytes,
	}
	if s.maxFileBytes == 0 {
		s.maxFileBytes = config.DefaultMaxFileBytes
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initiate opens a new upload session. The user must have a default profile,
// otherwise the files could not be attributed once placed.
// A replace session overwrites the files of the uploader's existing
// recitations; placement resolves the targets by poem and artist.
func (s *Service) Initiate(ctx context.Context, userID uuid.UUID, replace bool) (*generated.UploadSession, error) {
	if _, err := s.profiles.ResolveDefault(ctx, userID); err != nil {
		return nil, err
	}

	kind := uploadsession.KindNewAudio
	if replace {
		kind = uploadsession.KindReplaceAudio
	}

	sess, err := s.db.UploadSession.Create().
		SetUserID(userID).
		SetKind(kind).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload session: %w", err)
	}

	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Str("user_id", userID.String()).
		Str("kind", string(kind)).
		Msg("upload session initiated")

	s.eventBus.Publish(events.Event{
		Type:    events.SessionInitiated,
		Subject: sess,
	})
	return sess, nil
}

// SaveFile stages one uploaded file into the session. Files with an
// unsupported extension are recorded as rejected but do not fail the call;
// the uploader sees the outcome in the session listing.
func (s *Service) SaveFile(
	ctx context.Context,
	userID uuid.UUID,
	sessionID ulid.ULID,
	originalName, contentType string,
	r io.Reader,
) (*generated.UploadSessionFile, error) {
	sess, err := s.getOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.EndedAt != nil {
		return nil, ErrSessionEnded
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !acceptedExtensions[ext] {
		file, createErr := s.db.UploadSessionFile.Create().
			SetSessionID(sess.ID).
			SetOriginalName(originalName).
			SetDisplayName(originalName).
			SetContentType(contentType).
			SetProcessed(true).
			SetResultMessage(fmt.Sprintf("unsupported file type %s, only mp3, xml and ogg are accepted", ext)).
			Save(ctx)
		if createErr != nil {
			return nil, fmt.Errorf("failed to record rejected file: %w", createErr)
		}

		s.logger.Warn().
			Str("session_id", sess.ID.String()).
			Str("file", originalName).
			Msg("rejected upload with unsupported extension")
		return file, nil
	}

	tempPath, size, err := s.stage(originalName, r)
	if err != nil {
		return nil, err
	}

	file, err := s.db.UploadSessionFile.Create().
		SetSessionID(sess.ID).
		SetOriginalName(originalName).
		SetDisplayName(strings.TrimSuffix(filepath.Base(originalName), ext)).
		SetContentType(contentType).
		SetByteLength(size).
		SetTempPath(tempPath).
		SetResultMessage(pendingResultMessage).
		Save(ctx)
	if err != nil {
		_ = os.Remove(tempPath)
		return nil, fmt.Errorf("failed to record uploaded file: %w", err)
	}

	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Str("file", originalName).
		Int64("size", size).
		Msg("upload staged")

	s.eventBus.Publish(events.Event{
		Type:    events.SessionFileSaved,
		Subject: sess,
		Data: map[string]any{
			"file_name": originalName,
			"size":      size,
		},
	})
	return file, nil
}

// stage copies the upload into the temp directory under a collision-safe name.
func (s *Service) stage(originalName string, r io.Reader) (string, int64, error) {
	if err := os.MkdirAll(s.tempPath, 0750); err != nil {
		return "", 0, fmt.Errorf("failed to create temp directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	tempPath := filepath.Join(s.tempPath, ulid.Make().String()+ext)

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	// Read one byte past the limit so oversize uploads are detectable.
	size, err := io.Copy(f, io.LimitReader(r, s.maxFileBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("failed to write temp file: %w", err)
	}
	if size > s.maxFileBytes {
		_ = os.Remove(tempPath)
		return "", 0, ErrFileTooLarge
	}

	return tempPath, size, nil
}

// Finalize closes the session and queues it for placement.
func (s *Service) Finalize(ctx context.Context, userID uuid.UUID, sessionID ulid.ULID) (*generated.UploadSession, error) {
	sess, err := s.getOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.EndedAt != nil {
		return nil, ErrSessionEnded
	}

	files, err := sess.QueryFiles().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query session files: %w", err)
	}

	accepted := 0
	for _, f := range files {
		if f.TempPath != "" {
			accepted++
		}
	}
	if accepted == 0 {
		return nil, ErrNoFiles
	}

	sess, err = sess.Update().
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize session: %w", err)
	}

	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Int("files", accepted).
		Msg("upload session finalized")

	s.eventBus.Publish(events.Event{
		Type:    events.SessionFinalized,
		Subject: sess,
		Data: map[string]any{
			"count": accepted,
		},
	})

	s.queue.Enqueue(queue.PlacementJob{SessionID: sess.ID})
	return sess, nil
}

// Get returns one of the user's sessions with its files attached.
func (s *Service) Get(ctx context.Context, userID uuid.UUID, sessionID ulid.ULID) (*generated.UploadSession, error) {
	sess, err := s.db.UploadSession.Query().
		Where(
			uploadsession.IDEQ(sessionID),
			uploadsession.UserIDEQ(userID),
		).
		WithFiles().
		Only(ctx)
	if err != nil {
		if generated.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// ListUploads returns the user's sessions newest-first, files attached.
// Page numbering starts at 1.
func (s *Service) ListUploads(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*generated.UploadSession, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	q := s.db.UploadSession.Query().
		Where(uploadsession.UserIDEQ(userID))

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	sessions, err := q.
		WithFiles().
		Order(generated.Desc(uploadsession.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, total, nil
}

func (s *Service) getOwned(ctx context.Context, userID uuid.UUID, sessionID ulid.ULID) (*generated.UploadSession, error) {
	sess, err := s.db.UploadSession.Query().
		Where(
			uploadsession.IDEQ(sessionID),
			uploadsession.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if generated.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}
