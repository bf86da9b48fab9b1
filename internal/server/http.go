package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/khanesh/khanesh/apitypes"
	"github.com/khanesh/khanesh/internal/bundle"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/event"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	"github.com/khanesh/khanesh/internal/profile"
	"github.com/khanesh/khanesh/internal/publish"
	"github.com/khanesh/khanesh/internal/queue"
	"github.com/khanesh/khanesh/internal/session"
)

// userIDHeader carries the authenticated uploader's id, set by the fronting
// gateway. Authentication itself happens upstream.
const userIDHeader = "X-User-ID"

// defaultPageSize is used when a paginated request names no page size.
const defaultPageSize = 20

// maxPageSize caps page sizes to keep responses bounded.
const maxPageSize = 100

// defaultEventsLimit is the maximum number of timeline events to return.
const defaultEventsLimit = 100

// HTTPServer is the HTTP API server.
type HTTPServer struct {
	echo     *echo.Echo
	db       *generated.Client
	sessions *session.Service
	profiles *profile.Service
	publish  *publish.Service
	retry    *publish.RetryCoordinator
	queue    *queue.Queue
	logger   zerolog.Logger
	uiFS     fs.FS
}

// HTTPOption is a functional option for configuring the HTTP server.
type HTTPOption func(*HTTPServer)

// WithHTTPLogger sets the logger.
func WithHTTPLogger(logger zerolog.Logger) HTTPOption {
	return func(s *HTTPServer) {
		s.logger = logger
	}
}

// WithUI sets the embedded UI filesystem.
func WithUI(uiFS embed.FS, subdir string) HTTPOption {
	return func(s *HTTPServer) {
		sub, err := fs.Sub(uiFS, subdir)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to get ui subdirectory")
			return
		}
		s.uiFS = sub
	}
}

// NewHTTPServer creates a new HTTP API server.
func NewHTTPServer(
	db *generated.Client,
	sessions *session.Service,
	profiles *profile.Service,
	pub *publish.Service,
	retry *publish.RetryCoordinator,
	q *queue.Queue,
	opts ...HTTPOption,
) *HTTPServer {
	s := &HTTPServer{
		echo:     echo.New(),
		db:       db,
		sessions: sessions,
		profiles: profiles,
		publish:  pub,
		retry:    retry,
		queue:    q,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *HTTPServer) setupMiddleware() {
	s.echo.HideBanner = true
	s.echo.HidePort = true

	// Request logging
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Err(v.Error).
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Msg("request error")
			} else {
				s.logger.Debug().
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Msg("request")
			}
			return nil
		},
	}))

	// Recovery
	s.echo.Use(middleware.Recover())

	// CORS
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
}

func (s *HTTPServer) setupRoutes() {
	// API routes
	api := s.echo.Group("/api")

	// Health check
	api.GET("/health", s.healthHandler)

	// Stats
	api.GET("/stats", s.statsHandler)

	// Upload sessions
	api.POST("/sessions", s.initiateSessionHandler)
	api.POST("/sessions/:id/files", s.uploadFileHandler)
	api.POST("/sessions/:id/finalize", s.finalizeSessionHandler)
	api.GET("/sessions/:id", s.getSessionHandler)
	api.GET("/sessions", s.listSessionsHandler)

	// Recitation profiles
	api.GET("/profiles", s.listProfilesHandler)
	api.POST("/profiles", s.addProfileHandler)
	api.PUT("/profiles/:id", s.updateProfileHandler)
	api.DELETE("/profiles/:id", s.deleteProfileHandler)

	// Recitations
	api.GET("/recitations", s.listRecitationsHandler)
	api.GET("/recitations/:id", s.getRecitationHandler)
	api.PUT("/recitations/:id", s.updateRecitationHandler)
	api.POST("/recitations/:id/moderate", s.moderateHandler)
	api.GET("/recitations/:id/verses", s.verseSyncHandler)

	// Publishing
	api.GET("/publish/queue", s.publishQueueHandler)
	api.POST("/publish/retry", s.retryHandler)

	// Timeline
	api.GET("/events", s.eventsHandler)

	// Serve UI if available
	if s.uiFS != nil {
		s.echo.GET("/*", echo.WrapHandler(http.FileServer(http.FS(s.uiFS))))
	}
}

// Start starts the server.
func (s *HTTPServer) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("starting http server")
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Addr returns the bound listener address, or nil before Start.
func (s *HTTPServer) Addr() net.Addr {
	return s.echo.ListenerAddr()
}

// ServeHTTP implements http.Handler for testing.
func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Request helpers

func userID(c echo.Context) (uuid.UUID, error) {
	raw := c.Request().Header.Get(userIDHeader)
	if raw == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "missing "+userIDHeader+" header")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+userIDHeader+" header")
	}
	return id, nil
}

func sessionID(c echo.Context) (ulid.ULID, error) {
	id, err := ulid.Parse(c.Param("id"))
	if err != nil {
		return ulid.ULID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	return id, nil
}

func recitationID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid recitation id")
	}
	return id, nil
}

func pagination(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// httpError maps service errors onto HTTP status codes.
func httpError(err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, profile.ErrNotFound),
		errors.Is(err, publish.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrSessionEnded),
		errors.Is(err, publish.ErrAlreadyModerated):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, profile.ErrNoDefaultProfile),
		errors.Is(err, session.ErrNoFiles),
		errors.Is(err, session.ErrFileTooLarge),
		errors.Is(err, publish.ErrUnknownResult):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}

// Handlers

func (s *HTTPServer) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, apitypes.HealthResponse{Status: "ok"})
}

func (s *HTTPServer) statsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	total, err := s.db.Recitation.Query().Count(ctx)
	if err != nil {
		return err
	}

	stats := apitypes.Stats{
		Recitations:    total,
		ByReviewStatus: map[string]int{},
		BySyncStatus:   map[string]int{},
		QueueDepth:     s.queue.Len(),
	}

	for _, st := range []recitation.ReviewStatus{
		recitation.ReviewStatusDraft,
		recitation.ReviewStatusPending,
		recitation.ReviewStatusApproved,
		recitation.ReviewStatusRejected,
	} {
		n, err := s.db.Recitation.Query().
			Where(recitation.ReviewStatusEQ(st)).
			Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			stats.ByReviewStatus[string(st)] = n
		}
	}

	for _, st := range []recitation.SyncStatus{
		recitation.SyncStatusNewItem,
		recitation.SyncStatusFilesChanged,
		recitation.SyncStatusSynchronized,
	} {
		n, err := s.db.Recitation.Query().
			Where(recitation.SyncStatusEQ(st)).
			Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			stats.BySyncStatus[string(st)] = n
		}
	}

	return c.JSON(http.StatusOK, stats)
}

// Upload session handlers

func (s *HTTPServer) initiateSessionHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req struct {
		Replace bool `json:"replace"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess, err := s.sessions.Initiate(c.Request().Context(), uid, req.Replace)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, sessionToAPIType(sess, nil))
}

func (s *HTTPServer) uploadFileHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	sid, err := sessionID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file form field is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to open uploaded file")
	}
	defer src.Close() //nolint:errcheck // read-only handle

	file, err := s.sessions.SaveFile(
		c.Request().Context(),
		uid,
		sid,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		src,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, fileToAPIType(file))
}

func (s *HTTPServer) finalizeSessionHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	sid, err := sessionID(c)
	if err != nil {
		return err
	}

	sess, err := s.sessions.Finalize(c.Request().Context(), uid, sid)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, sessionToAPIType(sess, nil))
}

func (s *HTTPServer) getSessionHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	sid, err := sessionID(c)
	if err != nil {
		return err
	}

	sess, err := s.sessions.Get(c.Request().Context(), uid, sid)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, sessionToAPIType(sess, sess.Edges.Files))
}

func (s *HTTPServer) listSessionsHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	page, pageSize := pagination(c)

	sessions, total, err := s.sessions.ListUploads(c.Request().Context(), uid, page, pageSize)
	if err != nil {
		return httpError(err)
	}

	items := make([]apitypes.UploadSession, 0, len(sessions))
	for _, sess := range sessions {
		items = append(items, sessionToAPIType(sess, sess.Edges.Files))
	}

	return c.JSON(http.StatusOK, apitypes.UploadHistory{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Profile handlers

func (s *HTTPServer) listProfilesHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	profiles, err := s.profiles.List(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}

	items := make([]apitypes.Profile, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, profileToAPIType(p))
	}
	return c.JSON(http.StatusOK, items)
}

func (s *HTTPServer) addProfileHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}

	var req apitypes.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := s.profiles.Add(c.Request().Context(), uid, profileInput(req))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, profileToAPIType(created))
}

func (s *HTTPServer) updateProfileHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := ulid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile id")
	}

	var req apitypes.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := s.profiles.Update(c.Request().Context(), uid, id, profileInput(req))
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return httpError(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, profileToAPIType(updated))
}

func (s *HTTPServer) deleteProfileHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := ulid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile id")
	}

	if err := s.profiles.Delete(c.Request().Context(), uid, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Recitation handlers

func (s *HTTPServer) listRecitationsHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	page, pageSize := pagination(c)

	q := s.db.Recitation.Query()

	// Moderators pass all=true to see every narrator's submissions.
	if c.QueryParam("all") != "true" {
		q = q.Where(recitation.UserIDEQ(uid))
	}
	if status := c.QueryParam("status"); status != "" {
		st := recitation.ReviewStatus(status)
		if err := recitation.ReviewStatusValidator(st); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		q = q.Where(recitation.ReviewStatusEQ(st))
	}

	ctx := c.Request().Context()
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return err
	}

	recs, err := q.
		Order(generated.Desc(recitation.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return err
	}

	items := make([]apitypes.Recitation, 0, len(recs))
	for _, rec := range recs {
		items = append(items, recitationToAPIType(rec))
	}

	return c.JSON(http.StatusOK, apitypes.RecitationPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *HTTPServer) getRecitationHandler(c echo.Context) error {
	id, err := recitationID(c)
	if err != nil {
		return err
	}

	rec, err := s.db.Recitation.Get(c.Request().Context(), id)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "recitation not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, recitationToAPIType(rec))
}

func (s *HTTPServer) updateRecitationHandler(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return err
	}
	id, err := recitationID(c)
	if err != nil {
		return err
	}

	var req apitypes.RecitationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if err := profile.ValidateAttribution(req.ArtistName, req.ArtistURL, req.SourceURL); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	rec, err := s.db.Recitation.Query().
		Where(
			recitation.IDEQ(id),
			recitation.UserIDEQ(uid),
		).
		Only(ctx)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "recitation not found")
		}
		return err
	}

	rec, err = rec.Update().
		SetTitle(req.Title).
		SetArtistName(req.ArtistName).
		SetArtistURL(req.ArtistURL).
		SetSourceName(req.SourceName).
		SetSourceURL(req.SourceURL).
		Save(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, recitationToAPIType(rec))
}

func (s *HTTPServer) moderateHandler(c echo.Context) error {
	moderatorID, err := userID(c)
	if err != nil {
		return err
	}
	id, err := recitationID(c)
	if err != nil {
		return err
	}

	var req apitypes.ModerationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rec, err := s.publish.Moderate(
		c.Request().Context(),
		id,
		moderatorID,
		publish.ModerationResult(req.Result),
		req.Message,
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, recitationToAPIType(rec))
}

func (s *HTTPServer) verseSyncHandler(c echo.Context) error {
	id, err := recitationID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	rec, err := s.db.Recitation.Get(ctx, id)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "recitation not found")
		}
		return err
	}
	if rec.LocalXMLPath == "" {
		return echo.NewHTTPError(http.StatusNotFound, "recitation has no descriptor on disk")
	}

	entries, err := bundle.ParseFile(rec.LocalXMLPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "descriptor could not be parsed")
	}

	poem, err := s.db.Poem.Get(ctx, rec.PoemID)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "poem not found")
		}
		return err
	}

	verses := make([]bundle.Verse, 0, len(poem.Verses))
	for i, text := range poem.Verses {
		verses = append(verses, bundle.Verse{Order: i + 1, Text: text})
	}

	return c.JSON(http.StatusOK, bundle.VerseSyncs(&entries[0], verses))
}

// Publishing handlers

func (s *HTTPServer) publishQueueHandler(c echo.Context) error {
	page, pageSize := pagination(c)

	q := s.db.PublishTracker.Query()
	if finished := c.QueryParam("finished"); finished != "" {
		want, err := strconv.ParseBool(finished)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid finished filter")
		}
		q = q.Where(publishtracker.FinishedEQ(want))
	}

	ctx := c.Request().Context()
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return err
	}

	trackers, err := q.
		Order(generated.Desc(publishtracker.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return err
	}

	items := make([]apitypes.PublishTracker, 0, len(trackers))
	for _, tr := range trackers {
		items = append(items, trackerToAPIType(tr))
	}

	return c.JSON(http.StatusOK, apitypes.TrackerPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *HTTPServer) retryHandler(c echo.Context) error {
	count, err := s.retry.Scan(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apitypes.RetryScanResponse{Enqueued: count})
}

// Timeline handler

func (s *HTTPServer) eventsHandler(c echo.Context) error {
	limit := defaultEventsLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		if n < limit {
			limit = n
		}
	}

	q := s.db.Event.Query()
	if st := c.QueryParam("subject_type"); st != "" {
		subjectType := event.SubjectType(st)
		if err := event.SubjectTypeValidator(subjectType); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid subject_type filter")
		}
		q = q.Where(event.SubjectTypeEQ(subjectType))
	}
	if sid := c.QueryParam("subject_id"); sid != "" {
		q = q.Where(event.SubjectIDEQ(sid))
	}

	rows, err := q.
		Order(generated.Desc(event.FieldTimestamp)).
		Limit(limit).
		All(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]apitypes.Event, 0, len(rows))
	for _, row := range rows {
		items = append(items, eventToAPIType(row))
	}
	return c.JSON(http.StatusOK, items)
}

// API type conversion

func sessionToAPIType(sess *generated.UploadSession, files []*generated.UploadSessionFile) apitypes.UploadSession {
	resp := apitypes.UploadSession{
		ID:              sess.ID.String(),
		Kind:            string(sess.Kind),
		StartedAt:       sess.CreatedAt.Format(time.RFC3339),
		ProcessStatus:   string(sess.ProcessStatus),
		ProcessProgress: sess.ProcessProgress,
	}
	if sess.EndedAt != nil {
		resp.EndedAt = sess.EndedAt.Format(time.RFC3339)
	}
	for _, f := range files {
		resp.Files = append(resp.Files, fileToAPIType(f))
	}
	return resp
}

func fileToAPIType(f *generated.UploadSessionFile) apitypes.UploadFile {
	return apitypes.UploadFile{
		ID:           f.ID.String(),
		FileName:     f.DisplayName,
		OriginalName: f.OriginalName,
		Size:         f.ByteLength,
		Processed:    f.Processed,
		Result:       f.ResultMessage,
	}
}

func profileToAPIType(p *generated.RecitationProfile) apitypes.Profile {
	return apitypes.Profile{
		ID:         p.ID.String(),
		Name:       p.Name,
		ArtistName: p.ArtistName,
		ArtistURL:  p.ArtistURL,
		SourceName: p.SourceName,
		SourceURL:  p.SourceURL,
		FileSuffix: p.FileSuffix,
		IsDefault:  p.IsDefault,
	}
}

func profileInput(req apitypes.ProfileRequest) profile.Input {
	return profile.Input{
		Name:       req.Name,
		ArtistName: req.ArtistName,
		ArtistURL:  req.ArtistURL,
		SourceName: req.SourceName,
		SourceURL:  req.SourceURL,
		FileSuffix: req.FileSuffix,
		IsDefault:  req.IsDefault,
	}
}

func recitationToAPIType(rec *generated.Recitation) apitypes.Recitation {
	return apitypes.Recitation{
		ID:            rec.ID,
		PoemID:        rec.PoemID,
		AudioOrder:    rec.AudioOrder,
		Title:         rec.Title,
		ArtistName:    rec.ArtistName,
		ArtistURL:     rec.ArtistURL,
		SourceName:    rec.SourceName,
		SourceURL:     rec.SourceURL,
		FileStem:      rec.FileStem,
		Checksum:      rec.Checksum,
		MP3Size:       rec.Mp3Size,
		ReviewStatus:  string(rec.ReviewStatus),
		ReviewMessage: rec.ReviewMessage,
		SyncStatus:    string(rec.SyncStatus),
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
	}
}

func trackerToAPIType(tr *generated.PublishTracker) apitypes.PublishTracker {
	resp := apitypes.PublishTracker{
		ID:              tr.ID.String(),
		RecitationID:    tr.RecitationID,
		XMLCopied:       tr.XMLCopied,
		MP3Copied:       tr.Mp3Copied,
		FirstDBUpdated:  tr.FirstDbUpdated,
		SecondDBUpdated: tr.SecondDbUpdated,
		Finished:        tr.Finished,
		LastError:       tr.LastError,
		StartedAt:       tr.CreatedAt.Format(time.RFC3339),
	}
	if tr.FinishedAt != nil {
		resp.FinishedAt = tr.FinishedAt.Format(time.RFC3339)
	}
	return resp
}

func eventToAPIType(row *generated.Event) apitypes.Event {
	resp := apitypes.Event{
		ID:          row.ID.String(),
		Type:        row.Type,
		Message:     row.Message,
		SubjectType: string(row.SubjectType),
		Details:     row.Details,
		Timestamp:   row.Timestamp.Format(time.RFC3339),
	}
	if row.SubjectID != nil {
		resp.SubjectID = *row.SubjectID
	}
	return resp
}
