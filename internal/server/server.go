// Package server provides the main application server.
package server

import (
	"context"
	"embed"
	"fmt"
	"net"

	"github.com/rs/zerolog"

	"github.com/khanesh/khanesh/internal/cache"
	"github.com/khanesh/khanesh/internal/catalog"
	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/notify"
	"github.com/khanesh/khanesh/internal/placement"
	"github.com/khanesh/khanesh/internal/profile"
	"github.com/khanesh/khanesh/internal/publish"
	"github.com/khanesh/khanesh/internal/queue"
	"github.com/khanesh/khanesh/internal/session"
	"github.com/khanesh/khanesh/internal/transfer"
)

// Options holds additional server options not in config.
type Options struct {
	// UI filesystem (optional)
	UIFS   embed.FS
	UIPath string

	// Logger
	Logger zerolog.Logger
}

// Server is the main application server.
type Server struct {
	cfg        config.Config
	opts       Options
	db         *generated.Client
	eventBus   *events.Bus
	eventsCtrl *events.Controller
	uploader   transfer.Uploader
	catalogs   []catalog.Catalog
	queue      *queue.Queue
	placement  *placement.Engine
	publisher  *publish.Service
	retry      *publish.RetryCoordinator
	httpServer *HTTPServer
	logger     zerolog.Logger
}

// New creates a new server with the given configuration.
//
//nolint:funlen // initialization function needs to set up multiple components
func New(cfg config.Config, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	db, err := ent.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	eventBus := events.New(events.WithLogger(logger.With().Str("component", "events").Logger()))
	eventsCtrl := events.NewController(eventBus, db,
		events.WithControllerLogger(logger.With().Str("component", "events").Logger()))

	// Notifications go through the webhook when one is configured,
	// otherwise they are logged and dropped.
	var notifier notify.Notifier
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhook(notify.Options{
			WebhookURL:  cfg.Notify.WebhookURL,
			TokenURL:    cfg.Notify.TokenURL,
			Username:    cfg.Notify.Username,
			Password:    cfg.Notify.Password,
			HTTPTimeout: cfg.Notify.HTTPTimeout,
		}, cache.New(), notify.WithLogger(logger.With().Str("component", "notify").Logger()))
		logger.Info().Str("webhook", cfg.Notify.WebhookURL).Msg("notifications configured")
	} else {
		notifier = notify.NewNop(notify.WithLogger(logger.With().Str("component", "notify").Logger()))
		logger.Warn().Msg("no notification webhook configured - notifications will be dropped")
	}

	q := queue.New(
		queue.WithWorkers(cfg.Publish.Workers),
		queue.WithLogger(logger.With().Str("component", "queue").Logger()),
	)

	profiles := profile.NewService(db,
		profile.WithLogger(logger.With().Str("component", "profile").Logger()))
	sessions := session.NewService(db, profiles, q, eventBus, cfg.Ingest,
		session.WithLogger(logger.With().Str("component", "session").Logger()))
	placementEngine := placement.NewEngine(db, q, eventBus, notifier, cfg.Ingest,
		placement.WithLogger(logger.With().Str("component", "placement").Logger()))

	// An entirely unset remote disables publishing: uploads are still
	// placed and moderated, but nothing leaves this host.
	var uploader transfer.Uploader
	if cfg.Remote.Configured() {
		uploader = transfer.NewRclone(transfer.Options{
			Backend: transfer.Backend(cfg.Remote.Type),
			SSH: transfer.SSHConfig{
				Host:           cfg.Remote.Host,
				Port:           cfg.Remote.Port,
				User:           cfg.Remote.User,
				Password:       cfg.Remote.Password,
				KeyFile:        cfg.Remote.KeyFile,
				KnownHostsFile: cfg.Remote.KnownHostsFile,
				IgnoreHostKey:  cfg.Remote.IgnoreHostKey,
			},
			LocalRoot:      cfg.Remote.LocalRoot,
			ConnectTimeout: cfg.Remote.Timeout,
		}, transfer.WithLogger(logger.With().Str("component", "transfer").Logger()))
		logger.Info().
			Str("backend", cfg.Remote.Type).
			Str("host", cfg.Remote.Host).
			Int("port", cfg.Remote.Port).
			Msg("remote storage configured")
	} else {
		logger.Warn().Msg("no remote storage configured - publishing is disabled")
	}

	var catalogs []catalog.Catalog
	if cfg.Catalogs.First.DSN != "" {
		for _, cc := range []struct {
			name string
			dsn  string
		}{
			{"first", cfg.Catalogs.First.DSN},
			{"second", cfg.Catalogs.Second.DSN},
		} {
			cat, err := catalog.NewPostgres(context.Background(), cc.name, cc.dsn,
				catalog.WithLogger(logger.With().Str("catalog", cc.name).Logger()))
			if err != nil {
				return nil, fmt.Errorf("failed to open %s catalog: %w", cc.name, err)
			}
			catalogs = append(catalogs, cat)
		}
		logger.Info().Int("catalogs", len(catalogs)).Msg("catalogs configured")
	}

	publisher := publish.NewService(db, uploader, catalogs, notifier, q, eventBus, cfg.Remote,
		publish.WithLogger(logger.With().Str("component", "publish").Logger()))
	retry := publish.NewRetryCoordinator(db, q, eventBus, cfg.Publish.RetryInterval,
		publish.WithRetryLogger(logger.With().Str("component", "retry").Logger()))

	httpOpts := []HTTPOption{
		WithHTTPLogger(logger.With().Str("component", "http").Logger()),
	}
	if opts.UIFS != (embed.FS{}) {
		httpOpts = append(httpOpts, WithUI(opts.UIFS, opts.UIPath))
	}
	httpServer := NewHTTPServer(db, sessions, profiles, publisher, retry, q, httpOpts...)

	s := &Server{
		cfg:        cfg,
		opts:       opts,
		db:         db,
		eventBus:   eventBus,
		eventsCtrl: eventsCtrl,
		uploader:   uploader,
		catalogs:   catalogs,
		queue:      q,
		placement:  placementEngine,
		publisher:  publisher,
		retry:      retry,
		httpServer: httpServer,
		logger:     logger,
	}
	s.registerJobHandlers()

	return s, nil
}

func (s *Server) registerJobHandlers() {
	s.queue.Register("placement", func(ctx context.Context, job queue.Job) error {
		pj, ok := job.(queue.PlacementJob)
		if !ok {
			return fmt.Errorf("unexpected placement job type %T", job)
		}
		return s.placement.Process(ctx, pj.SessionID)
	})

	if s.uploader == nil {
		s.queue.Register("publish", func(_ context.Context, job queue.Job) error {
			s.logger.Warn().
				Str("job", job.Kind()).
				Msg("dropping publish job: no remote storage configured")
			return nil
		})
		return
	}

	s.queue.Register("publish", func(ctx context.Context, job queue.Job) error {
		pj, ok := job.(queue.PublishJob)
		if !ok {
			return fmt.Errorf("unexpected publish job type %T", job)
		}
		return s.publisher.Publish(ctx, pj.RecitationID, pj.Replace)
	})
}

// DB returns the database client.
func (s *Server) DB() *generated.Client {
	return s.db
}

// EventBus returns the event bus connecting the components.
func (s *Server) EventBus() *events.Bus {
	return s.eventBus
}

// Queue returns the background job queue.
func (s *Server) Queue() *queue.Queue {
	return s.queue
}

// HTTPAddr returns the bound HTTP listener address, or nil before Run.
func (s *Server) HTTPAddr() net.Addr {
	return s.httpServer.Addr()
}

// Run starts the server and blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().
		Str("listen", s.cfg.Server.Listen).
		Str("temp_path", s.cfg.Ingest.TempPath).
		Str("audio_path", s.cfg.Ingest.AudioPath).
		Bool("publishing", s.uploader != nil).
		Msg("starting khanesh")

	if err := ent.Migrate(ctx, s.db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := s.eventsCtrl.Start(ctx); err != nil {
		return fmt.Errorf("failed to start events controller: %w", err)
	}

	s.queue.Start(ctx)
	s.retry.Start(ctx)

	s.eventBus.Publish(events.Event{Type: events.SystemStarted})

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Start(s.cfg.Server.Listen); err != nil {
			errCh <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("received shutdown signal")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server shutdown error")
	}

	s.retry.Stop()
	s.queue.Stop()

	if err := s.eventsCtrl.Stop(); err != nil {
		s.logger.Error().Err(err).Msg("events controller stop error")
	}

	if s.uploader != nil {
		if err := s.uploader.Close(); err != nil {
			s.logger.Error().Err(err).Msg("uploader close error")
		}
	}
	for _, cat := range s.catalogs {
		cat.Close()
	}

	if err := s.db.Close(); err != nil {
		s.logger.Error().Err(err).Msg("database close error")
	}

	s.logger.Info().Msg("shutdown complete")
	return nil
}
