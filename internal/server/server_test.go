package server_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent/generated/event"
	"github.com/khanesh/khanesh/internal/events"
	"github.com/khanesh/khanesh/internal/server"
)

// testConfig returns a minimal runnable configuration: isolated database,
// temp ingest paths, no remote and no catalogs.
func testConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		Server: config.ServerConfig{Listen: "[::]:0"},
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "khanesh.db"),
		},
		Ingest: config.IngestConfig{
			TempPath:       t.TempDir(),
			AudioPath:      t.TempDir(),
			DescriptorPath: t.TempDir(),
		},
	}
}

func TestServerNew(t *testing.T) {
	t.Run("CreatesComponents", func(t *testing.T) {
		srv, err := server.New(testConfig(t), server.Options{
			Logger: zerolog.Nop(),
		})
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = srv.Shutdown(t.Context())
		})

		require.NotNil(t, srv.DB())
		require.NotNil(t, srv.EventBus())
		require.NotNil(t, srv.Queue())
	})

	t.Run("WithoutRemotePublishingDisabled", func(t *testing.T) {
		// No remote and no catalogs: the server must still come up so
		// uploads and moderation keep working.
		cfg := testConfig(t)
		srv, err := server.New(cfg, server.Options{Logger: zerolog.Nop()})
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = srv.Shutdown(t.Context())
		})
	})

	t.Run("InvalidCatalogDSN", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Catalogs.First.DSN = "://not-a-dsn"
		cfg.Catalogs.Second.DSN = "://not-a-dsn"

		_, err := server.New(cfg, server.Options{Logger: zerolog.Nop()})
		require.Error(t, err)
	})
}

func TestServerRun(t *testing.T) {
	t.Run("StartsAndShutsDown", func(t *testing.T) {
		srv, err := server.New(testConfig(t), server.Options{Logger: zerolog.Nop()})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Run(ctx)
		}()

		// Give it a moment to start
		time.Sleep(50 * time.Millisecond)

		cancel()
		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("run did not return after cancellation")
		}

		require.NoError(t, srv.Shutdown(t.Context()))
	})

	t.Run("RecordsStartupEvent", func(t *testing.T) {
		srv, err := server.New(testConfig(t), server.Options{Logger: zerolog.Nop()})
		require.NoError(t, err)

		ctx := t.Context()
		go func() {
			_ = srv.Run(ctx)
		}()

		// The events controller persists the startup event asynchronously.
		assert.Eventually(t, func() bool {
			n, err := srv.DB().Event.Query().
				Where(event.TypeEQ(string(events.SystemStarted))).
				Count(ctx)
			return err == nil && n == 1
		}, 5*time.Second, 10*time.Millisecond)

		require.NoError(t, srv.Shutdown(ctx))
	})
}
