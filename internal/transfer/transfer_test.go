package transfer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/transfer"
)

// --- Backend Constants Tests ---

func TestBackendConstants(t *testing.T) {
	t.Run("BackendSFTP", func(t *testing.T) {
		assert.Equal(t, transfer.BackendSFTP, transfer.Backend("sftp"))
	})

	t.Run("BackendLocal", func(t *testing.T) {
		assert.Equal(t, transfer.BackendLocal, transfer.Backend("local"))
	})
}

// --- SSHConfig Tests ---

func TestSSHConfig(t *testing.T) {
	t.Run("StructFields", func(t *testing.T) {
		cfg := transfer.SSHConfig{
			Host:           "files.example.com",
			Port:           22,
			User:           "publisher",
			KeyFile:        "/path/to/key",
			KnownHostsFile: "/path/to/known_hosts",
			IgnoreHostKey:  false,
		}

		assert.Equal(t, "files.example.com", cfg.Host)
		assert.Equal(t, 22, cfg.Port)
		assert.Equal(t, "publisher", cfg.User)
		assert.Equal(t, "/path/to/key", cfg.KeyFile)
		assert.Equal(t, "/path/to/known_hosts", cfg.KnownHostsFile)
		assert.False(t, cfg.IgnoreHostKey)
	})

	t.Run("IgnoreHostKey", func(t *testing.T) {
		cfg := transfer.SSHConfig{
			IgnoreHostKey: true,
		}

		assert.True(t, cfg.IgnoreHostKey)
	})
}

// --- Request Tests ---

func TestRequest(t *testing.T) {
	t.Run("StructFields", func(t *testing.T) {
		req := transfer.Request{
			LocalPath:  "/data/audio/1209-hrm.mp3",
			RemotePath: "/srv/audio/1209-hrm.mp3",
			Size:       4 * 1024 * 1024,
		}

		assert.Equal(t, "/data/audio/1209-hrm.mp3", req.LocalPath)
		assert.Equal(t, "/srv/audio/1209-hrm.mp3", req.RemotePath)
		assert.Equal(t, int64(4*1024*1024), req.Size)
	})
}

// --- ProgressFunc Tests ---

func TestProgressFunc(t *testing.T) {
	t.Run("CallbackInvocation", func(t *testing.T) {
		var received transfer.Progress

		callback := func(p transfer.Progress) {
			received = p
		}

		callback(transfer.Progress{
			Transferred: 1000,
			BytesPerSec: 500,
		})

		assert.Equal(t, int64(1000), received.Transferred)
		assert.Equal(t, int64(500), received.BytesPerSec)
	})
}

// --- NewRclone Tests ---

func TestNewRclone(t *testing.T) {
	t.Run("DefaultBackend", func(t *testing.T) {
		opts := transfer.Options{
			SSH: transfer.SSHConfig{
				Host:    "test.example.com",
				User:    "testuser",
				KeyFile: "/tmp/test_key",
			},
		}

		uploader := transfer.NewRclone(opts)

		assert.NotNil(t, uploader)
		assert.Equal(t, "sftp", uploader.Name())
	})

	t.Run("LocalBackend", func(t *testing.T) {
		opts := transfer.Options{
			Backend:   transfer.BackendLocal,
			LocalRoot: t.TempDir(),
		}

		uploader := transfer.NewRclone(opts)
		assert.Equal(t, "local", uploader.Name())
	})

	t.Run("WithLogger", func(t *testing.T) {
		opts := transfer.Options{
			Backend:   transfer.BackendLocal,
			LocalRoot: t.TempDir(),
		}

		logger := zerolog.New(os.Stderr).With().Str("component", "transfer-test").Logger()
		uploader := transfer.NewRclone(opts, transfer.WithLogger(logger))

		assert.NotNil(t, uploader)
	})
}

// --- Put Tests (local backend) ---

func TestPutLocal(t *testing.T) {
	t.Run("CopiesFile", func(t *testing.T) {
		srcDir := t.TempDir()
		dstRoot := t.TempDir()

		srcPath := filepath.Join(srcDir, "1209-hrm.mp3")
		content := []byte("not really audio, but close enough")
		require.NoError(t, os.WriteFile(srcPath, content, 0600))

		uploader := transfer.NewRclone(transfer.Options{
			Backend:   transfer.BackendLocal,
			LocalRoot: dstRoot,
		})
		defer uploader.Close() //nolint:errcheck

		err := uploader.Put(context.Background(), transfer.Request{
			LocalPath:  srcPath,
			RemotePath: "/audio/1209-hrm.mp3",
			Size:       int64(len(content)),
		}, nil)
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(dstRoot, "audio", "1209-hrm.mp3"))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("OverwritesExistingFile", func(t *testing.T) {
		srcDir := t.TempDir()
		dstRoot := t.TempDir()

		srcPath := filepath.Join(srcDir, "1209-hrm.xml")
		require.NoError(t, os.WriteFile(srcPath, []byte("new descriptor"), 0600))

		dstDir := filepath.Join(dstRoot, "xml")
		require.NoError(t, os.MkdirAll(dstDir, 0750))
		require.NoError(t, os.WriteFile(filepath.Join(dstDir, "1209-hrm.xml"), []byte("stale"), 0600))

		uploader := transfer.NewRclone(transfer.Options{
			Backend:   transfer.BackendLocal,
			LocalRoot: dstRoot,
		})
		defer uploader.Close() //nolint:errcheck

		err := uploader.Put(context.Background(), transfer.Request{
			LocalPath:  srcPath,
			RemotePath: "/xml/1209-hrm.xml",
		}, nil)
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(dstDir, "1209-hrm.xml"))
		require.NoError(t, err)
		assert.Equal(t, []byte("new descriptor"), got)
	})

	t.Run("ReportsFinalProgress", func(t *testing.T) {
		srcDir := t.TempDir()
		dstRoot := t.TempDir()

		srcPath := filepath.Join(srcDir, "progress.mp3")
		content := []byte("0123456789")
		require.NoError(t, os.WriteFile(srcPath, content, 0600))

		uploader := transfer.NewRclone(transfer.Options{
			Backend:   transfer.BackendLocal,
			LocalRoot: dstRoot,
		})
		defer uploader.Close() //nolint:errcheck

		var last transfer.Progress
		err := uploader.Put(context.Background(), transfer.Request{
			LocalPath:  srcPath,
			RemotePath: "/progress.mp3",
		}, func(p transfer.Progress) {
			last = p
		})
		require.NoError(t, err)
		assert.Equal(t, int64(len(content)), last.Transferred)
	})

	t.Run("MissingSourceFile", func(t *testing.T) {
		uploader := transfer.NewRclone(transfer.Options{
			Backend:   transfer.BackendLocal,
			LocalRoot: t.TempDir(),
		})
		defer uploader.Close() //nolint:errcheck

		err := uploader.Put(context.Background(), transfer.Request{
			LocalPath:  filepath.Join(t.TempDir(), "missing.mp3"),
			RemotePath: "/audio/missing.mp3",
		}, nil)
		require.Error(t, err)
	})
}

// --- Put Error Cases Tests ---
// Note: These tests verify error handling without requiring a live SFTP connection

func TestPutSFTPErrors(t *testing.T) {
	t.Run("UnreachableHost", func(t *testing.T) {
		tmpDir := t.TempDir()

		srcPath := filepath.Join(tmpDir, "file.mp3")
		require.NoError(t, os.WriteFile(srcPath, []byte("x"), 0600))

		uploader := transfer.NewRclone(transfer.Options{
			Backend: transfer.BackendSFTP,
			SSH: transfer.SSHConfig{
				Host:    "localhost",
				Port:    1, // nothing listens here
				User:    "nobody",
				KeyFile: filepath.Join(tmpDir, "nonexistent_key"),
			},
			ConnectTimeout: time.Second,
		})
		defer uploader.Close() //nolint:errcheck

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		err := uploader.Put(ctx, transfer.Request{
			LocalPath:  srcPath,
			RemotePath: "/remote/file.mp3",
		}, nil)
		require.Error(t, err)
	})
}

// --- Lifecycle Tests ---

func TestRcloneLifecycle(t *testing.T) {
	t.Run("MultipleCloseCallsSafe", func(t *testing.T) {
		uploader := transfer.NewRclone(transfer.Options{
			Backend:   transfer.BackendLocal,
			LocalRoot: t.TempDir(),
		})

		// Multiple close calls should be safe
		assert.NoError(t, uploader.Close())
		assert.NoError(t, uploader.Close())
	})
}
