// Package transfer provides interfaces and implementations for remote upload backends.
package transfer

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// configurable is implemented by all uploaders to support shared options.
type configurable interface {
	setLogger(zerolog.Logger)
}

// Option is a functional option for configuring uploaders.
type Option func(configurable)

// WithLogger sets the logger for any uploader.
func WithLogger(logger zerolog.Logger) Option {
	return func(c configurable) {
		c.setLogger(logger)
	}
}

// Backend represents a remote storage backend type.
type Backend string

const (
	// BackendSFTP publishes files to a remote host over SFTP.
	BackendSFTP Backend = "sftp"

	// BackendLocal publishes files into a directory on this host.
	// Used for single-machine deployments and tests.
	BackendLocal Backend = "local"
)

// SSHConfig holds SSH connection configuration for the SFTP backend.
type SSHConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	KeyFile        string
	KnownHostsFile string // Path to known_hosts file (empty if IgnoreHostKey is true)
	IgnoreHostKey  bool   // Skip host key verification
}

// Options holds configuration for creating an Uploader.
type Options struct {
	// Backend selects the remote storage type.
	Backend Backend

	// SSH configuration for SFTP connections.
	SSH SSHConfig

	// LocalRoot is the destination root directory for the local backend.
	LocalRoot string

	// ConnectTimeout bounds each connection attempt.
	ConnectTimeout time.Duration
}

// Request represents a single file upload request.
type Request struct {
	// LocalPath is the full path to the source file on this host.
	LocalPath string

	// RemotePath is the full destination path on the remote side.
	RemotePath string

	// Size is the expected size of the file in bytes.
	Size int64
}

// Progress represents the current progress of an upload.
type Progress struct {
	// Transferred is the number of bytes uploaded so far.
	Transferred int64

	// BytesPerSec is the current upload speed.
	BytesPerSec int64
}

// ProgressFunc is a callback function for progress updates.
type ProgressFunc func(Progress)

// Uploader is the interface for remote upload backends.
type Uploader interface {
	// Put copies a local file to the remote side, overwriting any
	// existing file at the destination path.
	// The onProgress callback is called periodically with upload progress.
	// The upload should be cancellable via context.
	Put(ctx context.Context, req Request, onProgress ProgressFunc) error

	// Name returns the name of the upload backend.
	Name() string

	// Close releases any resources held by the uploader.
	Close() error
}
