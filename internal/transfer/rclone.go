package transfer

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/rclone/rclone/fs"
	"github.com/rclone/rclone/fs/accounting"
	"github.com/rclone/rclone/fs/config/obscure"
	"github.com/rclone/rclone/fs/operations"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	// Import backends we need.
	_ "github.com/rclone/rclone/backend/local"
	_ "github.com/rclone/rclone/backend/sftp"
)

// Default rclone configuration values.
const (
	rcloneDefaultSSHPort          = 22
	rcloneDefaultConnectTimeout   = 10 * time.Second
	rcloneDefaultProgressInterval = 500 * time.Millisecond
	rcloneDefaultChunkSize        = "64k" // SFTP chunk size
	rcloneConnectAttempts         = 3
	rcloneConnectBackoff          = time.Second
	rcloneBytesPerMB              = 1 << 20
)

// rcloneGlobalsOnce ensures global rclone configuration is only set once.
// This prevents race conditions when multiple uploaders are created concurrently.
//
//nolint:gochecknoglobals // sync primitives for thread-safe rclone initialization
var rcloneGlobalsOnce sync.Once

// rcloneNewFsMu serializes fs.NewFs calls to work around race conditions in rclone's
// config loading (github.com/rclone/rclone/issues/8666). This is only needed during filesystem creation.
//
//nolint:gochecknoglobals // sync primitives for thread-safe rclone initialization
var rcloneNewFsMu sync.Mutex

// rcloneUploader implements Uploader using rclone.
// It is private and only exposed via the Uploader interface.
type rcloneUploader struct {
	backend        Backend
	ssh            SSHConfig
	localRoot      string
	connectTimeout time.Duration
	logger         zerolog.Logger

	// Cached destination filesystem to reuse connections
	remoteFs   fs.Fs
	remoteOnce sync.Once
	remoteErr  error
}

// setLogger implements configurable for shared options.
func (u *rcloneUploader) setLogger(logger zerolog.Logger) {
	u.logger = logger
}

// NewRclone creates a new rclone uploader and returns it as Uploader.
func NewRclone(opts Options, options ...Option) Uploader {
	sshPort := opts.SSH.Port
	if sshPort == 0 {
		sshPort = rcloneDefaultSSHPort
	}

	connectTimeout := opts.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = rcloneDefaultConnectTimeout
	}

	backend := opts.Backend
	if backend == "" {
		backend = BackendSFTP
	}

	u := &rcloneUploader{
		backend: backend,
		ssh: SSHConfig{
			Host:           opts.SSH.Host,
			Port:           sshPort,
			User:           opts.SSH.User,
			Password:       opts.SSH.Password,
			KeyFile:        opts.SSH.KeyFile,
			KnownHostsFile: opts.SSH.KnownHostsFile,
			IgnoreHostKey:  opts.SSH.IgnoreHostKey,
		},
		localRoot:      opts.LocalRoot,
		connectTimeout: connectTimeout,
		logger:         zerolog.Nop(),
	}

	for _, opt := range options {
		opt(u)
	}

	// Configure global rclone settings
	u.configureGlobals()

	return u
}

// configureGlobals sets up global rclone configuration.
// Uses sync.Once to ensure configuration happens only once, preventing race conditions
// when multiple uploaders are created concurrently.
func (u *rcloneUploader) configureGlobals() {
	rcloneGlobalsOnce.Do(func() {
		ci := fs.GetConfig(context.Background())

		// Publish steps run one file at a time; concurrency lives in the job queue.
		ci.Transfers = 1
		ci.Checkers = 1
		ci.StreamingUploadCutoff = 0 // Always stream

		// Reduce verbosity
		ci.LogLevel = fs.LogLevelError
	})
}

// Name returns the name of the upload backend.
func (u *rcloneUploader) Name() string {
	return string(u.backend)
}

// Close releases any resources held by the uploader.
func (u *rcloneUploader) Close() error {
	if u.remoteFs != nil {
		if shutdowner, ok := u.remoteFs.(fs.Shutdowner); ok {
			_ = shutdowner.Shutdown(context.Background())
		}
	}
	return nil
}

// getRemoteFs returns a cached destination filesystem or creates a new one.
func (u *rcloneUploader) getRemoteFs(ctx context.Context) (fs.Fs, error) {
	u.remoteOnce.Do(func() {
		u.remoteFs, u.remoteErr = u.createRemoteFs(ctx)
	})
	return u.remoteFs, u.remoteErr
}

// createRemoteFs creates the destination filesystem with a bounded retry on
// the initial connection. Transient SSH failures are common right after the
// remote host restarts.
func (u *rcloneUploader) createRemoteFs(ctx context.Context) (fs.Fs, error) {
	connStr := u.connectionString()

	var remoteFs fs.Fs
	backoff := retry.WithMaxRetries(rcloneConnectAttempts-1, retry.NewExponential(rcloneConnectBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		connectCtx, cancel := context.WithTimeout(ctx, u.connectTimeout)
		defer cancel()

		// Serialize fs.NewFs calls to work around race conditions in rclone's config loading
		rcloneNewFsMu.Lock()
		f, newErr := fs.NewFs(connectCtx, connStr)
		rcloneNewFsMu.Unlock()
		if newErr != nil {
			return retry.RetryableError(newErr)
		}
		remoteFs = f
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s filesystem: %w", u.backend, err)
	}

	u.logger.Info().
		Str("backend", string(u.backend)).
		Str("host", u.ssh.Host).
		Str("user", u.ssh.User).
		Msg("upload destination connected")

	return remoteFs, nil
}

// connectionString builds the rclone connection string for the backend.
// Using fs.NewFs with a connection string ensures all defaults are applied properly.
// Format: :sftp,option=value,option2=value2:/path
// See: https://github.com/rclone/rclone/issues/8666
func (u *rcloneUploader) connectionString() string {
	if u.backend == BackendLocal {
		return u.localRoot
	}

	// Note: If known_hosts_file is not set, rclone uses ssh.InsecureIgnoreHostKey()
	// which allows any host key. Only set it when we have an explicit file.
	knownHostsOpt := ""
	if !u.ssh.IgnoreHostKey && u.ssh.KnownHostsFile != "" {
		knownHostsOpt = fmt.Sprintf(",known_hosts_file=%s", u.ssh.KnownHostsFile)
	}

	keyOpt := ""
	if u.ssh.KeyFile != "" {
		keyOpt = fmt.Sprintf(",key_file=%s", u.ssh.KeyFile)
	}

	// rclone expects the password in its obscured form.
	passOpt := ""
	if u.ssh.Password != "" {
		passOpt = fmt.Sprintf(",pass=%s", obscure.MustObscure(u.ssh.Password))
	}

	return fmt.Sprintf(
		":sftp,host=%s,port=%d,user=%s%s%s%s,"+
			"chunk_size=%s,disable_hashcheck=true,"+
			"set_modtime=false,skip_links=true,shell_type=none:/",
		u.ssh.Host,
		u.ssh.Port,
		u.ssh.User,
		keyOpt,
		passOpt,
		knownHostsOpt,
		rcloneDefaultChunkSize,
	)
}

// Put copies a local file to the destination filesystem using rclone.
func (u *rcloneUploader) Put(ctx context.Context, req Request, onProgress ProgressFunc) error {
	u.logger.Debug().
		Str("local", req.LocalPath).
		Str("remote", req.RemotePath).
		Int64("size", req.Size).
		Msg("starting rclone upload")

	remoteFs, err := u.getRemoteFs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get destination filesystem: %w", err)
	}

	// Create a source filesystem for the directory holding the file
	localDir := filepath.Dir(req.LocalPath)

	// Serialize fs.NewFs calls to work around race conditions in rclone's config loading
	rcloneNewFsMu.Lock()
	localFs, err := fs.NewFs(ctx, localDir)
	rcloneNewFsMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to create source filesystem: %w", err)
	}

	srcObj, err := localFs.NewObject(ctx, filepath.Base(req.LocalPath))
	if err != nil {
		return fmt.Errorf("failed to open local file %q: %w", req.LocalPath, err)
	}

	// RemotePath is absolute (starts with /), but the destination fs is rooted
	// at / so we need to strip the leading slash
	remotePath := req.RemotePath
	if len(remotePath) > 0 && remotePath[0] == '/' {
		remotePath = remotePath[1:]
	}

	if dir := path.Dir(remotePath); dir != "." {
		if mkdirErr := operations.Mkdir(ctx, remoteFs, dir); mkdirErr != nil {
			return fmt.Errorf("failed to create destination directory %q: %w", dir, mkdirErr)
		}
	}

	return u.copyWithProgress(ctx, remoteFs, srcObj, remotePath, onProgress)
}

// copyWithProgress copies a file and reports progress using per-transfer stats.
func (u *rcloneUploader) copyWithProgress(
	ctx context.Context,
	dstFs fs.Fs,
	srcObj fs.Object,
	dstPath string,
	onProgress ProgressFunc,
) error {
	// Create a unique stats group for this upload to avoid conflicts with concurrent uploads
	// See: https://github.com/rclone/rclone/blob/master/fs/accounting/stats_groups.go
	groupName := fmt.Sprintf("upload-%s-%d", path.Base(dstPath), time.Now().UnixNano())
	uploadCtx := accounting.WithStatsGroup(ctx, groupName)
	stats := accounting.StatsGroup(uploadCtx, groupName)

	// Start progress monitoring
	var wg sync.WaitGroup
	done := make(chan struct{})
	startTime := time.Now()

	if onProgress != nil {
		wg.Go(func() {
			u.monitorProgress(stats, onProgress, done)
		})
	}

	_, err := operations.Copy(uploadCtx, dstFs, nil, dstPath, srcObj)

	// Signal progress monitor to stop
	close(done)
	wg.Wait()

	if err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}

	// Calculate final speed
	elapsed := time.Since(startTime).Seconds()
	var speed int64
	if elapsed > 0 {
		speed = int64(float64(srcObj.Size()) / elapsed)
	}

	// Send final progress update
	if onProgress != nil {
		onProgress(Progress{
			Transferred: srcObj.Size(),
			BytesPerSec: speed,
		})
	}

	u.logger.Debug().
		Str("file", dstPath).
		Int64("size", srcObj.Size()).
		Float64("speed_mbps", float64(speed)/rcloneBytesPerMB).
		Msg("rclone upload complete")

	return nil
}

// monitorProgress periodically reports upload progress from the stats group.
func (u *rcloneUploader) monitorProgress(
	stats *accounting.StatsInfo,
	onProgress ProgressFunc,
	done chan struct{},
) {
	ticker := time.NewTicker(rcloneDefaultProgressInterval)
	defer ticker.Stop()

	var lastBytes int64
	var lastTime time.Time

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			now := time.Now()
			bytes := stats.GetBytes()

			var speed int64
			if !lastTime.IsZero() && bytes > lastBytes {
				elapsed := now.Sub(lastTime).Seconds()
				if elapsed > 0 {
					speed = int64(float64(bytes-lastBytes) / elapsed)
				}
			}
			lastBytes = bytes
			lastTime = now

			onProgress(Progress{
				Transferred: bytes,
				BytesPerSec: speed,
			})
		}
	}
}
