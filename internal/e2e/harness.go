//go:build e2e

// Package e2e provides end-to-end testing infrastructure.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/config"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/fileutil"
	"github.com/khanesh/khanesh/internal/server"
)

// Test configuration constants.
const (
	serverReadyTimeout    = 10 * time.Second
	serverShutdownTimeout = 10 * time.Second
	defaultHTTPTimeout    = 10 * time.Second
	pollSleepInterval     = 50 * time.Millisecond
	pipelineTimeout       = 30 * time.Second
)

// Harness runs the full server against a local publish target: uploads go
// through the real HTTP API, placement and publishing run on the real queue,
// and published files land in a temp directory standing in for the remote.
type Harness struct {
	t *testing.T

	// Application server
	Server *server.Server

	// Database client (shortcut to Server.DB())
	DB *generated.Client

	// BaseURL of the running HTTP API
	BaseURL string

	// File paths
	TempDir    string
	AudioPath  string
	XMLPath    string
	RemoteRoot string

	// Internal
	client *http.Client
	cancel context.CancelFunc
}

// NewHarness starts a complete server and returns a harness around it.
// The server is shut down when the test completes.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	tempDir := t.TempDir()
	h := &Harness{
		t:          t,
		TempDir:    tempDir,
		AudioPath:  filepath.Join(tempDir, "audio"),
		XMLPath:    filepath.Join(tempDir, "xml"),
		RemoteRoot: filepath.Join(tempDir, "remote"),
		client:     &http.Client{Timeout: defaultHTTPTimeout},
	}
	require.NoError(t, os.MkdirAll(h.RemoteRoot, 0750))

	cfg := config.Config{
		Server: config.ServerConfig{Listen: "127.0.0.1:0"},
		Database: config.DatabaseConfig{
			Path: filepath.Join(tempDir, "khanesh.db"),
		},
		Ingest: config.IngestConfig{
			TempPath:       filepath.Join(tempDir, "uploads"),
			AudioPath:      h.AudioPath,
			DescriptorPath: h.XMLPath,
		},
		Remote: config.RemoteConfig{
			Type:           "local",
			LocalRoot:      h.RemoteRoot,
			AudioPath:      "/audio",
			DescriptorPath: "/xml",
		},
	}

	srv, err := server.New(cfg, server.Options{Logger: zerolog.Nop()})
	require.NoError(t, err)
	h.Server = srv
	h.DB = srv.DB()

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() {
		_ = srv.Run(ctx)
	}()

	// Wait for the listener to come up
	require.Eventually(t, func() bool {
		return srv.HTTPAddr() != nil
	}, serverReadyTimeout, pollSleepInterval, "server did not start listening")
	h.BaseURL = "http://" + srv.HTTPAddr().String()

	t.Cleanup(h.shutdown)
	return h
}

func (h *Harness) shutdown() {
	h.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	_ = h.Server.Shutdown(ctx)
}

// PostJSON sends a JSON request and decodes the response into out (when
// out is non-nil). It returns the response status code.
func (h *Harness) PostJSON(method, path string, userID uuid.UUID, body, out any) int {
	h.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, h.BaseURL+path, reader)
	require.NoError(h.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != uuid.Nil {
		req.Header.Set("X-User-ID", userID.String())
	}

	resp, err := h.client.Do(req)
	require.NoError(h.t, err)
	defer resp.Body.Close() //nolint:errcheck // test helper

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		require.NoError(h.t, err)
		require.NoError(h.t, json.Unmarshal(data, out), "body: %s", data)
	}
	return resp.StatusCode
}

// UploadFile multipart-uploads one file into a session.
func (h *Harness) UploadFile(userID uuid.UUID, sessionID, name string, content []byte) int {
	h.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(h.t, err)
	_, err = fw.Write(content)
	require.NoError(h.t, err)
	require.NoError(h.t, mw.Close())

	req, err := http.NewRequestWithContext(
		context.Background(),
		http.MethodPost,
		h.BaseURL+"/api/sessions/"+sessionID+"/files",
		&buf,
	)
	require.NoError(h.t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-User-ID", userID.String())

	resp, err := h.client.Do(req)
	require.NoError(h.t, err)
	defer resp.Body.Close() //nolint:errcheck // test helper

	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}

// WaitFor polls cond until it holds or the pipeline timeout expires.
func (h *Harness) WaitFor(msg string, cond func() bool) {
	h.t.Helper()
	require.Eventually(h.t, cond, pipelineTimeout, pollSleepInterval, msg)
}

// MakeBundle builds a recitation bundle: mp3 payload bytes plus a matching
// descriptor carrying the payload's checksum.
func (h *Harness) MakeBundle(poemID int, title string, verses int) (mp3 []byte, descriptor []byte) {
	h.t.Helper()

	mp3 = []byte("ID3 fake mp3 payload " + uuid.NewString())

	staging := filepath.Join(h.t.TempDir(), "bundle.mp3")
	require.NoError(h.t, os.WriteFile(staging, mp3, 0600))
	checksum, err := fileutil.Checksum(staging)
	require.NoError(h.t, err)

	var syncs bytes.Buffer
	for i := range verses {
		fmt.Fprintf(&syncs,
			"<SyncInfo><VerseOrder>%d</VerseOrder><AudioMiliseconds>%d</AudioMiliseconds></SyncInfo>",
			i, i*4000)
	}

	descriptor = fmt.Appendf(nil, `<DesktopGanjoorPoemAudioList>
  <PoemAudio>
    <PoemId>%d</PoemId>
    <PoemTitle>%s</PoemTitle>
    <FilePath>C:\audio\bundle.mp3</FilePath>
    <FileCheckSum>%s</FileCheckSum>
    <SyncGuid>%s</SyncGuid>
    <SyncArray>%s</SyncArray>
  </PoemAudio>
</DesktopGanjoorPoemAudioList>`, poemID, title, checksum, uuid.NewString(), syncs.String())

	return mp3, descriptor
}

// SetupUser creates a default profile for userID through the API.
func (h *Harness) SetupUser(userID uuid.UUID) {
	h.t.Helper()

	code := h.PostJSON(http.MethodPost, "/api/profiles", userID, map[string]any{
		"name":        "پیش‌فرض",
		"artist_name": "هنرمند نمونه",
		"artist_url":  "https://example.com/artist",
		"file_suffix": "hrm",
		"is_default":  true,
	}, nil)
	require.Equal(h.t, http.StatusCreated, code)
}
