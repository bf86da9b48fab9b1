// Package testing provides fixtures and mock implementations for use in tests.
// This package should only be imported by test files (*_test.go).
package testing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Required for SQLite database driver in tests.

	"github.com/khanesh/khanesh/internal/catalog"
	"github.com/khanesh/khanesh/internal/ent/generated"
	"github.com/khanesh/khanesh/internal/ent/generated/enttest"
	_ "github.com/khanesh/khanesh/internal/ent/generated/runtime" // Required for hooks and interceptors (soft-delete).
	"github.com/khanesh/khanesh/internal/transfer"
)

// NewTestDB creates an in-memory Ent database for testing.
// The database is automatically closed when the test completes.
func NewTestDB(t *testing.T) *generated.Client {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// RandomChecksum returns a random 32-character hex string shaped like an
// MD5 digest. Useful for satisfying the unique checksum constraint.
func RandomChecksum() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewPoem creates a poem row with fake data. Mutators run before saving.
func NewPoem(t *testing.T, db *generated.Client, fns ...func(*generated.PoemCreate)) *generated.Poem {
	t.Helper()

	create := db.Poem.Create().
		SetID(gofakeit.Number(1, 1_000_000)).
		SetTitle(fmt.Sprintf("غزل شمارهٔ %d", gofakeit.Number(1, 500))).
		SetFullURL(fmt.Sprintf("/hafez/ghazal/sh%d", gofakeit.Number(1, 500)))
	for _, fn := range fns {
		fn(create)
	}

	poem, err := create.Save(context.Background())
	if err != nil {
		t.Fatalf("failed to create poem: %v", err)
	}
	return poem
}

// NewUploadSession creates an upload session row. Mutators run before saving.
func NewUploadSession(t *testing.T, db *generated.Client, fns ...func(*generated.UploadSessionCreate)) *generated.UploadSession {
	t.Helper()

	create := db.UploadSession.Create().
		SetUserID(uuid.New())
	for _, fn := range fns {
		fn(create)
	}

	session, err := create.Save(context.Background())
	if err != nil {
		t.Fatalf("failed to create upload session: %v", err)
	}
	return session
}

// NewUploadSessionFile attaches a staged file to a session.
// Mutators run before saving.
func NewUploadSessionFile(
	t *testing.T,
	db *generated.Client,
	session *generated.UploadSession,
	fns ...func(*generated.UploadSessionFileCreate),
) *generated.UploadSessionFile {
	t.Helper()

	name := fmt.Sprintf("%s.mp3", gofakeit.LetterN(8))
	create := db.UploadSessionFile.Create().
		SetSessionID(session.ID).
		SetOriginalName(name).
		SetDisplayName(name).
		SetContentType("audio/mpeg").
		SetByteLength(int64(gofakeit.Number(1024, 10<<20))).
		SetTempPath(filepath.Join(os.TempDir(), name))
	for _, fn := range fns {
		fn(create)
	}

	file, err := create.Save(context.Background())
	if err != nil {
		t.Fatalf("failed to create upload session file: %v", err)
	}
	return file
}

// NewProfile creates a recitation profile row. Mutators run before saving.
func NewProfile(t *testing.T, db *generated.Client, fns ...func(*generated.RecitationProfileCreate)) *generated.RecitationProfile {
	t.Helper()

	create := db.RecitationProfile.Create().
		SetUserID(uuid.New()).
		SetName("پیش‌فرض").
		SetArtistName("هنرمند نمونه").
		SetArtistURL("https://example.com/artist").
		SetFileSuffix("hrm").
		SetIsDefault(true)
	for _, fn := range fns {
		fn(create)
	}

	profile, err := create.Save(context.Background())
	if err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return profile
}

// NewRecitation creates a recitation row, including the poem it narrates.
// Mutators run before saving and may override the generated poem edge.
func NewRecitation(t *testing.T, db *generated.Client, fns ...func(*generated.RecitationCreate)) *generated.Recitation {
	t.Helper()

	poem := NewPoem(t, db)
	suffix := strings.ToLower(gofakeit.LetterN(3))

	create := db.Recitation.Create().
		SetUserID(uuid.New()).
		SetPoemID(poem.ID).
		SetTitle(poem.Title).
		SetArtistName("هنرمند نمونه").
		SetFileSuffix(suffix).
		SetLegacyGUID(uuid.New()).
		SetChecksum(RandomChecksum()).
		SetFileStem(fmt.Sprintf("%d-%s", poem.ID, suffix))
	for _, fn := range fns {
		fn(create)
	}

	rec, err := create.Save(context.Background())
	if err != nil {
		t.Fatalf("failed to create recitation: %v", err)
	}
	return rec
}

// MockUploader is a mock implementation of transfer.Uploader for testing.
type MockUploader struct {
	mu sync.RWMutex

	// Root, when set, receives uploaded files under their remote path.
	Root string

	// Track upload calls
	PutCalls []transfer.Request

	// Hooks for custom behavior
	OnPut func(ctx context.Context, req transfer.Request, onProgress transfer.ProgressFunc) error
}

// NewMockUploader creates a new mock uploader.
func NewMockUploader() *MockUploader {
	return &MockUploader{}
}

// Put records the request and optionally materializes the file under Root.
func (m *MockUploader) Put(ctx context.Context, req transfer.Request, onProgress transfer.ProgressFunc) error {
	m.mu.Lock()
	m.PutCalls = append(m.PutCalls, req)
	m.mu.Unlock()

	if m.OnPut != nil {
		return m.OnPut(ctx, req, onProgress)
	}

	if m.Root != "" {
		dst := filepath.Join(m.Root, req.RemotePath)
		if err := os.MkdirAll(filepath.Dir(dst), 0750); err != nil {
			return err
		}
		data, err := os.ReadFile(req.LocalPath)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0600); err != nil {
			return err
		}
	}

	if onProgress != nil {
		onProgress(transfer.Progress{Transferred: req.Size})
	}
	return nil
}

// Name returns the backend name.
func (m *MockUploader) Name() string {
	return "mock"
}

// Close releases resources (no-op for mock).
func (m *MockUploader) Close() error {
	return nil
}

// GetPutCalls returns the recorded upload calls.
func (m *MockUploader) GetPutCalls() []transfer.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]transfer.Request, len(m.PutCalls))
	copy(result, m.PutCalls)
	return result
}

// MockCatalog is a mock implementation of catalog.Catalog for testing.
type MockCatalog struct {
	mu sync.RWMutex

	// Rows holds every inserted row in order.
	Rows []catalog.Row

	// Hooks for custom behavior
	OnInsert func(ctx context.Context, row catalog.Row) error
}

// NewMockCatalog creates a new mock catalog.
func NewMockCatalog() *MockCatalog {
	return &MockCatalog{}
}

// InsertRecitation records the row.
func (m *MockCatalog) InsertRecitation(ctx context.Context, row catalog.Row) error {
	if m.OnInsert != nil {
		if err := m.OnInsert(ctx, row); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rows = append(m.Rows, row)
	return nil
}

// Close releases resources (no-op for mock).
func (m *MockCatalog) Close() {}

// GetRows returns the recorded rows.
func (m *MockCatalog) GetRows() []catalog.Row {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]catalog.Row, len(m.Rows))
	copy(result, m.Rows)
	return result
}

// Notification is one recorded notifier push.
type Notification struct {
	UserID string
	Title  string
	Body   string
}

// MockNotifier is a mock implementation of notify.Notifier for testing.
type MockNotifier struct {
	mu sync.RWMutex

	// Pushes holds every delivered notification in order.
	Pushes []Notification

	// Hooks for custom behavior
	OnPush func(ctx context.Context, userID, title, body string) error
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Push records the notification.
func (m *MockNotifier) Push(ctx context.Context, userID, title, body string) error {
	if m.OnPush != nil {
		if err := m.OnPush(ctx, userID, title, body); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Pushes = append(m.Pushes, Notification{UserID: userID, Title: title, Body: body})
	return nil
}

// GetPushes returns the recorded notifications.
func (m *MockNotifier) GetPushes() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]Notification, len(m.Pushes))
	copy(result, m.Pushes)
	return result
}
