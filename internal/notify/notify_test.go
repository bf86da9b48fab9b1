package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanesh/khanesh/internal/cache"
)

func TestNopNotifier(t *testing.T) {
	n := NewNop()
	err := n.Push(context.Background(), "user-1", "title", "body")
	assert.NoError(t, err)
}

// webhookFixture is a token endpoint plus webhook endpoint backed by httptest.
type webhookFixture struct {
	tokenCalls   atomic.Int64
	pushCalls    atomic.Int64
	rejectTokens map[string]bool
	lastPayload  map[string]string
}

func newWebhookServers(t *testing.T, fx *webhookFixture) (tokenURL, webhookURL string) {
	t.Helper()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := fx.tokenCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token": map[int64]string{1: "token-a", 2: "token-b"}[n],
		})
	}))
	t.Cleanup(tokenSrv.Close)

	pushSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fx.pushCalls.Add(1)
		auth := r.Header.Get("Authorization")
		if fx.rejectTokens[auth] {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		fx.lastPayload = payload
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(pushSrv.Close)

	return tokenSrv.URL, pushSrv.URL
}

func TestWebhookPush(t *testing.T) {
	fx := &webhookFixture{rejectTokens: map[string]bool{}}
	tokenURL, webhookURL := newWebhookServers(t, fx)

	n := NewWebhook(Options{
		WebhookURL: webhookURL,
		TokenURL:   tokenURL,
		Username:   "svc",
		Password:   "secret",
	}, cache.New())

	err := n.Push(context.Background(), "user-1", "Recitation published", "غزل شمارهٔ ۱")
	require.NoError(t, err)

	assert.Equal(t, int64(1), fx.tokenCalls.Load())
	assert.Equal(t, int64(1), fx.pushCalls.Load())
	assert.Equal(t, "user-1", fx.lastPayload["user_id"])
	assert.Equal(t, "Recitation published", fx.lastPayload["subject"])
}

func TestWebhookReusesCachedToken(t *testing.T) {
	fx := &webhookFixture{rejectTokens: map[string]bool{}}
	tokenURL, webhookURL := newWebhookServers(t, fx)

	n := NewWebhook(Options{WebhookURL: webhookURL, TokenURL: tokenURL}, cache.New())

	require.NoError(t, n.Push(context.Background(), "user-1", "a", "b"))
	require.NoError(t, n.Push(context.Background(), "user-1", "c", "d"))

	// Second push should reuse the cached token instead of logging in again.
	assert.Equal(t, int64(1), fx.tokenCalls.Load())
	assert.Equal(t, int64(2), fx.pushCalls.Load())
}

func TestWebhookRefreshesTokenOnce(t *testing.T) {
	// The first issued token is rejected by the webhook; a single refresh
	// should yield a working token and the push must succeed.
	fx := &webhookFixture{rejectTokens: map[string]bool{"bearer token-a": true}}
	tokenURL, webhookURL := newWebhookServers(t, fx)

	n := NewWebhook(Options{WebhookURL: webhookURL, TokenURL: tokenURL}, cache.New())

	err := n.Push(context.Background(), "user-1", "title", "body")
	require.NoError(t, err)

	assert.Equal(t, int64(2), fx.tokenCalls.Load())
	assert.Equal(t, int64(2), fx.pushCalls.Load())
}

func TestWebhookGivesUpAfterSecondRejection(t *testing.T) {
	fx := &webhookFixture{rejectTokens: map[string]bool{
		"bearer token-a": true,
		"bearer token-b": true,
	}}
	tokenURL, webhookURL := newWebhookServers(t, fx)

	n := NewWebhook(Options{WebhookURL: webhookURL, TokenURL: tokenURL}, cache.New())

	err := n.Push(context.Background(), "user-1", "title", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
	assert.Equal(t, int64(2), fx.pushCalls.Load())
}

func TestWebhookTokenEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewWebhook(Options{
		WebhookURL:  srv.URL,
		TokenURL:    srv.URL,
		HTTPTimeout: 2 * time.Second,
	}, cache.New())

	err := n.Push(context.Background(), "user-1", "title", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token endpoint")
}
