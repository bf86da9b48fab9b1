package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/khanesh/khanesh/internal/cache"
)

// tokenCacheName is the cache key under which the bearer token is stored.
const tokenCacheName = "notify-webhook-token"

// tokenTTL bounds how long a cached token is reused before a fresh login.
const tokenTTL = 30 * time.Minute

// Options holds configuration for creating a webhook notifier.
type Options struct {
	// WebhookURL receives the notification payload.
	WebhookURL string

	// TokenURL issues bearer tokens for the webhook endpoint.
	TokenURL string

	// Username and Password authenticate against TokenURL.
	Username string
	Password string

	// HTTPTimeout bounds each individual HTTP request.
	HTTPTimeout time.Duration
}

// webhookNotifier posts notifications to an authenticated webhook endpoint.
type webhookNotifier struct {
	opts   Options
	client *http.Client
	cache  *cache.Cache
	logger zerolog.Logger
}

func (n *webhookNotifier) setLogger(logger zerolog.Logger) {
	n.logger = logger
}

// NewWebhook creates a Notifier that posts to the configured webhook.
// Tokens are cached and refreshed once when a push is rejected.
func NewWebhook(opts Options, c *cache.Cache, options ...Option) Notifier {
	timeout := opts.HTTPTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	n := &webhookNotifier{
		opts:   opts,
		client: &http.Client{Timeout: timeout},
		cache:  c,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

// Push sends the notification, refreshing the token and retrying exactly once
// if the webhook rejects the cached credentials.
func (n *webhookNotifier) Push(ctx context.Context, userID, title, body string) error {
	token, ok := n.cache.Get(tokenCacheName)
	if !ok {
		fresh, err := n.refreshToken(ctx)
		if err != nil {
			return err
		}
		token = fresh
	}

	status, err := n.post(ctx, token, userID, title, body)
	if err != nil {
		return err
	}
	if status == http.StatusOK || status == http.StatusCreated || status == http.StatusNoContent {
		return nil
	}

	// Second and final attempt with a freshly issued token.
	token, err = n.refreshToken(ctx)
	if err != nil {
		return err
	}

	status, err = n.post(ctx, token, userID, title, body)
	if err != nil {
		return err
	}
	if status == http.StatusOK || status == http.StatusCreated || status == http.StatusNoContent {
		return nil
	}
	return fmt.Errorf("webhook rejected notification: status %d", status)
}

// refreshToken logs in against the token endpoint and caches the result.
func (n *webhookNotifier) refreshToken(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"username": n.opts.Username,
		"password": n.opts.Password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.opts.TokenURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("token endpoint returned an empty token")
	}

	n.cache.Set(tokenCacheName, result.Token, tokenTTL)
	n.logger.Debug().Msg("webhook token refreshed")
	return result.Token, nil
}

// post delivers a single notification attempt and returns the HTTP status.
func (n *webhookNotifier) post(ctx context.Context, token, userID, title, body string) (int, error) {
	payload, err := json.Marshal(map[string]string{
		"user_id": userID,
		"subject": title,
		"text":    body,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.opts.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "bearer "+token)

	resp, err := n.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
