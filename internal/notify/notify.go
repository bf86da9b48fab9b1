// Package notify delivers user-facing notifications for recitation events.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// configurable is implemented by all notifiers to support shared options.
type configurable interface {
	setLogger(zerolog.Logger)
}

// Option is a functional option for configuring notifiers.
type Option func(configurable)

// WithLogger sets the logger for any notifier.
func WithLogger(logger zerolog.Logger) Option {
	return func(c configurable) {
		c.setLogger(logger)
	}
}

// Notifier delivers a message to a single user.
type Notifier interface {
	// Push sends a notification to the given user. Implementations must not
	// block past the configured HTTP timeout.
	Push(ctx context.Context, userID, title, body string) error
}

// nopNotifier discards all notifications. Used when no webhook is configured.
type nopNotifier struct {
	logger zerolog.Logger
}

func (n *nopNotifier) setLogger(logger zerolog.Logger) {
	n.logger = logger
}

// NewNop returns a Notifier that logs and discards every notification.
func NewNop(options ...Option) Notifier {
	n := &nopNotifier{logger: zerolog.Nop()}
	for _, opt := range options {
		opt(n)
	}
	return n
}

func (n *nopNotifier) Push(_ context.Context, userID, title, _ string) error {
	n.logger.Debug().
		Str("user_id", userID).
		Str("title", title).
		Msg("notification discarded (no webhook configured)")
	return nil
}
