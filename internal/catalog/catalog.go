// Package catalog writes published recitations into the external site databases.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// configurable is implemented by all catalogs to support shared options.
type configurable interface {
	setLogger(zerolog.Logger)
}

// Option is a functional option for configuring catalogs.
type Option func(configurable)

// WithLogger sets the logger for any catalog.
func WithLogger(logger zerolog.Logger) Option {
	return func(c configurable) {
		c.setLogger(logger)
	}
}

// Row is one published recitation as the site databases store it.
type Row struct {
	PoemID      int
	AudioOrder  int
	Title       string
	ArtistName  string
	ArtistURL   string
	SourceName  string
	SourceURL   string
	LegacyGUID  uuid.UUID
	Checksum    string
	MP3Path     string
	XMLPath     string
	MP3Size     int64
	PublishedAt time.Time
}

// Catalog is the interface for one external site database.
type Catalog interface {
	// InsertRecitation adds a published recitation row.
	InsertRecitation(ctx context.Context, row Row) error

	// Close releases the connection pool.
	Close()
}
