package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// insertSQL matches the legacy site schema. The ogg columns survive from an
// era before everything was mp3; they are written empty.
const insertSQL = `
INSERT INTO ganjoor_audio
	("audio_post_ID", audio_order, audio_xml, audio_ogg, audio_mp3,
	 audio_title, audio_artist, audio_artist_url, audio_src, audio_src_url,
	 audio_guid, audio_fchecksum, audio_mp3bsize, audio_oggbsize, audio_date)
VALUES
	($1, $2, $3, '', $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, $13)`

// postgresCatalog implements Catalog against one site database.
type postgresCatalog struct {
	name   string
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func (c *postgresCatalog) setLogger(logger zerolog.Logger) {
	c.logger = logger
}

// NewPostgres connects to a site database and returns it as Catalog.
// The name is used only for logging and error messages.
func NewPostgres(ctx context.Context, name, dsn string, options ...Option) (Catalog, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", name, err)
	}

	c := &postgresCatalog{
		name:   name,
		pool:   pool,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// InsertRecitation adds a published recitation row.
func (c *postgresCatalog) InsertRecitation(ctx context.Context, row Row) error {
	_, err := c.pool.Exec(ctx, insertSQL,
		row.PoemID,
		row.AudioOrder,
		row.XMLPath,
		row.MP3Path,
		row.Title,
		row.ArtistName,
		row.ArtistURL,
		row.SourceName,
		row.SourceURL,
		row.LegacyGUID,
		row.Checksum,
		row.MP3Size,
		row.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert recitation into catalog %s: %w", c.name, err)
	}

	c.logger.Debug().
		Str("catalog", c.name).
		Int("poem_id", row.PoemID).
		Str("checksum", row.Checksum).
		Msg("recitation row inserted")
	return nil
}

// Close releases the connection pool.
func (c *postgresCatalog) Close() {
	c.pool.Close()
}
